package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kolecko-ai/travel-assistant/internal/middleware"
	"github.com/kolecko-ai/travel-assistant/internal/model"
	"github.com/kolecko-ai/travel-assistant/internal/service"
	"github.com/kolecko-ai/travel-assistant/pkg/logger"
	"github.com/kolecko-ai/travel-assistant/pkg/metrics"
)

// StreamHandler handles SSE streaming endpoints.
type StreamHandler struct {
	chatService         *service.ChatService
	conversationService *service.ConversationService
	logger              *logger.Logger
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(
	chatSvc *service.ChatService,
	convSvc *service.ConversationService,
	log *logger.Logger,
) *StreamHandler {
	return &StreamHandler{
		chatService:         chatSvc,
		conversationService: convSvc,
		logger:              log,
	}
}

// ReplayCompleteEvent marks the end of the replay phase of a stream.
type ReplayCompleteEvent struct {
	LastSequence uint64 `json:"last_sequence"`
	MessageCount int    `json:"message_count"`
}

// Stream handles GET /api/v1/conversations/:id/stream
//
// The stream replays the log from ?after_sequence=N, then follows with
// live message and typing events until the client disconnects. Scheduled
// bot replies land on this stream when their typing delay elapses.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var afterSequence uint64
	if seqStr := r.URL.Query().Get("after_sequence"); seqStr != "" {
		if seq, err := strconv.ParseUint(seqStr, 10, 64); err == nil {
			afterSequence = seq
		}
	}

	// Subscribe before replay so no event falls between the two phases.
	events, cancel, err := h.conversationService.Subscribe(tenantID, conversationID)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	metrics.IncrementSSEConnections()
	defer metrics.DecrementSSEConnections()

	sendSSEEvent(w, flusher, "connected", map[string]string{
		"conversation_id": conversationID,
	})

	replay, err := h.chatService.Messages(ctx, tenantID, conversationID, afterSequence)
	if err != nil {
		h.logger.Error("failed to replay messages",
			zap.Error(err),
			zap.String("conversation_id", conversationID),
		)
		return
	}

	var lastSequence uint64
	for _, msg := range replay.Messages {
		select {
		case <-ctx.Done():
			return
		default:
		}
		sendSSEEvent(w, flusher, "message", msg)
		lastSequence = msg.Seq
	}

	sendSSEEvent(w, flusher, "replay_complete", &ReplayCompleteEvent{
		LastSequence: lastSequence,
		MessageCount: len(replay.Messages),
	})

	if replay.Typing {
		sendSSEEvent(w, flusher, "typing", &model.StreamEvent{
			Type:          model.StreamEventTyping,
			Typing:        true,
			TypingCaption: replay.TypingCaption,
			Timestamp:     time.Now(),
		})
	}

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("SSE client disconnected",
				zap.String("conversation_id", conversationID),
			)
			return

		case ev, open := <-events:
			if !open {
				// Conversation deleted underneath the stream.
				return
			}
			switch ev.Type {
			case model.StreamEventMessage:
				if ev.Message != nil && ev.Message.Seq <= lastSequence {
					continue
				}
				sendSSEEvent(w, flusher, "message", ev.Message)
				if ev.Message != nil {
					lastSequence = ev.Message.Seq
				}
			case model.StreamEventTyping:
				sendSSEEvent(w, flusher, "typing", ev)
			}

		case <-heartbeat.C:
			sendSSEEvent(w, flusher, "heartbeat", &model.HeartbeatEvent{
				Timestamp: time.Now(),
			})
		}
	}
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
	flusher.Flush()

	return nil
}
