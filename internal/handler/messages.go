package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kolecko-ai/travel-assistant/internal/middleware"
	"github.com/kolecko-ai/travel-assistant/internal/model"
	"github.com/kolecko-ai/travel-assistant/internal/service"
	"github.com/kolecko-ai/travel-assistant/pkg/logger"
)

// ChatHandler handles message and dialogue endpoints.
type ChatHandler struct {
	chatService *service.ChatService
	logger      *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatSvc *service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatSvc,
		logger:      log,
	}
}

// List handles GET /api/v1/conversations/:id/messages
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	afterSequence := uint64(0)
	if seq := r.URL.Query().Get("after_sequence"); seq != "" {
		if parsed, err := strconv.ParseUint(seq, 10, 64); err == nil {
			afterSequence = parsed
		}
	}

	resp, err := h.chatService.Messages(ctx, tenantID, conversationID, afterSequence)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Send handles POST /api/v1/conversations/:id/messages
//
// The user message is acknowledged with 202 Accepted; the reply arrives on
// the log after the typing delay. While a reply is pending further input is
// rejected with 409 Conflict.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateMessageContent(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.chatService.Send(ctx, tenantID, conversationID, req.Text)
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, resp)
}

// State handles GET /api/v1/conversations/:id/state
func (h *ChatHandler) State(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.chatService.State(ctx, tenantID, conversationID)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// Feedback handles POST /api/v1/conversations/:id/feedback
func (h *ChatHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Type != "up" && req.Type != "down" {
		writeError(w, http.StatusBadRequest, "type must be \"up\" or \"down\"")
		return
	}

	resp, err := h.chatService.Feedback(ctx, tenantID, conversationID, req.Type == "up")
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, resp)
}

// Disclaimer handles POST /api/v1/conversations/:id/disclaimer
func (h *ChatHandler) Disclaimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.chatService.Disclaimer(ctx, tenantID, conversationID)
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, resp)
}

func (h *ChatHandler) writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "conversation not found")
	case errors.Is(err, service.ErrReplyPending):
		writeError(w, http.StatusConflict, "a reply is already being typed")
	default:
		h.logger.Error("chat request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
