package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolecko-ai/travel-assistant/internal/catalog"
	"github.com/kolecko-ai/travel-assistant/internal/engine"
	"github.com/kolecko-ai/travel-assistant/internal/middleware"
	"github.com/kolecko-ai/travel-assistant/internal/model"
	"github.com/kolecko-ai/travel-assistant/internal/service"
	"github.com/kolecko-ai/travel-assistant/pkg/logger"
)

// newTestRouter wires the full conversation API with fast typing delays
// and an identity stub in place of the JWT middleware.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	rnd := rand.New(rand.NewSource(1))
	deals := catalog.NewDealStore(rnd)
	activities := catalog.NewActivityStore()

	newEngine := func() *engine.Engine {
		return engine.New(deals, activities, 5, rand.New(rand.NewSource(1)))
	}
	log := logger.NewNop()

	convSvc := service.NewConversationService(newEngine, log)
	chatSvc := service.NewChatService(convSvc, service.TypingDelays{
		SearchBase:  5 * time.Millisecond,
		DefaultBase: 5 * time.Millisecond,
		Jitter:      time.Millisecond,
	}, rand.New(rand.NewSource(1)), log)

	conversationHandler := NewConversationHandler(convSvc, log)
	chatHandler := NewChatHandler(chatSvc, log)
	streamHandler := NewStreamHandler(chatSvc, convSvc, log)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), middleware.TenantIDKey, "tenant-1")
			ctx = context.WithValue(ctx, middleware.UserIDKey, "user-1")
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Route("/conversations", func(r chi.Router) {
		r.Post("/", conversationHandler.Create)
		r.Get("/", conversationHandler.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", conversationHandler.Get)
			r.Delete("/", conversationHandler.Delete)
			r.Get("/messages", chatHandler.List)
			r.Post("/messages", chatHandler.Send)
			r.Get("/state", chatHandler.State)
			r.Post("/feedback", chatHandler.Feedback)
			r.Get("/stream", streamHandler.Stream)
		})
	})
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createTestConversation(t *testing.T, r chi.Router) string {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/conversations", model.CreateConversationRequest{Title: "test"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var conv model.Conversation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&conv))
	return conv.ID
}

func awaitBotReply(t *testing.T, r chi.Router, convID string) model.ListMessagesResponse {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		rec := doJSON(t, r, http.MethodGet, "/conversations/"+convID+"/messages", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.ListMessagesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		for _, m := range resp.Messages {
			if m.Sender == model.SenderBot {
				return resp
			}
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("bot reply did not arrive in time")
	return model.ListMessagesResponse{}
}

func TestCreateAndGetConversation(t *testing.T) {
	r := newTestRouter(t)
	id := createTestConversation(t, r)

	rec := doJSON(t, r, http.MethodGet, "/conversations/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/conversations", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUnknownConversation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/conversations/0190e7a4-5f3e-7d2a-9c1b-2f3a4b5c6d7e", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/conversations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessageFlow(t *testing.T) {
	r := newTestRouter(t)
	id := createTestConversation(t, r)

	rec := doJSON(t, r, http.MethodPost, "/conversations/"+id+"/messages", model.SendMessageRequest{Text: "Ahoj"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var ack model.SendMessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ack))
	assert.True(t, ack.Typing)

	resp := awaitBotReply(t, r, id)
	assert.Len(t, resp.Messages, 2)
}

func TestSendMessageConflictWhileTyping(t *testing.T) {
	r := newTestRouter(t)
	id := createTestConversation(t, r)

	rec := doJSON(t, r, http.MethodPost, "/conversations/"+id+"/messages", model.SendMessageRequest{Text: "Ahoj"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/conversations/"+id+"/messages", model.SendMessageRequest{Text: "ještě něco"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendMessageValidation(t *testing.T) {
	r := newTestRouter(t)
	id := createTestConversation(t, r)

	rec := doJSON(t, r, http.MethodPost, "/conversations/"+id+"/messages", model.SendMessageRequest{Text: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStateEndpoint(t *testing.T) {
	r := newTestRouter(t)
	id := createTestConversation(t, r)

	rec := doJSON(t, r, http.MethodPost, "/conversations/"+id+"/messages", model.SendMessageRequest{Text: "Krkonoše a polopenze"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	awaitBotReply(t, r, id)

	rec = doJSON(t, r, http.MethodGet, "/conversations/"+id+"/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var state engine.TripState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, "Krkonoše", state.Location)
	assert.Equal(t, "polopenze", state.Meals)
}

func TestFeedbackEndpoint(t *testing.T) {
	r := newTestRouter(t)
	id := createTestConversation(t, r)

	rec := doJSON(t, r, http.MethodPost, "/conversations/"+id+"/feedback", model.FeedbackRequest{Type: "down"})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/conversations/"+id+"/feedback", model.FeedbackRequest{Type: "sideways"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamReplay(t *testing.T) {
	r := newTestRouter(t)
	id := createTestConversation(t, r)

	rec := doJSON(t, r, http.MethodPost, "/conversations/"+id+"/messages", model.SendMessageRequest{Text: "Ahoj"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	awaitBotReply(t, r, id)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/conversations/"+id+"/stream", nil).WithContext(ctx)
	rec2 := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec2, req)
		close(done)
	}()

	// Give the handler time to replay, then disconnect.
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not return after disconnect")
	}

	body := rec2.Body.String()
	assert.Equal(t, "text/event-stream", rec2.Header().Get("Content-Type"))
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: message")
	assert.Contains(t, body, "event: replay_complete")
}
