// Package service provides the conversation store and the dialogue
// orchestrator for the travel assistant.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kolecko-ai/travel-assistant/internal/engine"
	"github.com/kolecko-ai/travel-assistant/internal/model"
	"github.com/kolecko-ai/travel-assistant/pkg/logger"
	"github.com/kolecko-ai/travel-assistant/pkg/metrics"
)

var (
	// ErrNotFound is returned when a conversation does not exist for the
	// tenant.
	ErrNotFound = errors.New("conversation not found")
	// ErrReplyPending is returned when input arrives while a reply is
	// still being "typed".
	ErrReplyPending = errors.New("a reply is already pending")
)

// conversation is the in-memory record behind one chat session: the
// append-only message log, the typing state, the per-session engine and
// any pending reply timer.
type conversation struct {
	mu sync.Mutex

	info     model.Conversation
	messages []model.Message
	nextSeq  uint64

	typing        bool
	typingCaption string

	engine  *engine.Engine
	pending *time.Timer
	closed  bool

	subs map[chan model.StreamEvent]struct{}
}

// appendLocked adds a message to the log and returns it. Callers hold mu.
func (c *conversation) appendLocked(sender model.Sender, text string, resp *engine.Response) model.Message {
	c.nextSeq++
	msg := model.Message{
		Seq:            c.nextSeq,
		ConversationID: c.info.ID,
		Sender:         sender,
		Text:           text,
		CreatedAt:      time.Now(),
	}
	if resp != nil {
		msg.Deals = resp.Deals
		msg.Activities = resp.Activities
		msg.Image = resp.Image
	}
	c.messages = append(c.messages, msg)
	c.info.MessageCount = len(c.messages)
	c.info.LastMessage = &msg
	c.info.UpdatedAt = msg.CreatedAt
	metrics.MessagesTotal.WithLabelValues(c.info.TenantID, string(sender)).Inc()
	return msg
}

// notifyLocked fans an event out to subscribers. Slow subscribers are
// skipped rather than blocking delivery. Callers hold mu.
func (c *conversation) notifyLocked(ev model.StreamEvent) {
	ev.Timestamp = time.Now()
	for ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// ConversationService owns all conversations in memory.
type ConversationService struct {
	mu            sync.RWMutex
	conversations map[string]*conversation

	newEngine func() *engine.Engine
	logger    *logger.Logger
}

// NewConversationService creates a conversation service. newEngine is
// invoked once per created conversation, so each session gets its own
// anti-repeat picker state.
func NewConversationService(newEngine func() *engine.Engine, log *logger.Logger) *ConversationService {
	return &ConversationService{
		conversations: make(map[string]*conversation),
		newEngine:     newEngine,
		logger:        log,
	}
}

// Create creates a new conversation.
func (s *ConversationService) Create(ctx context.Context, tenantID, userID string, req *model.CreateConversationRequest) (*model.Conversation, error) {
	now := time.Now()

	conv := &conversation{
		info: model.Conversation{
			ID:        uuid.Must(uuid.NewV7()).String(),
			TenantID:  tenantID,
			UserID:    userID,
			Title:     req.Title,
			CreatedAt: now,
			UpdatedAt: now,
		},
		engine: s.newEngine(),
		subs:   make(map[chan model.StreamEvent]struct{}),
	}

	// Copy before publishing into the map; afterwards info may only be
	// touched under conv.mu.
	info := conv.info

	s.mu.Lock()
	s.conversations[info.ID] = conv
	s.mu.Unlock()

	metrics.ConversationsTotal.WithLabelValues(tenantID).Inc()
	s.logger.WithConversation(tenantID, info.ID).Info("conversation created")

	return &info, nil
}

// get looks up a live conversation for the tenant.
func (s *ConversationService) get(tenantID, conversationID string) (*conversation, error) {
	s.mu.RLock()
	conv, exists := s.conversations[conversationID]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	// info is mutated under conv.mu, so the tenant and deletion checks
	// must hold it too.
	conv.mu.Lock()
	ok := conv.info.TenantID == tenantID && !conv.info.Deleted
	conv.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	return conv, nil
}

// Get retrieves a conversation by ID.
func (s *ConversationService) Get(ctx context.Context, tenantID, conversationID string) (*model.Conversation, error) {
	conv, err := s.get(tenantID, conversationID)
	if err != nil {
		return nil, err
	}
	conv.mu.Lock()
	info := conv.info
	conv.mu.Unlock()
	return &info, nil
}

// List retrieves conversations for a tenant.
func (s *ConversationService) List(ctx context.Context, tenantID string, limit, offset int) (*model.ListConversationsResponse, error) {
	s.mu.RLock()
	var convs []model.Conversation
	for _, conv := range s.conversations {
		conv.mu.Lock()
		if conv.info.TenantID == tenantID && !conv.info.Deleted {
			convs = append(convs, conv.info)
		}
		conv.mu.Unlock()
	}
	s.mu.RUnlock()

	total := len(convs)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &model.ListConversationsResponse{
		Conversations: convs[start:end],
		Total:         total,
		HasMore:       end < total,
	}, nil
}

// Update changes conversation metadata.
func (s *ConversationService) Update(ctx context.Context, tenantID, conversationID string, req *model.UpdateConversationRequest) (*model.Conversation, error) {
	conv, err := s.get(tenantID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	if req.Title != "" {
		conv.info.Title = req.Title
	}
	conv.info.UpdatedAt = time.Now()
	info := conv.info
	conv.mu.Unlock()
	return &info, nil
}

// Delete soft deletes a conversation, cancelling any pending reply so it
// cannot leak into a torn-down session, and closing its streams.
func (s *ConversationService) Delete(ctx context.Context, tenantID, conversationID string) error {
	conv, err := s.get(tenantID, conversationID)
	if err != nil {
		return err
	}

	conv.mu.Lock()
	conv.info.Deleted = true
	conv.info.UpdatedAt = time.Now()
	conv.closed = true
	if conv.pending != nil {
		conv.pending.Stop()
		conv.pending = nil
	}
	conv.typing = false
	conv.typingCaption = ""
	for ch := range conv.subs {
		close(ch)
		delete(conv.subs, ch)
	}
	conv.mu.Unlock()

	s.logger.WithConversation(tenantID, conversationID).Info("conversation deleted")
	return nil
}

// Subscribe registers a stream consumer for live conversation events. The
// returned cancel function must be called when the consumer goes away.
func (s *ConversationService) Subscribe(tenantID, conversationID string) (<-chan model.StreamEvent, func(), error) {
	conv, err := s.get(tenantID, conversationID)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan model.StreamEvent, 16)

	conv.mu.Lock()
	if conv.closed {
		conv.mu.Unlock()
		return nil, nil, ErrNotFound
	}
	conv.subs[ch] = struct{}{}
	conv.mu.Unlock()

	cancel := func() {
		conv.mu.Lock()
		if _, ok := conv.subs[ch]; ok {
			delete(conv.subs, ch)
			close(ch)
		}
		conv.mu.Unlock()
	}
	return ch, cancel, nil
}
