package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kolecko-ai/travel-assistant/internal/engine"
	"github.com/kolecko-ai/travel-assistant/internal/model"
	"github.com/kolecko-ai/travel-assistant/pkg/logger"
	"github.com/kolecko-ai/travel-assistant/pkg/metrics"
)

// TypingDelays configures the simulated typing pause before a bot reply
// lands on the log. Replies that carry offers get the longer search base.
type TypingDelays struct {
	SearchBase  time.Duration
	DefaultBase time.Duration
	Jitter      time.Duration
}

// ChatService runs the dialogue loop: it appends user input, asks the
// engine for a reply and delivers that reply after a typing delay.
type ChatService struct {
	conversations *ConversationService
	delays        TypingDelays
	logger        *logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewChatService creates the dialogue orchestrator.
func NewChatService(conversations *ConversationService, delays TypingDelays, rnd *rand.Rand, log *logger.Logger) *ChatService {
	return &ChatService{
		conversations: conversations,
		delays:        delays,
		logger:        log,
		rnd:           rnd,
	}
}

func (s *ChatService) jitter() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.delays.Jitter <= 0 {
		return 0
	}
	return time.Duration(s.rnd.Int63n(int64(s.delays.Jitter)))
}

// Send accepts a user message, computes the reply and schedules its
// delivery. It returns ErrReplyPending while a previous reply is still
// being typed.
func (s *ChatService) Send(ctx context.Context, tenantID, conversationID, text string) (*model.SendMessageResponse, error) {
	conv, err := s.conversations.get(tenantID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	if conv.typing {
		conv.mu.Unlock()
		return nil, ErrReplyPending
	}

	userMsg := conv.appendLocked(model.SenderUser, text, nil)
	conv.notifyLocked(model.StreamEvent{Type: model.StreamEventMessage, Message: &userMsg})

	// The engine sees the full log including the message just appended.
	resp := conv.engine.Respond(text, conv.messages)
	caption := conv.engine.TypingCaption(resp.HasContent())

	base := s.delays.DefaultBase
	if resp.HasContent() {
		base = s.delays.SearchBase
	}
	delay := base + s.jitter()

	conv.typing = true
	conv.typingCaption = caption
	conv.notifyLocked(model.StreamEvent{Type: model.StreamEventTyping, Typing: true, TypingCaption: caption})
	s.scheduleLocked(conv, resp, delay)
	conv.mu.Unlock()

	metrics.RepliesMatched.WithLabelValues(resp.Path).Inc()
	metrics.TypingDelay.Observe(delay.Seconds())
	s.logger.WithConversation(tenantID, conversationID).Debug("reply scheduled",
		zap.String("path", resp.Path),
		zap.Duration("delay", delay),
	)

	return &model.SendMessageResponse{
		Message:       &userMsg,
		Typing:        true,
		TypingCaption: caption,
	}, nil
}

// scheduleLocked arms the reply timer. Callers hold conv.mu.
func (s *ChatService) scheduleLocked(conv *conversation, resp engine.Response, delay time.Duration) {
	conv.pending = time.AfterFunc(delay, func() {
		s.deliver(conv, resp)
	})
}

// deliver lands a scheduled bot reply on the log and clears the typing
// state. A conversation closed in the meantime swallows the reply.
func (s *ChatService) deliver(conv *conversation, resp engine.Response) {
	conv.mu.Lock()
	defer conv.mu.Unlock()

	if conv.closed {
		return
	}
	conv.typing = false
	conv.typingCaption = ""
	conv.pending = nil

	botMsg := conv.appendLocked(model.SenderBot, resp.Text, &resp)
	conv.notifyLocked(model.StreamEvent{Type: model.StreamEventTyping, Typing: false})
	conv.notifyLocked(model.StreamEvent{Type: model.StreamEventMessage, Message: &botMsg})

	if n := len(resp.Deals); n > 0 {
		metrics.DealsServed.Add(float64(n))
	}
}

// Messages returns the log after the given sequence number, along with
// the current typing state and contextual quick tags.
func (s *ChatService) Messages(ctx context.Context, tenantID, conversationID string, afterSeq uint64) (*model.ListMessagesResponse, error) {
	conv, err := s.conversations.get(tenantID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()

	var out []model.Message
	for _, m := range conv.messages {
		if m.Seq > afterSeq {
			out = append(out, m)
		}
	}

	resp := &model.ListMessagesResponse{
		Messages:      out,
		LastSeq:       conv.nextSeq,
		Typing:        conv.typing,
		TypingCaption: conv.typingCaption,
	}
	if !conv.typing {
		resp.QuickTags = conv.engine.QuickTags(conv.messages)
	}
	return resp, nil
}

// State returns the trip parameters extracted from the conversation so far.
func (s *ChatService) State(ctx context.Context, tenantID, conversationID string) (*engine.TripState, error) {
	conv, err := s.conversations.get(tenantID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	state := engine.ExtractFullState(conv.messages)
	conv.mu.Unlock()
	return &state, nil
}

// Feedback records a thumbs rating and schedules the acknowledgement reply.
func (s *ChatService) Feedback(ctx context.Context, tenantID, conversationID string, up bool) (*model.SendMessageResponse, error) {
	conv, err := s.conversations.get(tenantID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	if conv.typing {
		conv.mu.Unlock()
		return nil, ErrReplyPending
	}
	resp := conv.engine.FeedbackReply(up)
	s.scheduleReplyLocked(conv, resp)
	caption := conv.typingCaption
	conv.mu.Unlock()

	return &model.SendMessageResponse{Typing: true, TypingCaption: caption}, nil
}

// Disclaimer schedules the demo-data disclaimer reply.
func (s *ChatService) Disclaimer(ctx context.Context, tenantID, conversationID string) (*model.SendMessageResponse, error) {
	conv, err := s.conversations.get(tenantID, conversationID)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	if conv.typing {
		conv.mu.Unlock()
		return nil, ErrReplyPending
	}
	resp := conv.engine.DisclaimerReply()
	s.scheduleReplyLocked(conv, resp)
	caption := conv.typingCaption
	conv.mu.Unlock()

	return &model.SendMessageResponse{Typing: true, TypingCaption: caption}, nil
}

// scheduleReplyLocked arms a short-delay system reply (feedback,
// disclaimer). Callers hold conv.mu.
func (s *ChatService) scheduleReplyLocked(conv *conversation, resp engine.Response) {
	conv.typing = true
	conv.typingCaption = conv.engine.TypingCaption(false)
	conv.notifyLocked(model.StreamEvent{Type: model.StreamEventTyping, Typing: true, TypingCaption: conv.typingCaption})

	delay := s.delays.DefaultBase/2 + s.jitter()/2
	s.scheduleLocked(conv, resp, delay)
	metrics.TypingDelay.Observe(delay.Seconds())
}
