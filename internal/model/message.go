package model

import (
	"time"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn in a conversation. Messages are immutable once
// appended to the conversation log.
type Message struct {
	// Seq is assigned by the conversation log, monotonically per conversation.
	Seq            uint64 `json:"seq"`
	ConversationID string `json:"conversation_id"`
	Sender         Sender `json:"sender"`
	Text           string `json:"text"`

	// Optional payloads attached to bot replies.
	Deals      []Deal     `json:"deals,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
	Image      string     `json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// SendMessageRequest is the request to send a user message.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessageResponse acknowledges an accepted user message. The bot reply
// arrives on the log after the typing delay.
type SendMessageResponse struct {
	Message       *Message `json:"message"`
	Typing        bool     `json:"typing"`
	TypingCaption string   `json:"typing_caption,omitempty"`
}

// QuickTag is a contextual shortcut the UI can offer above the input.
type QuickTag struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ListMessagesResponse is the response for listing messages.
type ListMessagesResponse struct {
	Messages      []Message  `json:"messages"`
	LastSeq       uint64     `json:"last_seq"`
	Typing        bool       `json:"typing"`
	TypingCaption string     `json:"typing_caption,omitempty"`
	QuickTags     []QuickTag `json:"quick_tags,omitempty"`
}

// FeedbackRequest carries a thumbs up/down rating of the last reply.
type FeedbackRequest struct {
	Type string `json:"type"` // "up" or "down"
}
