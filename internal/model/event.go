package model

import (
	"time"
)

// StreamEventType identifies an SSE event emitted on a conversation stream.
type StreamEventType string

const (
	StreamEventMessage   StreamEventType = "message"
	StreamEventTyping    StreamEventType = "typing"
	StreamEventHeartbeat StreamEventType = "heartbeat"
)

// StreamEvent is one event on a conversation SSE stream.
type StreamEvent struct {
	Type          StreamEventType `json:"type"`
	Message       *Message        `json:"message,omitempty"`
	Typing        bool            `json:"typing,omitempty"`
	TypingCaption string          `json:"typing_caption,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

// HeartbeatEvent keeps SSE connections alive.
type HeartbeatEvent struct {
	Timestamp time.Time `json:"timestamp"`
}
