package service

import "context"

const (
	EventMessageCreated   = "message.created"
	EventMessageDelivered = "message.delivered"
	EventMessageRead      = "message.read"
	EventThreadRead       = "thread.read"
	EventMessageEscalated = "message.escalated"
)

// MessageEvent is the envelope pushed to the realtime fan-out queue.
// Fields that do not apply to a given event stay empty.
type MessageEvent struct {
	Event       string `json:"event"`
	MessageID   int64  `json:"message_id,omitempty"`
	ThreadID    int64  `json:"thread_id,omitempty"`
	SenderID    int64  `json:"sender_id,omitempty"`
	RecipientID int64  `json:"recipient_id,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
	Count       int64  `json:"count,omitempty"`
	At          string `json:"at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event MessageEvent) error
}
