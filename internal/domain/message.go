package domain

import (
	"context"
	"time"
)

// Message is one chat message in an event's conversation. Messages are
// immutable once created.
// swagger:model Message
type Message struct {
	ID        int       `json:"id"`
	SenderID  int       `json:"senderId"`
	EventID   int       `json:"eventId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageRepository defines the interface for message storage.
// ListByEventID returns messages ordered by timestamp ascending.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	ListByEventID(ctx context.Context, eventID int) ([]*Message, error)
}
