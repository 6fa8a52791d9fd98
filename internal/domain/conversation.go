package domain

import (
	"context"
	"errors"
	"time"
)

// ErrConversationNotFound is returned when a conversation lookup finds no row.
var ErrConversationNotFound = errors.New("conversation not found")

// Conversation is the single group-chat thread of an event. At most one
// exists per event; every creation path looks up before creating.
// swagger:model Conversation
type Conversation struct {
	ID            int       `json:"id"`
	EventID       int       `json:"eventId"`
	LastMessageID *int      `json:"lastMessageId"`
	LastActivity  time.Time `json:"lastActivity"`
}

// UserConversation is a conversation joined with its event, as returned by
// the conversation list.
type UserConversation struct {
	Conversation
	Event *Event `json:"event"`
}

// ConversationRepository defines the interface for conversation storage.
// Create does not enforce eventId uniqueness; callers must look up first.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *Conversation) error
	GetByEventID(ctx context.Context, eventID int) (*Conversation, error)
	Update(ctx context.Context, conversation *Conversation) error
}

// ChatService defines the business logic for event chat.
type ChatService interface {
	ListMessages(ctx context.Context, eventID int) ([]*Message, error)
	SendMessage(ctx context.Context, senderID, eventID int, content string) (*Message, error)
	ListUserConversations(ctx context.Context, userID int) ([]*UserConversation, error)
}
