package memory

import (
	"context"

	"meetmatch/internal/domain"
)

type conversationRepository struct {
	store *Store
}

func NewConversationRepository(store *Store) domain.ConversationRepository {
	return &conversationRepository{store: store}
}

// Create stores a new conversation. It does not check eventId uniqueness;
// callers look up with GetByEventID first.
func (r *conversationRepository) Create(_ context.Context, c *domain.Conversation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextConversationID
	s.nextConversationID++
	s.conversations[c.ID] = copyConversation(c)
	return nil
}

func (r *conversationRepository) GetByEventID(_ context.Context, eventID int) (*domain.Conversation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.conversations {
		if c.EventID == eventID {
			return copyConversation(c), nil
		}
	}
	return nil, domain.ErrConversationNotFound
}

func (r *conversationRepository) Update(_ context.Context, c *domain.Conversation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[c.ID]; !ok {
		return domain.ErrConversationNotFound
	}
	s.conversations[c.ID] = copyConversation(c)
	return nil
}

func copyConversation(c *domain.Conversation) *domain.Conversation {
	out := *c
	if c.LastMessageID != nil {
		id := *c.LastMessageID
		out.LastMessageID = &id
	}
	return &out
}
