package memory

import (
	"context"
	"sort"

	"meetmatch/internal/domain"
)

type messageRepository struct {
	store *Store
}

func NewMessageRepository(store *Store) domain.MessageRepository {
	return &messageRepository{store: store}
}

func (r *messageRepository) Create(_ context.Context, m *domain.Message) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextMessageID
	s.nextMessageID++
	c := *m
	s.messages[m.ID] = &c
	return nil
}

// ListByEventID returns the event's messages ordered by timestamp ascending,
// with ID as the tiebreaker for messages created in the same instant.
func (r *messageRepository) ListByEventID(_ context.Context, eventID int) ([]*domain.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Message{}
	for _, m := range s.messages {
		if m.EventID == eventID {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
