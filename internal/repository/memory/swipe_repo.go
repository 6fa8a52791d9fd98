package memory

import (
	"context"
	"sort"

	"meetmatch/internal/domain"
)

type swipeRepository struct {
	store *Store
}

func NewSwipeRepository(store *Store) domain.SwipeRepository {
	return &swipeRepository{store: store}
}

// Create appends to the swipe log. Duplicate rows for the same user/event
// pair are accepted; the log is append-only.
func (r *swipeRepository) Create(_ context.Context, sw *domain.Swipe) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	sw.ID = s.nextSwipeID
	s.nextSwipeID++
	c := *sw
	s.swipes[sw.ID] = &c
	return nil
}

func (r *swipeRepository) ListByUserID(_ context.Context, userID int) ([]*domain.Swipe, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Swipe{}
	for _, sw := range s.swipes {
		if sw.UserID == userID {
			c := *sw
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
