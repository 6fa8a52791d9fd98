package memory

import (
	"context"
	"sort"

	"meetmatch/internal/domain"
)

type eventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(_ context.Context, e *domain.Event) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextEventID
	s.nextEventID++
	if e.Participants == nil {
		e.Participants = []string{}
	}
	s.events[e.ID] = copyEvent(e)
	return nil
}

func (r *eventRepository) GetByID(_ context.Context, id int) (*domain.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return copyEvent(e), nil
}

func (r *eventRepository) List(_ context.Context) ([]*domain.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, copyEvent(e))
	}
	sortEventsByID(out)
	return out, nil
}

func (r *eventRepository) ListByCategory(_ context.Context, category domain.Category) ([]*domain.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Event{}
	for _, e := range s.events {
		if e.Category == category {
			out = append(out, copyEvent(e))
		}
	}
	sortEventsByID(out)
	return out, nil
}

func (r *eventRepository) Update(_ context.Context, e *domain.Event) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	s.events[e.ID] = copyEvent(e)
	return nil
}

// copyEvent returns a copy with its own participants slice, so callers never
// mutate stored state without going through Update.
func copyEvent(e *domain.Event) *domain.Event {
	c := *e
	c.Participants = make([]string, len(e.Participants))
	copy(c.Participants, e.Participants)
	return &c
}

// sortEventsByID keeps list output in insertion order; map iteration alone
// is not deterministic.
func sortEventsByID(events []*domain.Event) {
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
}
