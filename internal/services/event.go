package services

import (
	"context"
	"fmt"

	"meetmatch/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// ListEventsByCategory filters the feed. "all" is a pass-through alias for
// the unfiltered list; an unknown category yields an empty list rather than
// an error.
func (s *eventService) ListEventsByCategory(ctx context.Context, category string) ([]*domain.Event, error) {
	if category == domain.CategoryAll {
		return s.eventRepo.List(ctx)
	}
	return s.eventRepo.ListByCategory(ctx, domain.Category(category))
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.CreatorID == 0 {
		return fmt.Errorf("event creator is required")
	}
	// Participants always start empty; people join by liking.
	event.Participants = []string{}
	return s.eventRepo.Create(ctx, event)
}
