package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"meetmatch/internal/domain"
)

type swipeService struct {
	swipeRepo        domain.SwipeRepository
	eventRepo        domain.EventRepository
	conversationRepo domain.ConversationRepository
}

func NewSwipeService(swipeRepo domain.SwipeRepository,
	eventRepo domain.EventRepository,
	conversationRepo domain.ConversationRepository,
) domain.SwipeService {
	return &swipeService{
		swipeRepo:        swipeRepo,
		eventRepo:        eventRepo,
		conversationRepo: conversationRepo,
	}
}

// RecordSwipe appends the swipe to the log and, for a like, joins the user
// into the event and guarantees the event's conversation exists. The swipe
// row is kept even when the join fails; the log is append-only.
func (s *swipeService) RecordSwipe(ctx context.Context, userID, eventID int, action domain.SwipeAction) (*domain.Swipe, error) {
	swipe := &domain.Swipe{
		UserID:  userID,
		EventID: eventID,
		Action:  action,
	}
	if err := s.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, fmt.Errorf("create swipe: %w", err)
	}

	if action == domain.SwipeLike {
		if err := s.joinEvent(ctx, eventID, userID); err != nil {
			return nil, fmt.Errorf("join event: %w", err)
		}
	}

	return swipe, nil
}

func (s *swipeService) ListUserSwipes(ctx context.Context, userID int) ([]*domain.Swipe, error) {
	return s.swipeRepo.ListByUserID(ctx, userID)
}

// joinEvent appends the user to the event's participant list and ensures the
// event's conversation exists. There is no dedup check: a repeated like
// appends the same user ID again.
func (s *swipeService) joinEvent(ctx context.Context, eventID, userID int) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	event.Participants = append(event.Participants, strconv.Itoa(userID))
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return err
	}

	_, err = ensureConversation(ctx, s.conversationRepo, eventID)
	return err
}

// ensureConversation returns the event's conversation, creating it if it does
// not exist yet. Lookup-before-create is what keeps conversations unique per
// event.
func ensureConversation(ctx context.Context, conversations domain.ConversationRepository, eventID int) (*domain.Conversation, error) {
	conversation, err := conversations.GetByEventID(ctx, eventID)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, domain.ErrConversationNotFound) {
		return nil, err
	}
	conversation = &domain.Conversation{
		EventID:      eventID,
		LastActivity: time.Now(),
	}
	if err := conversations.Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}
