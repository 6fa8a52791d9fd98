package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"meetmatch/internal/domain"
)

type chatService struct {
	messageRepo      domain.MessageRepository
	conversationRepo domain.ConversationRepository
	swipeRepo        domain.SwipeRepository
	eventRepo        domain.EventRepository
}

func NewChatService(messageRepo domain.MessageRepository,
	conversationRepo domain.ConversationRepository,
	swipeRepo domain.SwipeRepository,
	eventRepo domain.EventRepository,
) domain.ChatService {
	return &chatService{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		swipeRepo:        swipeRepo,
		eventRepo:        eventRepo,
	}
}

func (s *chatService) ListMessages(ctx context.Context, eventID int) ([]*domain.Message, error) {
	return s.messageRepo.ListByEventID(ctx, eventID)
}

// SendMessage stores the message and synchronously updates the event's
// conversation bookkeeping when a conversation exists. A message sent before
// any like stores fine but touches no conversation; only a like creates one.
func (s *chatService) SendMessage(ctx context.Context, senderID, eventID int, content string) (*domain.Message, error) {
	message := &domain.Message{
		SenderID:  senderID,
		EventID:   eventID,
		Content:   content,
		Timestamp: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	conversation, err := s.conversationRepo.GetByEventID(ctx, eventID)
	if errors.Is(err, domain.ErrConversationNotFound) {
		return message, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	messageID := message.ID
	conversation.LastMessageID = &messageID
	conversation.LastActivity = message.Timestamp
	if err := s.conversationRepo.Update(ctx, conversation); err != nil {
		return nil, fmt.Errorf("update conversation: %w", err)
	}

	return message, nil
}

// ListUserConversations derives the user's conversation list from the swipe
// log: every liked event gets a conversation (created lazily here when the
// like predates one), joined with its event and sorted by most recent
// activity. Conversations whose event no longer resolves are dropped.
func (s *chatService) ListUserConversations(ctx context.Context, userID int) ([]*domain.UserConversation, error) {
	swipes, err := s.swipeRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list swipes: %w", err)
	}

	// The log may hold duplicate likes; membership makes it a set.
	seen := make(map[int]bool)
	var likedEventIDs []int
	for _, swipe := range swipes {
		if swipe.Action == domain.SwipeLike && !seen[swipe.EventID] {
			seen[swipe.EventID] = true
			likedEventIDs = append(likedEventIDs, swipe.EventID)
		}
	}

	out := []*domain.UserConversation{}
	for _, eventID := range likedEventIDs {
		conversation, err := ensureConversation(ctx, s.conversationRepo, eventID)
		if err != nil {
			return nil, fmt.Errorf("ensure conversation: %w", err)
		}
		event, err := s.eventRepo.GetByID(ctx, eventID)
		if errors.Is(err, domain.ErrEventNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		out = append(out, &domain.UserConversation{
			Conversation: *conversation,
			Event:        event,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out, nil
}
