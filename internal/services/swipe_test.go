package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetmatch/internal/domain"
)

// fakeSwipeRepo is an in-memory SwipeRepository for tests.
type fakeSwipeRepo struct {
	rows      []*domain.Swipe
	nextID    int
	createErr error
}

func newFakeSwipeRepo() *fakeSwipeRepo {
	return &fakeSwipeRepo{nextID: 1}
}

func (f *fakeSwipeRepo) Create(ctx context.Context, s *domain.Swipe) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, s)
	return nil
}

func (f *fakeSwipeRepo) ListByUserID(ctx context.Context, userID int) ([]*domain.Swipe, error) {
	out := []*domain.Swipe{}
	for _, s := range f.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeConversationRepo is an in-memory ConversationRepository for tests.
type fakeConversationRepo struct {
	byID        map[int]*domain.Conversation
	nextID      int
	createCalls int
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		byID:   make(map[int]*domain.Conversation),
		nextID: 1,
	}
}

func (f *fakeConversationRepo) Create(ctx context.Context, c *domain.Conversation) error {
	f.createCalls++
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConversationRepo) GetByEventID(ctx context.Context, eventID int) (*domain.Conversation, error) {
	for _, c := range f.byID {
		if c.EventID == eventID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domain.ErrConversationNotFound
}

func (f *fakeConversationRepo) Update(ctx context.Context, c *domain.Conversation) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrConversationNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func TestSwipeService_RecordSwipe_like_joins_event(t *testing.T) {
	eventRepo := newFakeEventRepo()
	seedFakeEvents(t, eventRepo)
	swipeRepo := newFakeSwipeRepo()
	conversationRepo := newFakeConversationRepo()
	svc := NewSwipeService(swipeRepo, eventRepo, conversationRepo)
	ctx := context.Background()

	swipe, err := svc.RecordSwipe(ctx, 1, 1, domain.SwipeLike)
	require.NoError(t, err)
	assert.Equal(t, 1, swipe.ID)
	assert.Equal(t, domain.SwipeLike, swipe.Action)

	event, err := eventRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, event.Participants)

	conversation, err := conversationRepo.GetByEventID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, conversation.EventID)
	assert.Nil(t, conversation.LastMessageID)
}

func TestSwipeService_RecordSwipe_pass_only_logs(t *testing.T) {
	eventRepo := newFakeEventRepo()
	seedFakeEvents(t, eventRepo)
	swipeRepo := newFakeSwipeRepo()
	conversationRepo := newFakeConversationRepo()
	svc := NewSwipeService(swipeRepo, eventRepo, conversationRepo)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, 1, 1, domain.SwipePass)
	require.NoError(t, err)

	event, err := eventRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, event.Participants)
	assert.Zero(t, conversationRepo.createCalls)
}

func TestSwipeService_RecordSwipe_double_like(t *testing.T) {
	eventRepo := newFakeEventRepo()
	seedFakeEvents(t, eventRepo)
	swipeRepo := newFakeSwipeRepo()
	conversationRepo := newFakeConversationRepo()
	svc := NewSwipeService(swipeRepo, eventRepo, conversationRepo)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, 1, 1, domain.SwipeLike)
	require.NoError(t, err)
	_, err = svc.RecordSwipe(ctx, 1, 1, domain.SwipeLike)
	require.NoError(t, err)

	// Liking twice appends the participant twice but never creates a second
	// conversation.
	event, err := eventRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1"}, event.Participants)
	assert.Equal(t, 1, conversationRepo.createCalls)

	swipes, err := svc.ListUserSwipes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, swipes, 2, "the swipe log keeps both rows")
}

func TestSwipeService_RecordSwipe_like_missing_event(t *testing.T) {
	eventRepo := newFakeEventRepo()
	swipeRepo := newFakeSwipeRepo()
	conversationRepo := newFakeConversationRepo()
	svc := NewSwipeService(swipeRepo, eventRepo, conversationRepo)
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, 1, 99, domain.SwipeLike)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	// The swipe row was recorded before the join failed; there is no rollback.
	swipes, err := svc.ListUserSwipes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, swipes, 1)
	assert.Zero(t, conversationRepo.createCalls)
}

func TestSwipeService_RecordSwipe_pass_missing_event(t *testing.T) {
	svc := NewSwipeService(newFakeSwipeRepo(), newFakeEventRepo(), newFakeConversationRepo())

	// A pass never touches the event, so a missing event is not an error.
	swipe, err := svc.RecordSwipe(context.Background(), 1, 99, domain.SwipePass)
	require.NoError(t, err)
	assert.Equal(t, 99, swipe.EventID)
}
