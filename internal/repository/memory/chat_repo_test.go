package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetmatch/internal/domain"
)

func TestConversationRepository_CreateAndGetByEventID(t *testing.T) {
	repo := NewConversationRepository(NewStore())
	ctx := context.Background()

	conv := &domain.Conversation{EventID: 7, LastActivity: time.Now()}
	require.NoError(t, repo.Create(ctx, conv))
	assert.Equal(t, 1, conv.ID)
	assert.Nil(t, conv.LastMessageID)

	got, err := repo.GetByEventID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, got.ID)

	_, err = repo.GetByEventID(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
}

func TestConversationRepository_Update(t *testing.T) {
	repo := NewConversationRepository(NewStore())
	ctx := context.Background()

	conv := &domain.Conversation{EventID: 7, LastActivity: time.Now()}
	require.NoError(t, repo.Create(ctx, conv))

	messageID := 3
	conv.LastMessageID = &messageID
	conv.LastActivity = conv.LastActivity.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, conv))

	got, err := repo.GetByEventID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got.LastMessageID)
	assert.Equal(t, 3, *got.LastMessageID)

	ghost := &domain.Conversation{ID: 42, EventID: 9}
	assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrConversationNotFound)
}

func TestMessageRepository_ListByEventID_ordering(t *testing.T) {
	repo := NewMessageRepository(NewStore())
	ctx := context.Background()

	base := time.Now()
	// Created out of timestamp order on purpose.
	late := &domain.Message{SenderID: 1, EventID: 5, Content: "late", Timestamp: base.Add(2 * time.Minute)}
	early := &domain.Message{SenderID: 1, EventID: 5, Content: "early", Timestamp: base}
	other := &domain.Message{SenderID: 1, EventID: 6, Content: "other event", Timestamp: base.Add(time.Minute)}
	mid := &domain.Message{SenderID: 1, EventID: 5, Content: "mid", Timestamp: base.Add(time.Minute)}
	for _, m := range []*domain.Message{late, early, other, mid} {
		require.NoError(t, repo.Create(ctx, m))
	}

	messages, err := repo.ListByEventID(ctx, 5)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "early", messages[0].Content)
	assert.Equal(t, "mid", messages[1].Content)
	assert.Equal(t, "late", messages[2].Content)
}

func TestMessageRepository_ListByEventID_empty(t *testing.T) {
	repo := NewMessageRepository(NewStore())

	messages, err := repo.ListByEventID(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
