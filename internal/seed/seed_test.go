package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"meetmatch/internal/adapters/auth"
	"meetmatch/internal/repository/memory"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	events := memory.NewEventRepository(store)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	require.NoError(t, Run(ctx, logger, users, events, hasher))

	demo, err := users.GetByUsername(ctx, DemoUsername)
	require.NoError(t, err)
	assert.Equal(t, 1, demo.ID)
	assert.Equal(t, "Ahmet Kaya", demo.Name)
	assert.NotEqual(t, demoPassword, demo.Password)
	assert.NoError(t, hasher.Compare(demo.Password, demoPassword))

	all, err := events.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(sampleEvents))
	for _, event := range all {
		assert.Equal(t, demo.ID, event.CreatorID)
		assert.NotNil(t, event.Image)
		assert.Empty(t, event.Participants)
	}
}

func TestRun_is_idempotent(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	events := memory.NewEventRepository(store)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	require.NoError(t, Run(ctx, logger, users, events, hasher))
	require.NoError(t, Run(ctx, logger, users, events, hasher))

	all, err := events.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(sampleEvents))
}
