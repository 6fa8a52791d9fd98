package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorIDFromContext(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		ctx := SetActorID(context.Background(), 42)
		id, ok := ActorIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, 42, id)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := ActorIDFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestDemoActor(t *testing.T) {
	var gotID int
	var gotOK bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = ActorIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	rec := httptest.NewRecorder()
	DemoActor(7)(inner).ServeHTTP(rec, req)

	require.True(t, gotOK)
	assert.Equal(t, 7, gotID)
}
