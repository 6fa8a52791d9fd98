package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const actorIDKey contextKey = "actorID"

// SetActorID returns a context with the acting user's id set.
func SetActorID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, actorIDKey, userID)
}

// ActorIDFromContext returns the acting user's id from the context, if present.
func ActorIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(actorIDKey).(int)
	return id, ok
}

// DemoActor attributes every request to the one seeded identity. There is no
// session or token layer; this middleware is the whole identity story.
func DemoActor(userID int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetActorID(r.Context(), userID)))
		})
	}
}
