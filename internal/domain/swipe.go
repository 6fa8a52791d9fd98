package domain

import "context"

// SwipeAction is a user's decision on an event card.
type SwipeAction string

// Swipe actions.
const (
	SwipeLike SwipeAction = "like"
	SwipePass SwipeAction = "pass"
)

// Valid reports whether a is a known swipe action.
func (a SwipeAction) Valid() bool {
	return a == SwipeLike || a == SwipePass
}

// Swipe is one like/pass decision. The swipe log is append-only and keeps
// every row, including repeated swipes on the same event by the same user.
// swagger:model Swipe
type Swipe struct {
	ID      int         `json:"id"`
	UserID  int         `json:"userId"`
	EventID int         `json:"eventId"`
	Action  SwipeAction `json:"action"`
}

// SwipeRepository defines the interface for swipe log storage
type SwipeRepository interface {
	Create(ctx context.Context, swipe *Swipe) error
	ListByUserID(ctx context.Context, userID int) ([]*Swipe, error)
}

// SwipeService defines the business logic for recording swipes.
// A like joins the user into the event and guarantees the event's
// conversation exists; a pass only appends to the log.
type SwipeService interface {
	RecordSwipe(ctx context.Context, userID, eventID int, action SwipeAction) (*Swipe, error)
	ListUserSwipes(ctx context.Context, userID int) ([]*Swipe, error)
}
