package domain

import (
	"context"
	"errors"
)

// ErrEventNotFound is returned when an event lookup finds no row.
var ErrEventNotFound = errors.New("event not found")

// Category classifies an event. The set is closed.
type Category string

// Event categories.
const (
	CategoryEvent      Category = "event"
	CategoryDating     Category = "dating"
	CategoryFriendship Category = "friendship"
)

// CategoryAll is the list-filter alias for "no filter". It is never stored on an event.
const CategoryAll = "all"

// Valid reports whether c is one of the storable categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEvent, CategoryDating, CategoryFriendship:
		return true
	}
	return false
}

// Event represents a discoverable meetup event.
// Participants holds user IDs as strings, in join order; repeated likes
// append repeated entries, and the list never shrinks.
// swagger:model Event
type Event struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Location     string   `json:"location"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	CreatorID    int      `json:"creatorId"`
	Participants []string `json:"participants"`
	Image        *string  `json:"image"`
}

// NewEvent returns a new Event with an empty participant list.
// ID is set by the repository on create.
func NewEvent(title, description string, category Category, location, date, eventTime string, image *string, creatorID int) *Event {
	return &Event{
		Title:        title,
		Description:  description,
		Category:     category,
		Location:     location,
		Date:         date,
		Time:         eventTime,
		CreatorID:    creatorID,
		Participants: []string{},
		Image:        image,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListByCategory(ctx context.Context, category Category) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
}

// EventService defines the business logic for the event feed.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	ListEventsByCategory(ctx context.Context, category string) ([]*Event, error)
	CreateEvent(ctx context.Context, event *Event) error
}
