// Package memory implements the domain repositories over a single in-process
// store. Entities live only in memory and vanish on process restart; there is
// no persistence layer behind it.
package memory

import (
	"sync"

	"meetmatch/internal/domain"
)

// Store is the single source of truth: five keyed maps plus a monotonic ID
// counter per entity type. One lock guards the whole store — every operation
// is a map access or a linear scan over small collections, so finer locking
// buys nothing. Repositories share one Store and must be constructed from it.
type Store struct {
	mu sync.RWMutex

	users         map[int]*domain.User
	events        map[int]*domain.Event
	swipes        map[int]*domain.Swipe
	messages      map[int]*domain.Message
	conversations map[int]*domain.Conversation

	nextUserID         int
	nextEventID        int
	nextSwipeID        int
	nextMessageID      int
	nextConversationID int
}

// NewStore returns an empty Store with all counters starting at 1.
func NewStore() *Store {
	return &Store{
		users:              make(map[int]*domain.User),
		events:             make(map[int]*domain.Event),
		swipes:             make(map[int]*domain.Swipe),
		messages:           make(map[int]*domain.Message),
		conversations:      make(map[int]*domain.Conversation),
		nextUserID:         1,
		nextEventID:        1,
		nextSwipeID:        1,
		nextMessageID:      1,
		nextConversationID: 1,
	}
}
