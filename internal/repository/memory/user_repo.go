package memory

import (
	"context"

	"meetmatch/internal/domain"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(_ context.Context, u *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = copyUser(u)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// copyUser returns a copy so callers never hold a pointer into the store.
func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}
