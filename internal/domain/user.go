package domain

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when a user lookup finds no row.
var ErrUserNotFound = errors.New("user not found")

// User represents an app user. The demo deployment seeds exactly one.
// swagger:model User
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(username, password, name string, bio, avatar *string) *User {
	return &User{
		Username: username,
		Password: password,
		Name:     name,
		Bio:      bio,
		Avatar:   avatar,
	}
}

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// UserService defines the business logic for user profiles.
type UserService interface {
	GetByID(ctx context.Context, id int) (*User, error)
}
