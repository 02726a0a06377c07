package users

import (
	"context"
	"errors"
)

// Sentinel errors returned by Repository implementations. The service layer
// translates them into apperror values; handlers never see them directly.
var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a write collides with the unique
	// email constraint. The constraint, not the application-level pre-check,
	// is the source of truth for uniqueness under concurrency.
	ErrDuplicateEmail = errors.New("email already in use")
)

// Repository is the persistence contract for user records.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id string) error
}
