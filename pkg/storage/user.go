package storage

import (
	"context"
	"places/pkg/domain"
)

// UserStorage defines persistence operations for user accounts. The catalog
// uses it both as the backing of the authorization gate (role lookups) and to
// resolve rater identities.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row. Returns
	// ErrDuplicateUsername when the username is already taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by id. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByUsername fetches a user by username. Returns nil when not found.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// DeleteUser removes the user and returns the deleted row, or nil if it was
	// not found.
	DeleteUser(ctx context.Context, id domain.UserID) (*domain.User, error)
}
