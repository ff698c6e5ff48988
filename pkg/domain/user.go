package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the user ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// Role is the capability level of a user.
type Role string

const (
	// RoleAdmin grants access to the moderation and management operations.
	RoleAdmin Role = "ADMIN"
	// RoleUser is the default role for regular raters.
	RoleUser Role = "USER"
)

// User is an account known to the catalog. The catalog consumes the role for
// authorization decisions and the identity as the rating-ledger key.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID
	// Username is unique across all users.
	Username string
	// Role determines whether the user may perform privileged operations.
	Role Role
	// CreatedAt is the time when the account was created.
	CreatedAt time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }
