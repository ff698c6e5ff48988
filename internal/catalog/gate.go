package catalog

import (
	"context"
	"fmt"

	"places/pkg/domain"
	"places/pkg/serrors"
	"places/pkg/storage"
)

// storageGate answers privilege checks from the users table. Roles are never
// taken from tokens or request payloads; the stored role is authoritative.
type storageGate struct {
	users storage.UserStorage
}

// NewGate creates a Gate backed by the given user storage.
func NewGate(users storage.UserStorage) Gate {
	return &storageGate{users: users}
}

// IsPrivileged reports whether the caller holds the admin role. An unknown
// caller id fails with a not-found error.
func (g *storageGate) IsPrivileged(ctx context.Context, caller domain.UserID) (bool, error) {
	user, err := g.users.UserByID(ctx, caller)
	if err != nil {
		return false, fmt.Errorf("could not fetch caller: %w", err)
	}
	if user == nil {
		return false, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user.IsAdmin(), nil
}
