// Package catalog implements the place catalog core: creation and field
// updates, the moderation state machine, rating submission with derived
// averages and the user-rating purge sweep. All state lives behind the
// storage interfaces; every operation re-reads current state before mutating.
package catalog

import (
	"context"
	"places/pkg/domain"
)

//go:generate mockgen -package mockcatalog -source=catalog.go -destination=mock/mockcatalog.go *

// Catalog is the public contract of the place service. The caller parameter
// identifies who is invoking the operation; privileged operations verify the
// caller through the Gate before touching any state.
type Catalog interface {
	// Places returns every place regardless of status. Admin only.
	Places(ctx context.Context, caller domain.UserID) ([]domain.Place, error)
	// PlacesByStatus returns the places in the given moderation state.
	// Only the validated view is public; other states are admin only.
	PlacesByStatus(ctx context.Context,
		caller domain.UserID, status domain.ValidationStatus) ([]domain.Place, error)
	// PlacesByStatuses returns the places whose status is in the given set.
	// An empty set yields an empty list. Any non-validated state in the set
	// makes the call admin only.
	PlacesByStatuses(ctx context.Context,
		caller domain.UserID, statuses []domain.ValidationStatus) ([]domain.Place, error)
	// Place returns a single place. Admins can fetch any place; other callers
	// only validated ones.
	Place(ctx context.Context, caller domain.UserID, id domain.PlaceID) (*domain.Place, error)

	// Create stores a new place from the draft. The stored place always starts
	// UNVALIDATED; the draft type carries no status field, so a caller cannot
	// supply one.
	Create(ctx context.Context, caller domain.UserID, draft domain.PlaceDraft) (*domain.Place, error)
	// Update overwrites the draft fields (name, description, location,
	// coordinates) of an existing place. Status, ratings and id are not
	// reachable through this path. Admin only.
	Update(ctx context.Context,
		caller domain.UserID, id domain.PlaceID, draft domain.PlaceDraft) (*domain.Place, error)
	// Delete removes a place. A delete of an unknown (or already deleted) id
	// fails with a not-found error. Admin only.
	Delete(ctx context.Context, caller domain.UserID, id domain.PlaceID) error

	// Validate moves the place to VALIDATED regardless of its current state.
	// Admin only.
	Validate(ctx context.Context, caller domain.UserID, id domain.PlaceID) (*domain.Place, error)
	// Reject moves the place to REJECTED regardless of its current state.
	// Admin only.
	Reject(ctx context.Context, caller domain.UserID, id domain.PlaceID) (*domain.Place, error)

	// Rate records the caller's rating for a validated place, overwriting any
	// previous rating by the same caller, and recomputes the average.
	Rate(ctx context.Context, caller domain.UserID, id domain.PlaceID, rating int) (*domain.Place, error)
	// Ratings returns the rating ledger of a place. Pure read.
	Ratings(ctx context.Context, id domain.PlaceID) (domain.Ratings, error)
	// AverageRating returns the derived average of a place. Pure read.
	AverageRating(ctx context.Context, id domain.PlaceID) (float64, error)

	// CreateUser registers a new account. Admin only.
	CreateUser(ctx context.Context, caller domain.UserID, username string, role domain.Role) (*domain.User, error)
	// DeleteUser removes an account and enqueues the purge of all its ratings
	// in the same transaction. Admin only.
	DeleteUser(ctx context.Context, caller domain.UserID, id domain.UserID) error
	// User returns a single account by id.
	User(ctx context.Context, id domain.UserID) (*domain.User, error)

	// RemoveAllRatingsForUser sweeps every place and removes the user's ledger
	// entry where present, recomputing and persisting each affected place. The
	// sweep is best-effort: per-place failures are collected in the report and
	// already-applied updates are not rolled back.
	RemoveAllRatingsForUser(ctx context.Context, userID domain.UserID) (PurgeReport, error)
}

// Gate answers the capability question "is this caller an admin". It is the
// only authorization primitive the catalog consumes.
type Gate interface {
	// IsPrivileged reports whether the caller holds the admin role. Unknown
	// callers fail with a not-found error.
	IsPrivileged(ctx context.Context, caller domain.UserID) (bool, error)
}

// PurgeFailure records one place the purge sweep could not update.
type PurgeFailure struct {
	PlaceID domain.PlaceID
	Err     error
}

// PurgeReport summarizes a best-effort rating purge sweep: which places had
// an entry removed and which failed mid-sweep.
type PurgeReport struct {
	// Purged lists the places whose ledger contained the user and were
	// successfully rewritten.
	Purged []domain.PlaceID
	// Failed lists the places whose rewrite failed; their prior state is
	// untouched but earlier updates in the same sweep stand.
	Failed []PurgeFailure
}
