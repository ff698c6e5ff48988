package storage

import (
	"context"
	"places/pkg/domain"
)

// PlaceStorage defines CRUD and query operations for places. The catalog
// service re-reads current state through these methods before every mutation,
// so implementations must always return the latest persisted record.
//
// Lookup methods return a nil place (and nil error) when no matching record
// exists; translating that into a not-found error is the caller's concern.
type PlaceStorage interface {
	// StorePlace inserts a new place and returns the stored row as it exists in
	// the database, including the generated id and timestamps.
	StorePlace(ctx context.Context, place domain.Place) (*domain.Place, error)
	// PlaceByID fetches a place by its id. Returns nil when not found.
	PlaceByID(ctx context.Context, id domain.PlaceID) (*domain.Place, error)
	// Places returns every place in the catalog, unfiltered.
	Places(ctx context.Context) ([]domain.Place, error)
	// PlacesByStatuses returns the places whose status is in the given set.
	// An empty set yields an empty list, never an error.
	PlacesByStatuses(ctx context.Context, statuses []domain.ValidationStatus) ([]domain.Place, error)
	// UpdatePlace overwrites the stored record identified by place.ID with the
	// given value (including the rating ledger and derived average) and returns
	// the updated row. Returns nil when the id no longer exists.
	UpdatePlace(ctx context.Context, place domain.Place) (*domain.Place, error)
	// DeletePlace removes the place and returns the deleted row, or nil if it
	// was not found (including a second delete of the same id).
	DeletePlace(ctx context.Context, id domain.PlaceID) (*domain.Place, error)
}
