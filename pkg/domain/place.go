package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaceID uniquely identifies a place in the catalog.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PlaceID uuid.UUID

// String returns the canonical textual form of the place ID.
func (id PlaceID) String() string { return uuid.UUID(id).String() }

// ValidationStatus represents the moderation state of a place.
// Every place starts out unvalidated and is moved to validated or rejected
// by a privileged caller. Both target states can be re-entered: re-validating
// a rejected place or re-rejecting a validated one is legal.
type ValidationStatus string

const (
	// StatusUnvalidated is the initial state of every created place.
	StatusUnvalidated ValidationStatus = "UNVALIDATED"
	// StatusValidated marks a place approved by moderation. Only validated
	// places accept ratings.
	StatusValidated ValidationStatus = "VALIDATED"
	// StatusRejected marks a place refused by moderation.
	StatusRejected ValidationStatus = "REJECTED"
)

// Valid reports whether s is one of the known validation statuses.
func (s ValidationStatus) Valid() bool {
	switch s {
	case StatusUnvalidated, StatusValidated, StatusRejected:
		return true
	}

	return false
}

// Rating bounds and draft field limits enforced at the service boundary.
const (
	MinRating = 1
	MaxRating = 10

	MaxDescriptionLength = 1000
)

// Ratings is the per-place rating ledger: one integer rating per user.
// A user re-rating a place overwrites their previous entry.
type Ratings map[UserID]int

// Place is a catalogued point of interest subject to moderation and rating.
// It exclusively owns its rating ledger; AverageRating is derived from the
// ledger and is never set directly by callers.
type Place struct {
	// ID is the unique identifier of the place. It is assigned at creation
	// and never changes afterwards.
	ID PlaceID

	// Name is the display name of the place. Required.
	Name string
	// Description is an optional free-text description.
	Description string
	// Location is the human-readable location label, e.g. "Paris, France".
	Location string
	// Latitude and Longitude are the coordinates of the place.
	Latitude  float64
	Longitude float64

	// Ratings maps each rater to their current rating.
	Ratings Ratings
	// AverageRating is the arithmetic mean of the ledger values, 0.0 when the
	// ledger is empty. It is recomputed on every ledger mutation.
	AverageRating float64

	// Status is the current moderation state.
	Status ValidationStatus

	// CreatedAt is the time when the place was created.
	CreatedAt time.Time
	// UpdatedAt is the time of the last mutation, zero value when untouched.
	UpdatedAt time.Time
}

// SetRating inserts or overwrites the rating of the given user and recomputes
// the average. Range checking happens at the service boundary; the ledger
// never sees out-of-range values.
func (p *Place) SetRating(userID UserID, rating int) {
	if p.Ratings == nil {
		p.Ratings = Ratings{}
	}
	p.Ratings[userID] = rating
	p.recomputeAverage()
}

// RemoveRating deletes the rating of the given user if present and recomputes
// the average. Removing an absent entry is a no-op, not an error; the return
// value reports whether an entry existed.
func (p *Place) RemoveRating(userID UserID) bool {
	if _, ok := p.Ratings[userID]; !ok {
		return false
	}
	delete(p.Ratings, userID)
	p.recomputeAverage()

	return true
}

func (p *Place) recomputeAverage() {
	if len(p.Ratings) == 0 {
		p.AverageRating = 0.0

		return
	}

	var sum int
	for _, r := range p.Ratings {
		sum += r
	}
	p.AverageRating = float64(sum) / float64(len(p.Ratings))
}

// PlaceDraft is the restricted set of fields a caller may supply when creating
// or updating a place. It deliberately has no status, ratings or id fields:
// those are mutated exclusively through their dedicated operations, so a
// client-supplied status can never leak into the catalog.
type PlaceDraft struct {
	Name        string
	Description string
	Location    string
	Latitude    float64
	Longitude   float64
}
