package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"places/internal/config"
	"places/pkg/domain"
	"places/pkg/serrors"
	"places/pkg/storage"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Options configure the catalog service. These settings are typically derived
// from application configuration.
type Options struct {
	// PurgeMaxAttempts is the maximum number of attempts the background worker
	// should make when processing a rating purge job before giving up.
	PurgeMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PurgeMaxAttempts: cfg.Catalog.PurgeMaxAttempts,
	}
}

// service is the concrete implementation of the Catalog interface. It
// coordinates the storage layer, the authorization gate and the per-place
// lock that serializes read-modify-write cycles.
type service struct {
	options Options
	storage storage.Storage
	gate    Gate
	locks   *keyLock
	ops     metric.Int64Counter
}

// New creates a Catalog backed by the given storage and authorization gate.
func New(strg storage.Storage, gate Gate, options Options) (Catalog, error) {
	meter := otel.Meter("places/internal/catalog")
	ops, err := meter.Int64Counter("catalog_operations_total",
		metric.WithDescription("Number of catalog operations by name and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}

	return &service{
		options: options,
		storage: strg,
		gate:    gate,
		locks:   newKeyLock(),
		ops:     ops,
	}, nil
}

func (s *service) record(ctx context.Context, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}

// requireAdmin aborts with an unauthorized error before any state is touched
// when the caller is not privileged.
func (s *service) requireAdmin(ctx context.Context, caller domain.UserID) error {
	privileged, err := s.gate.IsPrivileged(ctx, caller)
	if err != nil {
		return err
	}
	if !privileged {
		return serrors.With(serrors.ErrUnauthorized, "admin privileges required")
	}

	return nil
}

// validateDraft rejects drafts with missing required fields or an oversized
// description. Coordinates carry no further constraints here.
func validateDraft(draft domain.PlaceDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if strings.TrimSpace(draft.Location) == "" {
		return serrors.With(serrors.ErrBadRequest, "location is required")
	}
	if len(draft.Description) > domain.MaxDescriptionLength {
		return serrors.With(serrors.ErrBadRequest,
			"description exceeds %d characters", domain.MaxDescriptionLength)
	}

	return nil
}

// Places returns the unfiltered catalog. Admin only.
func (s *service) Places(ctx context.Context, caller domain.UserID) (_ []domain.Place, err error) {
	defer func() { s.record(ctx, "places", err) }()

	if err = s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	out, err := s.storage.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list places: %w", err)
	}

	return out, nil
}

// PlacesByStatus returns places in a single moderation state.
func (s *service) PlacesByStatus(ctx context.Context,
	caller domain.UserID, status domain.ValidationStatus) ([]domain.Place, error) {
	return s.PlacesByStatuses(ctx, caller, []domain.ValidationStatus{status})
}

// PlacesByStatuses returns places whose status is in the given set. The
// validated view is public; any other state in the set requires an admin.
func (s *service) PlacesByStatuses(ctx context.Context,
	caller domain.UserID, statuses []domain.ValidationStatus) (_ []domain.Place, err error) {
	defer func() { s.record(ctx, "places_by_statuses", err) }()

	if len(statuses) == 0 {
		return nil, nil
	}

	adminOnly := false
	for _, status := range statuses {
		if !status.Valid() {
			return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", string(status))
		}
		if status != domain.StatusValidated {
			adminOnly = true
		}
	}
	if adminOnly {
		if err = s.requireAdmin(ctx, caller); err != nil {
			return nil, err
		}
	}

	out, err := s.storage.PlacesByStatuses(ctx, statuses)
	if err != nil {
		return nil, fmt.Errorf("could not list places by statuses: %w", err)
	}

	return out, nil
}

// Place returns one place. Admins see everything; other callers only
// validated places.
func (s *service) Place(ctx context.Context,
	caller domain.UserID, id domain.PlaceID) (_ *domain.Place, err error) {
	defer func() { s.record(ctx, "place", err) }()

	privileged, err := s.gate.IsPrivileged(ctx, caller)
	if err != nil {
		return nil, err
	}

	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	if !privileged && place.Status != domain.StatusValidated {
		return nil, serrors.With(serrors.ErrUnauthorized, "place is not published")
	}

	return place, nil
}

// Create stores a new place. The stored status is always UNVALIDATED: the
// draft type has no status field, so there is nothing to coerce.
func (s *service) Create(ctx context.Context,
	caller domain.UserID, draft domain.PlaceDraft) (_ *domain.Place, err error) {
	defer func() { s.record(ctx, "create", err) }()

	if err = validateDraft(draft); err != nil {
		return nil, err
	}

	stored, err := s.storage.StorePlace(ctx, domain.Place{
		Name:        draft.Name,
		Description: draft.Description,
		Location:    draft.Location,
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
		Status:      domain.StatusUnvalidated,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store place: %w", err)
	}

	return stored, nil
}

// Update overwrites the draft fields of an existing place. Status, ratings
// and id are untouched by design.
func (s *service) Update(ctx context.Context,
	caller domain.UserID, id domain.PlaceID, draft domain.PlaceDraft) (_ *domain.Place, err error) {
	defer func() { s.record(ctx, "update", err) }()

	if err = s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	if err = validateDraft(draft); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(id)
	defer unlock()

	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	place.Name = draft.Name
	place.Description = draft.Description
	place.Location = draft.Location
	place.Latitude = draft.Latitude
	place.Longitude = draft.Longitude

	updated, err := s.storage.UpdatePlace(ctx, *place)
	if err != nil {
		return nil, fmt.Errorf("could not update place: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	return updated, nil
}

// Delete removes a place. A second delete of the same id fails not-found.
func (s *service) Delete(ctx context.Context, caller domain.UserID, id domain.PlaceID) (err error) {
	defer func() { s.record(ctx, "delete", err) }()

	if err = s.requireAdmin(ctx, caller); err != nil {
		return err
	}

	unlock := s.locks.lock(id)
	defer unlock()

	deleted, err := s.storage.DeletePlace(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete place: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "place not found")
	}

	return nil
}

// transition sets the moderation state unconditionally. Both target states are
// re-enterable, so no check of the current state is performed.
func (s *service) transition(ctx context.Context,
	caller domain.UserID, id domain.PlaceID, status domain.ValidationStatus) (*domain.Place, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(id)
	defer unlock()

	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	place.Status = status

	updated, err := s.storage.UpdatePlace(ctx, *place)
	if err != nil {
		return nil, fmt.Errorf("could not update place status: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	return updated, nil
}

// Validate moves the place to VALIDATED. Admin only.
func (s *service) Validate(ctx context.Context,
	caller domain.UserID, id domain.PlaceID) (_ *domain.Place, err error) {
	defer func() { s.record(ctx, "validate", err) }()

	return s.transition(ctx, caller, id, domain.StatusValidated)
}

// Reject moves the place to REJECTED. Admin only.
func (s *service) Reject(ctx context.Context,
	caller domain.UserID, id domain.PlaceID) (_ *domain.Place, err error) {
	defer func() { s.record(ctx, "reject", err) }()

	return s.transition(ctx, caller, id, domain.StatusRejected)
}

// Rate records the caller's rating for a validated place. The range check
// happens before any state is read so an invalid rating has no side effects.
func (s *service) Rate(ctx context.Context,
	caller domain.UserID, id domain.PlaceID, rating int) (_ *domain.Place, err error) {
	defer func() { s.record(ctx, "rate", err) }()

	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, serrors.With(serrors.ErrBadRequest,
			"rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}

	// the rater has to be a known account so ledger keys always reference
	// real users
	if _, err = s.gate.IsPrivileged(ctx, caller); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(id)
	defer unlock()

	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}
	if place.Status != domain.StatusValidated {
		return nil, serrors.With(serrors.ErrInvalidState, "only validated places can be rated")
	}

	place.SetRating(caller, rating)

	updated, err := s.storage.UpdatePlace(ctx, *place)
	if err != nil {
		return nil, fmt.Errorf("could not update place ratings: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	return updated, nil
}

// Ratings returns the rating ledger of a place without side effects.
func (s *service) Ratings(ctx context.Context, id domain.PlaceID) (_ domain.Ratings, err error) {
	defer func() { s.record(ctx, "ratings", err) }()

	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place: %w", err)
	}
	if place == nil {
		return nil, serrors.With(serrors.ErrNotFound, "place not found")
	}

	return place.Ratings, nil
}

// AverageRating returns the derived average of a place without side effects.
func (s *service) AverageRating(ctx context.Context, id domain.PlaceID) (_ float64, err error) {
	defer func() { s.record(ctx, "average_rating", err) }()

	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("could not fetch place: %w", err)
	}
	if place == nil {
		return 0, serrors.With(serrors.ErrNotFound, "place not found")
	}

	return place.AverageRating, nil
}

// CreateUser registers a new account. Admin only.
func (s *service) CreateUser(ctx context.Context,
	caller domain.UserID, username string, role domain.Role) (_ *domain.User, err error) {
	defer func() { s.record(ctx, "create_user", err) }()

	if err = s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "username is required")
	}
	if !role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown role %q", string(role))
	}

	stored, err := s.storage.StoreUser(ctx, domain.User{Username: username, Role: role})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "username %q already exists", username)
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return stored, nil
}

// DeleteUser removes an account and enqueues the rating purge in the same
// transaction, so either both happen or neither does.
func (s *service) DeleteUser(ctx context.Context,
	caller domain.UserID, id domain.UserID) (err error) {
	defer func() { s.record(ctx, "delete_user", err) }()

	if err = s.requireAdmin(ctx, caller); err != nil {
		return err
	}

	if err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteUser(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete user: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}

		if _, err := tx.AddJob(ctx, PurgeUserRatingsArgs{
			UserID:      uuid.UUID(id),
			maxAttempts: s.options.PurgeMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue rating purge: %w", err)
		}

		return nil
	}); err != nil {
		return err
	}

	return nil
}

// User returns a single account by id.
func (s *service) User(ctx context.Context, id domain.UserID) (_ *domain.User, err error) {
	defer func() { s.record(ctx, "user", err) }()

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// RemoveAllRatingsForUser sweeps every place and removes the user's ledger
// entry where present. The sweep is best-effort: a failing place is recorded
// in the report and the iteration continues; updates already applied stand.
func (s *service) RemoveAllRatingsForUser(ctx context.Context,
	userID domain.UserID) (_ PurgeReport, err error) {
	defer func() { s.record(ctx, "remove_all_ratings", err) }()

	all, err := s.storage.Places(ctx)
	if err != nil {
		return PurgeReport{}, fmt.Errorf("could not list places for purge: %w", err)
	}

	var report PurgeReport
	for _, candidate := range all {
		// skip places that never saw this user; no lock or write needed
		if _, ok := candidate.Ratings[userID]; !ok {
			continue
		}

		if purgeErr := s.purgeOne(ctx, candidate.ID, userID); purgeErr != nil {
			report.Failed = append(report.Failed, PurgeFailure{PlaceID: candidate.ID, Err: purgeErr})

			continue
		}
		report.Purged = append(report.Purged, candidate.ID)
	}

	return report, nil
}

// purgeOne removes the user's rating from a single place under the per-place
// lock, re-reading current state first.
func (s *service) purgeOne(ctx context.Context, id domain.PlaceID, userID domain.UserID) error {
	unlock := s.locks.lock(id)
	defer unlock()

	place, err := s.storage.PlaceByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not fetch place: %w", err)
	}
	if place == nil {
		// deleted since listing; nothing to purge
		return nil
	}

	if !place.RemoveRating(userID) {
		return nil
	}

	updated, err := s.storage.UpdatePlace(ctx, *place)
	if err != nil {
		return fmt.Errorf("could not persist purged ledger: %w", err)
	}
	if updated == nil {
		return nil
	}

	return nil
}
