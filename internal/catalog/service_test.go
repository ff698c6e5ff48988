package catalog_test

import (
	"context"
	"strings"
	"testing"

	"places/internal/catalog"
	"places/pkg/domain"
	"places/pkg/serrors"
	"places/pkg/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (catalog.Catalog, *memory.Memory, domain.UserID, domain.UserID) {
	t.Helper()

	strg := memory.New()

	admin, err := strg.StoreUser(context.Background(), domain.User{Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)
	user, err := strg.StoreUser(context.Background(), domain.User{Username: "user", Role: domain.RoleUser})
	require.NoError(t, err)

	svc, err := catalog.New(strg, catalog.NewGate(strg), catalog.Options{PurgeMaxAttempts: 3})
	require.NoError(t, err)

	return svc, strg, admin.ID, user.ID
}

func createValidated(t *testing.T, svc catalog.Catalog, admin domain.UserID, name string) *domain.Place {
	t.Helper()

	place, err := svc.Create(context.Background(), admin, domain.PlaceDraft{
		Name:     name,
		Location: "Paris",
	})
	require.NoError(t, err)

	place, err = svc.Validate(context.Background(), admin, place.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusValidated, place.Status)

	return place
}

func TestCreateStartsUnvalidated(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	place, err := svc.Create(ctx, user, domain.PlaceDraft{
		Name:        "Tour Eiffel",
		Description: "Monument emblématique de Paris",
		Location:    "Paris",
		Latitude:    48.8584,
		Longitude:   2.2945,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusUnvalidated, place.Status)
	require.NotEqual(t, domain.PlaceID(uuid.Nil), place.ID)
	require.Empty(t, place.Ratings)
	require.Zero(t, place.AverageRating)

	// admins get no shortcut either
	place, err = svc.Create(ctx, admin, domain.PlaceDraft{Name: "Colisée", Location: "Rome"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusUnvalidated, place.Status)
}

func TestCreateRejectsInvalidDrafts(t *testing.T) {
	t.Parallel()

	svc, _, _, user := newTestCatalog(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, user, domain.PlaceDraft{Name: "  ", Location: "Paris"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Create(ctx, user, domain.PlaceDraft{Name: "Tour Eiffel", Location: ""})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Create(ctx, user, domain.PlaceDraft{
		Name:        "Tour Eiffel",
		Location:    "Paris",
		Description: strings.Repeat("x", domain.MaxDescriptionLength+1),
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestPlaceVisibility(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	draft, err := svc.Create(ctx, user, domain.PlaceDraft{Name: "Machu Picchu", Location: "Pérou"})
	require.NoError(t, err)

	// unvalidated places are hidden from regular callers but not from admins
	_, err = svc.Place(ctx, user, draft.ID)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	got, err := svc.Place(ctx, admin, draft.ID)
	require.NoError(t, err)
	require.Equal(t, draft.ID, got.ID)

	_, err = svc.Validate(ctx, admin, draft.ID)
	require.NoError(t, err)

	got, err = svc.Place(ctx, user, draft.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusValidated, got.Status)

	_, err = svc.Place(ctx, user, domain.PlaceID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestListAuthorization(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	createValidated(t, svc, admin, "Tour Eiffel")
	_, err := svc.Create(ctx, user, domain.PlaceDraft{Name: "Grande Muraille", Location: "Chine"})
	require.NoError(t, err)

	// the unfiltered catalog is for moderators only
	_, err = svc.Places(ctx, user)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	all, err := svc.Places(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// anyone may browse validated places
	validated, err := svc.PlacesByStatus(ctx, user, domain.StatusValidated)
	require.NoError(t, err)
	require.Len(t, validated, 1)

	_, err = svc.PlacesByStatus(ctx, user, domain.StatusUnvalidated)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	queue, err := svc.PlacesByStatus(ctx, admin, domain.StatusUnvalidated)
	require.NoError(t, err)
	require.Len(t, queue, 1)
}

func TestPlacesByStatusesEdgeCases(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	createValidated(t, svc, admin, "Statue de la Liberté")

	out, err := svc.PlacesByStatuses(ctx, user, nil)
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = svc.PlacesByStatuses(ctx, user,
		[]domain.ValidationStatus{domain.ValidationStatus("PENDING")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	// a mixed set counts as a moderation view
	_, err = svc.PlacesByStatuses(ctx, user,
		[]domain.ValidationStatus{domain.StatusValidated, domain.StatusRejected})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	out, err = svc.PlacesByStatuses(ctx, admin,
		[]domain.ValidationStatus{domain.StatusValidated, domain.StatusRejected})
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestValidateAndRejectAreReenterable(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	place, err := svc.Create(ctx, user, domain.PlaceDraft{Name: "Colisée", Location: "Rome"})
	require.NoError(t, err)

	place, err = svc.Validate(ctx, admin, place.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusValidated, place.Status)

	// validating an already validated place stays validated
	place, err = svc.Validate(ctx, admin, place.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusValidated, place.Status)

	place, err = svc.Reject(ctx, admin, place.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, place.Status)

	// and back again; transitions carry no precondition on the current state
	place, err = svc.Validate(ctx, admin, place.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusValidated, place.Status)

	_, err = svc.Validate(ctx, user, place.ID)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = svc.Reject(ctx, admin, domain.PlaceID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRate(t *testing.T) {
	t.Parallel()

	svc, strg, admin, user := newTestCatalog(t)
	ctx := context.Background()

	place := createValidated(t, svc, admin, "Tour Eiffel")

	rated, err := svc.Rate(ctx, user, place.ID, 8)
	require.NoError(t, err)
	require.InDelta(t, 8.0, rated.AverageRating, 1e-9)

	rated, err = svc.Rate(ctx, admin, place.ID, 6)
	require.NoError(t, err)
	require.InDelta(t, 7.0, rated.AverageRating, 1e-9)
	require.Len(t, rated.Ratings, 2)

	// the same user rating again overwrites instead of appending
	rated, err = svc.Rate(ctx, user, place.ID, 10)
	require.NoError(t, err)
	require.Len(t, rated.Ratings, 2)
	require.InDelta(t, 8.0, rated.AverageRating, 1e-9)

	avg, err := svc.AverageRating(ctx, place.ID)
	require.NoError(t, err)
	require.InDelta(t, 8.0, avg, 1e-9)

	ledger, err := svc.Ratings(ctx, place.ID)
	require.NoError(t, err)
	require.Equal(t, domain.Ratings{user: 10, admin: 6}, ledger)

	// the persisted record matches what the service returned
	stored, err := strg.PlaceByID(ctx, place.ID)
	require.NoError(t, err)
	require.Equal(t, rated.Ratings, stored.Ratings)
}

func TestRateRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	place := createValidated(t, svc, admin, "Tour Eiffel")

	for _, rating := range []int{0, -1, 11, 100} {
		_, err := svc.Rate(ctx, user, place.ID, rating)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "rating %d", rating)
	}

	// an out-of-range rating fails before place state is consulted
	_, err := svc.Rate(ctx, user, domain.PlaceID(uuid.New()), 42)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.Rate(ctx, domain.UserID(uuid.New()), place.ID, 5)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = svc.Rate(ctx, user, domain.PlaceID(uuid.New()), 5)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRateRequiresValidatedStatus(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	place, err := svc.Create(ctx, user, domain.PlaceDraft{Name: "Machu Picchu", Location: "Pérou"})
	require.NoError(t, err)

	_, err = svc.Rate(ctx, user, place.ID, 7)
	require.ErrorIs(t, err, serrors.ErrInvalidState)

	_, err = svc.Reject(ctx, admin, place.ID)
	require.NoError(t, err)

	_, err = svc.Rate(ctx, user, place.ID, 7)
	require.ErrorIs(t, err, serrors.ErrInvalidState)

	// ratings survive a later rejection and keep contributing to the average
	_, err = svc.Validate(ctx, admin, place.ID)
	require.NoError(t, err)
	rated, err := svc.Rate(ctx, user, place.ID, 7)
	require.NoError(t, err)
	require.InDelta(t, 7.0, rated.AverageRating, 1e-9)

	rejected, err := svc.Reject(ctx, admin, place.ID)
	require.NoError(t, err)
	require.Len(t, rejected.Ratings, 1)
	require.InDelta(t, 7.0, rejected.AverageRating, 1e-9)
}

func TestUpdateKeepsStatusAndRatings(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	place := createValidated(t, svc, admin, "Tour Eiffel")
	_, err := svc.Rate(ctx, user, place.ID, 9)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, admin, place.ID, domain.PlaceDraft{
		Name:        "Tour Eiffel",
		Description: "Révisée",
		Location:    "Paris, France",
		Latitude:    48.8584,
		Longitude:   2.2945,
	})
	require.NoError(t, err)
	require.Equal(t, "Révisée", updated.Description)
	require.Equal(t, domain.StatusValidated, updated.Status)
	require.Len(t, updated.Ratings, 1)
	require.InDelta(t, 9.0, updated.AverageRating, 1e-9)

	_, err = svc.Update(ctx, user, place.ID, domain.PlaceDraft{Name: "x", Location: "y"})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = svc.Update(ctx, admin, domain.PlaceID(uuid.New()),
		domain.PlaceDraft{Name: "x", Location: "y"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestDeleteTwiceFails(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	place := createValidated(t, svc, admin, "Colisée")

	require.ErrorIs(t, svc.Delete(ctx, user, place.ID), serrors.ErrUnauthorized)
	require.NoError(t, svc.Delete(ctx, admin, place.ID))
	require.ErrorIs(t, svc.Delete(ctx, admin, place.ID), serrors.ErrNotFound)

	_, err := svc.Place(ctx, admin, place.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, admin, "alice", domain.RoleUser)
	require.NoError(t, err)
	require.Equal(t, "alice", created.Username)
	require.Equal(t, domain.RoleUser, created.Role)

	_, err = svc.CreateUser(ctx, admin, "alice", domain.RoleAdmin)
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = svc.CreateUser(ctx, admin, "", domain.RoleUser)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.CreateUser(ctx, admin, "bob", domain.Role("ROOT"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = svc.CreateUser(ctx, user, "bob", domain.RoleUser)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestDeleteUserEnqueuesPurge(t *testing.T) {
	t.Parallel()

	svc, strg, admin, user := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, admin, user))

	got, err := svc.User(ctx, user)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Nil(t, got)

	jobs := strg.Jobs()
	require.Len(t, jobs, 1)
	args, ok := jobs[0].(catalog.PurgeUserRatingsArgs)
	require.True(t, ok)
	require.Equal(t, uuid.UUID(user), args.UserID)

	// a second delete of the same id enqueues nothing
	require.ErrorIs(t, svc.DeleteUser(ctx, admin, user), serrors.ErrNotFound)
	require.Len(t, strg.Jobs(), 1)
}

func TestRemoveAllRatingsForUser(t *testing.T) {
	t.Parallel()

	svc, _, admin, user := newTestCatalog(t)
	ctx := context.Background()

	first := createValidated(t, svc, admin, "Tour Eiffel")
	second := createValidated(t, svc, admin, "Colisée")
	untouched := createValidated(t, svc, admin, "Machu Picchu")

	_, err := svc.Rate(ctx, user, first.ID, 4)
	require.NoError(t, err)
	_, err = svc.Rate(ctx, admin, first.ID, 10)
	require.NoError(t, err)
	_, err = svc.Rate(ctx, user, second.ID, 6)
	require.NoError(t, err)
	_, err = svc.Rate(ctx, admin, untouched.ID, 3)
	require.NoError(t, err)

	report, err := svc.RemoveAllRatingsForUser(ctx, user)
	require.NoError(t, err)
	require.ElementsMatch(t, []domain.PlaceID{first.ID, second.ID}, report.Purged)
	require.Empty(t, report.Failed)

	// the other rater's entry stays and the averages follow the new ledgers
	got, err := svc.Place(ctx, admin, first.ID)
	require.NoError(t, err)
	require.Equal(t, domain.Ratings{admin: 10}, got.Ratings)
	require.InDelta(t, 10.0, got.AverageRating, 1e-9)

	got, err = svc.Place(ctx, admin, second.ID)
	require.NoError(t, err)
	require.Empty(t, got.Ratings)
	require.Zero(t, got.AverageRating)

	got, err = svc.Place(ctx, admin, untouched.ID)
	require.NoError(t, err)
	require.Equal(t, domain.Ratings{admin: 3}, got.Ratings)

	// a second sweep finds nothing left to purge
	report, err = svc.RemoveAllRatingsForUser(ctx, user)
	require.NoError(t, err)
	require.Empty(t, report.Purged)
	require.Empty(t, report.Failed)
}
