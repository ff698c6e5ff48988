package domain_test

import (
	"places/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPlace_SetRating_RecomputesAverage(t *testing.T) {
	t.Parallel()

	u1 := domain.UserID(uuid.New())
	u2 := domain.UserID(uuid.New())

	p := domain.Place{Status: domain.StatusValidated}
	require.InDelta(t, 0.0, p.AverageRating, 1e-9)

	p.SetRating(u1, 8)
	require.InDelta(t, 8.0, p.AverageRating, 1e-9)

	p.SetRating(u2, 6)
	require.InDelta(t, 7.0, p.AverageRating, 1e-9)
}

func TestPlace_SetRating_OverwritesPerUser(t *testing.T) {
	t.Parallel()

	u := domain.UserID(uuid.New())

	var p domain.Place
	p.SetRating(u, 8)
	p.SetRating(u, 7)

	require.Len(t, p.Ratings, 1)
	require.Equal(t, 7, p.Ratings[u])
	require.InDelta(t, 7.0, p.AverageRating, 1e-9)
}

func TestPlace_RemoveRating(t *testing.T) {
	t.Parallel()

	u1 := domain.UserID(uuid.New())
	u2 := domain.UserID(uuid.New())

	var p domain.Place
	p.SetRating(u1, 5)
	p.SetRating(u2, 10)
	require.InDelta(t, 7.5, p.AverageRating, 1e-9)

	require.True(t, p.RemoveRating(u1))
	require.InDelta(t, 10.0, p.AverageRating, 1e-9)

	// removing an absent entry is a no-op
	require.False(t, p.RemoveRating(u1))
	require.InDelta(t, 10.0, p.AverageRating, 1e-9)

	require.True(t, p.RemoveRating(u2))
	require.Empty(t, p.Ratings)
	require.InDelta(t, 0.0, p.AverageRating, 1e-9)
}

func TestValidationStatus_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, domain.StatusUnvalidated.Valid())
	require.True(t, domain.StatusValidated.Valid())
	require.True(t, domain.StatusRejected.Valid())
	require.False(t, domain.ValidationStatus("PENDING").Valid())
	require.False(t, domain.ValidationStatus("").Valid())
}
