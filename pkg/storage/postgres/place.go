package postgres

import (
	"context"
	"fmt"
	"places/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	placesTable = "places"
)

func (p *PgSQL) StorePlace(ctx context.Context, place domain.Place) (*domain.Place, error) {
	var row PgPlace
	if err := row.FromDomain(place); err != nil {
		return nil, err
	}

	var result PgPlace
	found, err := p.Builder.Insert(placesTable).
		Rows(row).
		Returning(&PgPlace{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store place into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert place returned no row")
	}

	return result.ToDomain()
}

// PlaceByID fetches a single place by its id. Returns nil when no row matches.
func (p *PgSQL) PlaceByID(ctx context.Context, id domain.PlaceID) (*domain.Place, error) {
	var row PgPlace
	found, err := p.Builder.From(placesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch place by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Places returns every place ordered by creation time.
func (p *PgSQL) Places(ctx context.Context) ([]domain.Place, error) {
	var rows []PgPlace
	if err := p.Builder.From(placesTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch places from pg: %w", err)
	}

	return pgPlacesToDomain(rows)
}

// PlacesByStatuses returns the places whose status is in the given set.
// An empty set short-circuits to an empty result without touching the database.
func (p *PgSQL) PlacesByStatuses(ctx context.Context,
	statuses []domain.ValidationStatus) ([]domain.Place, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	vals := make([]string, 0, len(statuses))
	for _, s := range statuses {
		vals = append(vals, string(s))
	}

	var rows []PgPlace
	if err := p.Builder.From(placesTable).
		Where(goqu.I("status").In(vals)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch places by statuses from pg: %w", err)
	}

	return pgPlacesToDomain(rows)
}

// UpdatePlace overwrites the stored record with the given place value and sets
// updated_at. Returns nil when the id does not exist.
func (p *PgSQL) UpdatePlace(ctx context.Context, place domain.Place) (*domain.Place, error) {
	ratings, err := ratingsToJSON(place.Ratings)
	if err != nil {
		return nil, err
	}

	rec := goqu.Record{
		"name":           place.Name,
		"description":    place.Description,
		"location":       place.Location,
		"latitude":       place.Latitude,
		"longitude":      place.Longitude,
		"ratings":        ratings,
		"average_rating": place.AverageRating,
		"status":         string(place.Status),
		"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
	}

	var row PgPlace
	found, err := p.Builder.Update(placesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(place.ID))).
		Returning(&PgPlace{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update place in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeletePlace removes the row for the given id, returning the deleted record.
// A second delete of the same id finds no row and returns nil.
func (p *PgSQL) DeletePlace(ctx context.Context, id domain.PlaceID) (*domain.Place, error) {
	var row PgPlace
	found, err := p.Builder.Delete(placesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPlace{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete place in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
