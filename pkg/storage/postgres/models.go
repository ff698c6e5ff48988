package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"places/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgPlace struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name        string  `db:"name"`
	Description string  `db:"description"`
	Location    string  `db:"location"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`

	Ratings       json.RawMessage `db:"ratings"`
	AverageRating float64         `db:"average_rating"`

	Status string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

type PgUser struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	Username string    `db:"username"`
	Role     string    `db:"role"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

// ratingsToJSON flattens the domain ledger into a {userID: rating} object so
// it can live in a single JSONB column next to the derived average.
func ratingsToJSON(ratings domain.Ratings) (json.RawMessage, error) {
	flat := make(map[string]int, len(ratings))
	for userID, rating := range ratings {
		flat[userID.String()] = rating
	}

	b, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("could not marshal ratings: %w", err)
	}

	return b, nil
}

func ratingsFromJSON(raw json.RawMessage) (domain.Ratings, error) {
	flat := map[string]int{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &flat); err != nil {
			return nil, fmt.Errorf("could not unmarshal ratings: %w", err)
		}
	}

	ratings := make(domain.Ratings, len(flat))
	for key, rating := range flat {
		userID, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("could not parse rating user id %q: %w", key, err)
		}
		ratings[domain.UserID(userID)] = rating
	}

	return ratings, nil
}

func (p *PgPlace) ToDomain() (*domain.Place, error) {
	ratings, err := ratingsFromJSON(p.Ratings)
	if err != nil {
		return nil, err
	}

	return &domain.Place{
		ID:            domain.PlaceID(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		Ratings:       ratings,
		AverageRating: p.AverageRating,
		Status:        domain.ValidationStatus(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}, nil
}

func (p *PgPlace) FromDomain(place domain.Place) error {
	ratings, err := ratingsToJSON(place.Ratings)
	if err != nil {
		return err
	}

	*p = PgPlace{
		ID:            uuid.UUID(place.ID),
		Name:          place.Name,
		Description:   place.Description,
		Location:      place.Location,
		Latitude:      place.Latitude,
		Longitude:     place.Longitude,
		Ratings:       ratings,
		AverageRating: place.AverageRating,
		Status:        string(place.Status),
		CreatedAt:     place.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  place.UpdatedAt,
			Valid: !place.UpdatedAt.IsZero(),
		},
	}

	return nil
}

func pgPlacesToDomain(places []PgPlace) ([]domain.Place, error) {
	out := make([]domain.Place, 0, len(places))
	for _, place := range places {
		d, err := place.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func (u *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(u.ID),
		Username:  u.Username,
		Role:      domain.Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func (u *PgUser) FromDomain(user domain.User) {
	*u = PgUser{
		ID:        uuid.UUID(user.ID),
		Username:  user.Username,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
