package v1handler

import (
	"net/http"
	"time"

	"places/pkg/domain"

	"github.com/google/uuid"
)

// PlaceRequest is the payload for creating or updating a place. It carries the
// draft fields only; status and ratings cannot be supplied through this type.
type PlaceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func (req PlaceRequest) toDraft() domain.PlaceDraft {
	return domain.PlaceDraft{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
}

// PlaceResponse is the JSON representation of a place.
type PlaceResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	AverageRating float64    `json:"averageRating"`
	RatingCount   int        `json:"ratingCount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// RatingRequest is the payload for submitting a rating.
type RatingRequest struct {
	Rating int `json:"rating"`
}

// RatingsResponse is the rating ledger keyed by user id.
type RatingsResponse struct {
	Ratings map[string]int `json:"ratings"`
}

// AverageRatingResponse carries the derived average of a place.
type AverageRatingResponse struct {
	AverageRating float64 `json:"averageRating"`
}

// DomainPlaceToV1 converts a domain place into its v1 JSON representation.
// The raw ledger is not included; it has its own endpoint.
func DomainPlaceToV1(in *domain.Place) *PlaceResponse {
	var updatedAt *time.Time
	if !in.UpdatedAt.IsZero() {
		t := in.UpdatedAt
		updatedAt = &t
	}

	return &PlaceResponse{
		ID:            uuid.UUID(in.ID),
		Name:          in.Name,
		Description:   in.Description,
		Location:      in.Location,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		AverageRating: in.AverageRating,
		RatingCount:   len(in.Ratings),
		Status:        string(in.Status),
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func domainPlacesToV1(in []domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(in))
	for i := range in {
		out = append(out, *DomainPlaceToV1(&in[i]))
	}

	return out
}

func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	place, err := h.deps.Catalog.Create(ctx, GetUserIDFromContext(ctx), req.toDraft())
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, DomainPlaceToV1(place))
}

func (h *Handler) listPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	places, err := h.deps.Catalog.Places(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, domainPlacesToV1(places))
}

func (h *Handler) listByStatus(w http.ResponseWriter, r *http.Request, status domain.ValidationStatus) {
	ctx := r.Context()

	places, err := h.deps.Catalog.PlacesByStatus(ctx, GetUserIDFromContext(ctx), status)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, domainPlacesToV1(places))
}

func (h *Handler) listValidated(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.StatusValidated)
}

func (h *Handler) listUnvalidated(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.StatusUnvalidated)
}

func (h *Handler) listRejected(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.StatusRejected)
}

func (h *Handler) listModerationQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	places, err := h.deps.Catalog.PlacesByStatuses(ctx, GetUserIDFromContext(ctx),
		[]domain.ValidationStatus{domain.StatusUnvalidated, domain.StatusRejected})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, domainPlacesToV1(places))
}

func (h *Handler) getPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	place, err := h.deps.Catalog.Place(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainPlaceToV1(place))
}

func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req PlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	place, err := h.deps.Catalog.Update(ctx, GetUserIDFromContext(ctx), id, req.toDraft())
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainPlaceToV1(place))
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Catalog.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) validatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	place, err := h.deps.Catalog.Validate(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainPlaceToV1(place))
}

func (h *Handler) rejectPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	place, err := h.deps.Catalog.Reject(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainPlaceToV1(place))
}

func (h *Handler) ratePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req RatingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	place, err := h.deps.Catalog.Rate(ctx, GetUserIDFromContext(ctx), id, req.Rating)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainPlaceToV1(place))
}

func (h *Handler) listRatings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	ratings, err := h.deps.Catalog.Ratings(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	flat := make(map[string]int, len(ratings))
	for userID, rating := range ratings {
		flat[userID.String()] = rating
	}

	writeJSON(ctx, w, http.StatusOK, RatingsResponse{Ratings: flat})
}

func (h *Handler) averageRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := placeIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	average, err := h.deps.Catalog.AverageRating(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, AverageRatingResponse{AverageRating: average})
}
