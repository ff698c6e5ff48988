// Package v1handler implements the v1 HTTP API of the place catalog on top of
// net/http method-pattern routing. Handlers translate between JSON payloads
// and the catalog's domain types; all authorization decisions live in the
// catalog itself.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"places/internal/catalog"
	"places/pkg/domain"
	"places/pkg/logger"
	"places/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps carries the dependencies required by the v1 handlers.
type Deps struct {
	Catalog catalog.Catalog
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every v1 route on the given mux, wrapped with the bearer
// authentication middleware. Literal segments such as /places/validated take
// precedence over the {id} wildcard in the mux, so both can coexist.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	auth := func(fn http.HandlerFunc) http.Handler { return sec.Wrap(fn) }

	mux.Handle("POST /v1/places", auth(h.createPlace))
	mux.Handle("GET /v1/places", auth(h.listPlaces))
	mux.Handle("GET /v1/places/validated", auth(h.listValidated))
	mux.Handle("GET /v1/places/unvalidated", auth(h.listUnvalidated))
	mux.Handle("GET /v1/places/rejected", auth(h.listRejected))
	mux.Handle("GET /v1/places/moderation-queue", auth(h.listModerationQueue))
	mux.Handle("GET /v1/places/{id}", auth(h.getPlace))
	mux.Handle("PUT /v1/places/{id}", auth(h.updatePlace))
	mux.Handle("DELETE /v1/places/{id}", auth(h.deletePlace))
	mux.Handle("PATCH /v1/places/{id}/validate", auth(h.validatePlace))
	mux.Handle("PATCH /v1/places/{id}/reject", auth(h.rejectPlace))
	mux.Handle("POST /v1/places/{id}/ratings", auth(h.ratePlace))
	mux.Handle("GET /v1/places/{id}/ratings", auth(h.listRatings))
	mux.Handle("GET /v1/places/{id}/ratings/average", auth(h.averageRating))

	mux.Handle("POST /v1/users", auth(h.createUser))
	mux.Handle("GET /v1/users/{id}", auth(h.getUser))
	mux.Handle("DELETE /v1/users/{id}", auth(h.deleteUser))
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "internal error handling request", zap.Error(err))
		msg = "internal server error"
	}

	writeJSON(ctx, w, status, ErrorResponse{Error: msg})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response body", zap.Error(err))
	}
}

func decodeJSON(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body")
	}

	return nil
}

// placeIDFromPath parses the {id} path segment.
func placeIDFromPath(r *http.Request) (domain.PlaceID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.PlaceID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid place id")
	}

	return domain.PlaceID(id), nil
}

func userIDFromPath(r *http.Request) (domain.UserID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid user id")
	}

	return domain.UserID(id), nil
}
