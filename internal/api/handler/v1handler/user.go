package v1handler

import (
	"net/http"
	"time"

	"places/pkg/domain"

	"github.com/google/uuid"
)

// CreateUserRequest is the payload for registering a new account.
type CreateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserResponse is the JSON representation of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// DomainUserToV1 converts a domain user into its v1 JSON representation.
func DomainUserToV1(in *domain.User) *UserResponse {
	return &UserResponse{
		ID:        uuid.UUID(in.ID),
		Username:  in.Username,
		Role:      string(in.Role),
		CreatedAt: in.CreatedAt,
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	user, err := h.deps.Catalog.CreateUser(ctx,
		GetUserIDFromContext(ctx), req.Username, domain.Role(req.Role))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, DomainUserToV1(user))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := userIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	user, err := h.deps.Catalog.User(ctx, id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainUserToV1(user))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := userIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Catalog.DeleteUser(ctx, GetUserIDFromContext(ctx), id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
