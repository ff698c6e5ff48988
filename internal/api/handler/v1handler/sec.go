package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"places/internal/config"
	"places/pkg/domain"
	"places/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// UserIDKey is the context key under which the authenticated caller's user ID
// is stored.
const UserIDKey CtxKey = "UserID"

// GetUserIDFromContext returns the authenticated caller's user ID, or the zero
// ID when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

// SecHandlerOptions configures the security handler for v1 endpoints.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify bearer tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates requests carrying an RS256 JWT bearer token. The
// token only identifies the caller; authorization decisions are made by the
// catalog against the stored role.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies the given token and returns a context carrying the
// caller's user ID under UserIDKey. Any verification failure maps to an
// unauthorized error.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}

			return s.publicKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "could not verify token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "could not read token subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "token subject is not a user id")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Wrap returns a middleware enforcing bearer authentication on every request
// before handing off to next.
func (s *SecHandler) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
