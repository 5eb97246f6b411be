package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/servicehub/booking-system/shared/models"
)

// Headers set by the gateway after it authenticated the caller
const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"
)

// Identity is the authenticated caller
type Identity struct {
	UserID models.ID
	Role   string
}

type identityKey struct{}

// RequireIdentity rejects requests without a valid caller identity and stores
// it in the request context.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := models.NewID(strings.TrimSpace(r.Header.Get(UserIDHeader)))
		if err != nil {
			WriteMessage(w, http.StatusUnauthorized, "missing or invalid caller identity")
			return
		}

		identity := Identity{
			UserID: userID,
			Role:   strings.ToLower(strings.TrimSpace(r.Header.Get(UserRoleHeader))),
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// WithIdentity stores identity in ctx
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the caller stored by RequireIdentity
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
