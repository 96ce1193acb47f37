package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/et891/ecommerce-api/internal/domain"
)

type identityKey struct{}

// Header names set by the upstream identity provider
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Identity extracts the authenticated actor from the identity-provider
// headers and stores it on the request context. Requests without the headers
// pass through anonymously; handlers that need an actor reject those.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(HeaderUserID)
			role := domain.Role(r.Header.Get(HeaderUserRole))

			if userIDStr != "" && role.Valid() {
				if userID, err := strconv.ParseInt(userIDStr, 10, 64); err == nil && userID > 0 {
					identity := domain.Identity{UserID: userID, Role: role}
					r = r.WithContext(context.WithValue(r.Context(), identityKey{}, identity))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom returns the actor stored on the context, if any
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}
