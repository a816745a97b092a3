package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// IdentityLoader resolves a verified token subject to an active
// administrator identity. Implementations must return an error for unknown
// or deactivated accounts.
type IdentityLoader interface {
	LoadIdentity(ctx context.Context, adminID string) (*Identity, error)
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}

// bearerToken extracts the token from an Authorization header. Returns ""
// when the header is absent or not a Bearer scheme.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth verifies the bearer token, loads the administrator it names,
// and attaches the identity to the request context. Any failure terminates
// the request with 401; there are no retries. One identity lookup per
// request.
func RequireAuth(secret []byte, loader IdentityLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				reject(w, http.StatusUnauthorized, "authentication required")
				return
			}

			claims, err := VerifyToken(token, secret)
			if err != nil {
				reject(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity, err := loader.LoadIdentity(r.Context(), claims.Subject)
			if err != nil {
				reject(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches an identity when a valid bearer token is present
// but never rejects the request. Public endpoints use it so administrators
// see unpublished records through the same routes.
func OptionalAuth(secret []byte, loader IdentityLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := VerifyToken(token, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := loader.LoadIdentity(r.Context(), claims.Subject)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole gates a handler to the given roles. It expects RequireAuth to
// have run first: no identity means 401, a role outside the allow-list 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				reject(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !RoleAllowed(identity.Role, roles) {
				reject(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
