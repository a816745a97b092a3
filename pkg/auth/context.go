package auth

import "context"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated administrator attached to a request context.
type Identity struct {
	ID       string
	Username string
	Role     string
}

// WithIdentity stores the identity in the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity attached by the auth middleware.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	v, ok := ctx.Value(identityKey).(*Identity)
	return v, ok && v != nil
}
