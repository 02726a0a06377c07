package auth

import (
	"context"
)

// contextKey is a private type for context keys so values set here cannot
// collide with keys from other packages.
type contextKey string

const identityContextKey contextKey = "auth_identity"

// NewContextWithIdentity returns a child context carrying the verified
// identity. The middleware calls this after token verification succeeds.
func NewContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext extracts the verified identity placed in the context by
// the middleware. The boolean is false when the request never passed the
// guard.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*Identity)
	return identity, ok
}
