package domain

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the request-scoped actor identity derived from gateway headers.
// It is carried explicitly via the context rather than resolved from ambient
// state.
type Identity struct {
	UserID    uuid.UUID
	ActorType string
}

type identityKey struct{}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extracts the identity from the context, if one was attached.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
