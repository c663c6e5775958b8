package authn

import "context"

// Identity is the signed-in operator as seen by page handlers. It lives for
// the duration of a request; nothing is persisted.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// CanEditAssets reports whether the identity may mutate inventory data. Any
// resolved identity may edit; an unresolved (nil) one may not.
func CanEditAssets(id *Identity) bool {
	return id != nil
}

// Authenticator resolves the identity for a request. Implementations must
// degrade to (nil, nil) rather than fail the request when the check errors.
type Authenticator interface {
	Authenticate(ctx context.Context) (*Identity, error)
}

type identityKey struct{}

// WithIdentity stores the resolved identity on the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the request identity, or nil when no
// authenticator ran or the check degraded.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
