package authn

import (
	"context"
	"time"
)

// DemoIdentity is the hard-coded operator used when no identity provider is
// configured. A real deployment replaces this path entirely.
var DemoIdentity = Identity{
	ID:    "demo-user",
	Email: "demo@example.com",
	Name:  "Demo User",
}

// DemoAuthenticator resolves every request to DemoIdentity after a short
// simulated provider round-trip. It exists so development mode exercises the
// same asynchronous resolution path the real provider would.
type DemoAuthenticator struct {
	// Delay simulates the provider round-trip. Zero means no wait, which is
	// what tests want.
	Delay time.Duration

	// Check is an optional hook run before resolving. If it returns an error
	// the authenticator degrades to a nil identity instead of failing the
	// request. The default always succeeds.
	Check func(ctx context.Context) error
}

func (a *DemoAuthenticator) Authenticate(ctx context.Context) (*Identity, error) {
	if a.Delay > 0 {
		select {
		case <-time.After(a.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if a.Check != nil {
		if err := a.Check(ctx); err != nil {
			return nil, nil
		}
	}

	id := DemoIdentity
	return &id, nil
}
