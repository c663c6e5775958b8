package authn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stackledger/stackledger/pkg/httpx"
	"github.com/stackledger/stackledger/pkg/slogx"
)

// providerClaims are the token claims the middleware cares about. Everything
// else the provider sends is ignored.
type providerClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Scope string `json:"scope,omitempty"`
}

// Middleware selects the authentication strategy for page requests based on
// the provider configuration: bearer verification when the provider is
// configured, the demo authenticator otherwise.
func Middleware(cfg ProviderConfig, demo Authenticator) httpx.Middleware {
	if cfg.Enabled() {
		return BearerMiddleware(cfg)
	}
	return DemoMiddleware(demo)
}

// DemoMiddleware resolves every request through the demo authenticator. A
// failed check degrades to an anonymous request rather than a 401; pages
// render read-only in that case.
func DemoMiddleware(auth Authenticator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := auth.Authenticate(ctx)
			if err != nil {
				// Context cancellation is the only error path; the client is
				// gone, nothing to serve.
				return
			}

			ctx = WithIdentity(ctx, id)
			if id != nil {
				ctx = context.WithValue(ctx, httpx.CtxKeyUserID, id.ID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerMiddleware verifies provider-issued bearer tokens. Tokens are signed
// with the client secret (HS256) and must carry the configured issuer, and
// audience when one is set.
func BearerMiddleware(cfg ProviderConfig) httpx.Middleware {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.IssuerBaseURL),
		jwt.WithExpirationRequired(),
	)
	key := []byte(cfg.ClientSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := verifyToken(parser, key, cfg.Audience, raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("bearer verify failed", "err", err)
				return
			}

			id := &Identity{
				ID:    claims.Subject,
				Email: claims.Email,
				Name:  claims.Name,
			}
			ctx = WithIdentity(ctx, id)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, id.ID)
			ctx = context.WithValue(ctx, httpx.CtxKeyScopes,
				httpx.ParseSpaceDelimitedFields(claims.Scope))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyToken(parser *jwt.Parser, key []byte, audience, raw string) (*providerClaims, error) {
	claims := &providerClaims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	if audience != "" {
		var found bool
		for _, aud := range claims.Audience {
			if aud == audience {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: want %q", jwt.ErrTokenInvalidAudience, audience)
		}
	}
	return claims, nil
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
