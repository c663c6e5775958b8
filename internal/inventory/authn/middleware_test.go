package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/stackledger/stackledger/pkg/httpx"
)

func testProviderConfig() ProviderConfig {
	return ProviderConfig{
		Secret:        "session-secret",
		BaseURL:       "https://inventory.example.com",
		IssuerBaseURL: "https://tenant.auth.example.com",
		ClientID:      "client-id",
		ClientSecret:  "client-secret",
	}
}

func mintToken(t *testing.T, cfg ProviderConfig, mutate func(*providerClaims)) string {
	t.Helper()

	claims := &providerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator-1",
			Issuer:    cfg.IssuerBaseURL,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "op@example.com",
		Name:  "Operator One",
		Scope: "assets:read assets:write",
	}
	if mutate != nil {
		mutate(claims)
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.ClientSecret))
	require.NoError(t, err)
	return raw
}

func TestBearerMiddleware(t *testing.T) {
	cfg := testProviderConfig()

	var seen *Identity
	var seenScopes []string
	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = IdentityFromContext(r.Context())
			seenScopes = httpx.ScopesFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
		BearerMiddleware(cfg),
	)

	do := func(authz string) *httptest.ResponseRecorder {
		seen, seenScopes = nil, nil
		req := httptest.NewRequest(http.MethodGet, "/assets", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token populates identity", func(t *testing.T) {
		rec := do("Bearer " + mintToken(t, cfg, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		require.Equal(t, "operator-1", seen.ID)
		require.Equal(t, "op@example.com", seen.Email)
		require.Equal(t, []string{"assets:read", "assets:write"}, seenScopes)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := do("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("wrong signing key rejected", func(t *testing.T) {
		other := cfg
		other.ClientSecret = "some-other-secret"
		rec := do("Bearer " + mintToken(t, other, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		rec := do("Bearer " + mintToken(t, cfg, func(c *providerClaims) {
			c.Issuer = "https://evil.example.com"
		}))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		rec := do("Bearer " + mintToken(t, cfg, func(c *providerClaims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		}))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		rec := do("Bearer " + mintToken(t, cfg, func(c *providerClaims) {
			c.Subject = ""
		}))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBearerMiddlewareAudience(t *testing.T) {
	cfg := testProviderConfig()
	cfg.Audience = "https://api.example.com"

	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		BearerMiddleware(cfg),
	)

	do := func(raw string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("matching audience accepted", func(t *testing.T) {
		code := do(mintToken(t, cfg, func(c *providerClaims) {
			c.Audience = jwt.ClaimStrings{"https://api.example.com"}
		}))
		require.Equal(t, http.StatusOK, code)
	})

	t.Run("missing audience rejected", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do(mintToken(t, cfg, nil)))
	})
}

func TestDemoMiddleware(t *testing.T) {
	var seen *Identity
	var seenUserID string
	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = IdentityFromContext(r.Context())
			seenUserID = httpx.UserIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
		DemoMiddleware(&DemoAuthenticator{}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, "demo-user", seen.ID)
	require.Equal(t, "demo-user", seenUserID)
}
