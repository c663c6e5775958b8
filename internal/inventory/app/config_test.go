package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stackledger/stackledger/internal/inventory/authn"
)

func clearAuthVars(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		authn.EnvSecret, authn.EnvBaseURL, authn.EnvIssuerBaseURL,
		authn.EnvClientID, authn.EnvClientSecret, authn.EnvAudience,
	} {
		t.Setenv(v, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearAuthVars(t)
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_VERSION", "")

	cfg := LoadConfig()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, BuildVersion, cfg.Version)
	require.Equal(t, "inventory.db", cfg.DatabaseFile)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 90*24*time.Hour, cfg.AuditRetention)
	require.False(t, cfg.Provider.Enabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	clearAuthVars(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_VERSION", "v2.3.4")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")
	t.Setenv("AUDIT_RETENTION", "720h")

	cfg := LoadConfig()
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "v2.3.4", cfg.Version)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 720*time.Hour, cfg.AuditRetention)

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")
		cfg := LoadConfig()
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	})
}

func TestLoadConfigAuthProvider(t *testing.T) {
	t.Setenv(authn.EnvSecret, "s")
	t.Setenv(authn.EnvBaseURL, "https://app.example.com")
	t.Setenv(authn.EnvIssuerBaseURL, "https://tenant.auth.example.com")
	t.Setenv(authn.EnvClientID, "cid")
	t.Setenv(authn.EnvClientSecret, "csecret")

	cfg := LoadConfig()
	require.True(t, cfg.Provider.Enabled())
	require.Equal(t, "tenant.auth.example.com", cfg.Provider.Domain)
}

func TestLoadConfigDevKeyStrippedInProd(t *testing.T) {
	clearAuthVars(t)
	t.Setenv("DEV_API_KEY", "local-key")

	t.Setenv("ENV", "dev")
	require.Equal(t, "local-key", LoadConfig().DevAPIKey)

	t.Setenv("ENV", "prod")
	require.Empty(t, LoadConfig().DevAPIKey)
}
