package authn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setAllAuthVars(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSecret, "session-secret")
	t.Setenv(EnvBaseURL, "https://inventory.example.com")
	t.Setenv(EnvIssuerBaseURL, "https://tenant.auth.example.com")
	t.Setenv(EnvClientID, "client-id")
	t.Setenv(EnvClientSecret, "client-secret")
}

func TestProviderEnabled(t *testing.T) {
	t.Run("all variables set", func(t *testing.T) {
		setAllAuthVars(t)
		require.True(t, FromEnv().Enabled())
	})

	t.Run("all variables unset", func(t *testing.T) {
		for _, v := range []string{
			EnvSecret, EnvBaseURL, EnvIssuerBaseURL, EnvClientID, EnvClientSecret,
		} {
			t.Setenv(v, "")
		}
		require.False(t, FromEnv().Enabled())
	})

	t.Run("any single missing variable disables", func(t *testing.T) {
		required := []string{
			EnvSecret, EnvBaseURL, EnvIssuerBaseURL, EnvClientID, EnvClientSecret,
		}
		for _, missing := range required {
			t.Run(missing, func(t *testing.T) {
				setAllAuthVars(t)
				t.Setenv(missing, "")
				require.False(t, FromEnv().Enabled())
			})
		}
	})

	t.Run("audience is optional", func(t *testing.T) {
		setAllAuthVars(t)
		t.Setenv(EnvAudience, "")
		require.True(t, FromEnv().Enabled())

		t.Setenv(EnvAudience, "https://api.example.com")
		cfg := FromEnv()
		require.True(t, cfg.Enabled())
		require.Equal(t, "https://api.example.com", cfg.Audience)
	})
}

func TestProviderDomain(t *testing.T) {
	t.Run("strips https prefix", func(t *testing.T) {
		setAllAuthVars(t)
		require.Equal(t, "tenant.auth.example.com", FromEnv().Domain)
	})

	t.Run("leaves other values unchanged", func(t *testing.T) {
		setAllAuthVars(t)
		t.Setenv(EnvIssuerBaseURL, "tenant.auth.example.com")
		require.Equal(t, "tenant.auth.example.com", FromEnv().Domain)

		t.Setenv(EnvIssuerBaseURL, "http://insecure.example.com")
		require.Equal(t, "http://insecure.example.com", FromEnv().Domain)
	})
}
