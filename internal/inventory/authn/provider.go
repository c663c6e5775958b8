// Package authn gates the application on an external identity provider.
//
// The provider is configured entirely from the environment. When all required
// variables are present the HTTP layer verifies bearer tokens issued by the
// provider; when any is missing the application runs in development mode with
// a built-in demo identity and no token checks.
package authn

import (
	"os"
	"strings"
)

// Environment variables describing the identity provider.
const (
	EnvSecret        = "AUTH_SECRET"
	EnvBaseURL       = "AUTH_BASE_URL"
	EnvIssuerBaseURL = "AUTH_ISSUER_BASE_URL"
	EnvClientID      = "AUTH_CLIENT_ID"
	EnvClientSecret  = "AUTH_CLIENT_SECRET"
	EnvAudience      = "AUTH_AUDIENCE"
)

// ProviderConfig describes how to reach the external identity provider. Build
// it once at startup with FromEnv; it is immutable for the process lifetime.
type ProviderConfig struct {
	Secret        string
	BaseURL       string
	IssuerBaseURL string
	ClientID      string
	ClientSecret  string
	Audience      string // optional

	// Domain is IssuerBaseURL with any literal https:// prefix removed.
	Domain string

	Scope string
}

// DefaultScope is requested from the provider on every login.
const DefaultScope = "openid profile email"

// FromEnv reads the provider configuration from the environment. Absent
// variables yield empty fields, never an error; callers check Enabled.
func FromEnv() ProviderConfig {
	issuer := os.Getenv(EnvIssuerBaseURL)
	return ProviderConfig{
		Secret:        os.Getenv(EnvSecret),
		BaseURL:       os.Getenv(EnvBaseURL),
		IssuerBaseURL: issuer,
		ClientID:      os.Getenv(EnvClientID),
		ClientSecret:  os.Getenv(EnvClientSecret),
		Audience:      os.Getenv(EnvAudience),
		Domain:        strings.TrimPrefix(issuer, "https://"),
		Scope:         DefaultScope,
	}
}

// Enabled reports whether real authentication is configured. All five
// required variables must be non-empty; the audience is optional.
func (c ProviderConfig) Enabled() bool {
	return c.Secret != "" &&
		c.BaseURL != "" &&
		c.IssuerBaseURL != "" &&
		c.ClientID != "" &&
		c.ClientSecret != ""
}
