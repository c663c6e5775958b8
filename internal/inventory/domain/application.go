package domain

import "time"

// Application environment values.
const (
	AppEnvProduction  = "production"
	AppEnvStaging     = "staging"
	AppEnvDevelopment = "development"
	AppEnvTesting     = "testing"
)

// Application criticality values.
const (
	AppCriticalityLow      = "low"
	AppCriticalityMedium   = "medium"
	AppCriticalityHigh     = "high"
	AppCriticalityCritical = "critical"
)

// Application is a service running on one or more assets.
type Application struct {
	ID          string
	Name        string
	Description string
	AccessURL   string
	Environment string // production, staging, development, testing
	Version     string
	Port        int
	Status      string // active, inactive, maintenance, deprecated
	ContactID   string // optional, references User
	Criticality string // low, medium, high, critical
	Notes       string
	AssetIDs    []string // linked assets (many-to-many)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidAppEnvironment reports whether e is one of the accepted environments.
func ValidAppEnvironment(e string) bool {
	switch e {
	case AppEnvProduction, AppEnvStaging, AppEnvDevelopment, AppEnvTesting:
		return true
	}
	return false
}

// ValidAppCriticality reports whether c is one of the accepted criticalities.
func ValidAppCriticality(c string) bool {
	switch c {
	case AppCriticalityLow, AppCriticalityMedium, AppCriticalityHigh, AppCriticalityCritical:
		return true
	}
	return false
}
