package app

import (
	"os"
	"strconv"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/authn"
)

type Config struct {
	Provider authn.ProviderConfig // Identity provider; empty fields mean development mode

	DatabaseFile         string        // Path to SQLite database file (default: ./inventory.db)
	DevAPIKey            string        // Optional: accepted as a valid API key outside prod
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	Version              string        // Reported build version (default: compile-time constant)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Audit prune interval (default: 1h)
	AuditRetention       time.Duration // Audit entries older than this are pruned (default: 90 days)
}

func LoadConfig() Config {
	cfg := Config{
		Provider:             authn.FromEnv(),
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "inventory.db"),
		DevAPIKey:            os.Getenv("DEV_API_KEY"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		Version:              getEnvOrDefault("APP_VERSION", BuildVersion),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		AuditRetention:       getEnvDurationOrDefault("AUDIT_RETENTION", 90*24*time.Hour),
	}

	// A dev bypass key in production would be a standing backdoor.
	if cfg.Env == "prod" {
		cfg.DevAPIKey = ""
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
