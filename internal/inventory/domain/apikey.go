package domain

import "time"

// APIKey is a hashed bearer credential for programmatic access (agents and
// provisioning scripts). Only the bcrypt hash is stored; the plaintext key is
// shown once at creation.
type APIKey struct {
	ID        string
	Name      string
	KeyHash   string
	Active    bool
	CreatedAt time.Time
}
