package domain

import "time"

// Audit actions.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditEntry records a single mutation to an inventory resource.
type AuditEntry struct {
	ID           string
	Action       string // CREATE, UPDATE, DELETE
	ResourceType string // asset, user, application, controller
	ResourceID   string
	Changes      map[string]any // what changed, stored as JSON
	APIKeyID     string         // which API key made the change, if any
	CreatedAt    time.Time
}
