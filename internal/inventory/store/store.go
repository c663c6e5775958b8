package store

import (
	"context"
	"errors"
	"time"

	"github.com/stackledger/stackledger/internal/inventory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// AssetFilter narrows and orders asset listings. Zero values mean "no filter".
type AssetFilter struct {
	Search   string // matches hostname, fqdn, serial number, vendor or model
	Status   string
	Type     string
	Vendor   string // partial match
	SortBy   string // hostname, created_at, updated_at (default created_at)
	SortDesc bool
	Offset   int
	Limit    int
}

// UserFilter narrows user listings.
type UserFilter struct {
	Search     string // matches username, full name, email or department
	ActiveOnly bool
	Offset     int
	Limit      int
}

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Assets() Assets
	Users() Users
	Applications() Applications
	Controllers() Controllers
	Audit() Audit
	APIKeys() APIKeys

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g. upsert plus
	// audit record). The caller MUST call Commit() or Rollback().
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Assets interface {
	// GetAssetByID returns an asset by id.
	GetAssetByID(ctx context.Context, id string) (domain.Asset, error)

	// FindAssetByFQDN returns an asset by its fully qualified domain name.
	FindAssetByFQDN(ctx context.Context, fqdn string) (domain.Asset, error)

	// FindAssetBySerialVendor returns an asset matching both serial number and vendor.
	FindAssetBySerialVendor(ctx context.Context, serial, vendor string) (domain.Asset, error)

	// FindAssetByHostname returns the first asset with the given hostname.
	FindAssetByHostname(ctx context.Context, hostname string) (domain.Asset, error)

	// ListAssets returns a filtered page of assets and the total match count.
	ListAssets(ctx context.Context, f AssetFilter) ([]domain.Asset, int, error)

	// CreateAsset inserts a new asset (id is provided by app via ULID).
	CreateAsset(ctx context.Context, a domain.Asset) error

	// UpdateAsset replaces all mutable fields and bumps updated_at.
	UpdateAsset(ctx context.Context, a domain.Asset) error

	// DeleteAsset cascades to management controllers (per schema).
	DeleteAsset(ctx context.Context, id string) error

	// CountAssetsByStatus returns counts keyed by status, used by the dashboard.
	CountAssetsByStatus(ctx context.Context) (map[string]int, error)
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	ListUsers(ctx context.Context, f UserFilter) ([]domain.User, int, error)
	CreateUser(ctx context.Context, u domain.User) error
	UpdateUser(ctx context.Context, u domain.User) error

	// DeactivateUser flips active=0; owned assets keep their owner reference.
	DeactivateUser(ctx context.Context, id string) error
}

type Applications interface {
	GetApplicationByID(ctx context.Context, id string) (domain.Application, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
	CreateApplication(ctx context.Context, a domain.Application) error
	UpdateApplication(ctx context.Context, a domain.Application) error
	DeleteApplication(ctx context.Context, id string) error

	// LinkAsset associates an application with an asset. Linking the same pair
	// twice is a no-op.
	LinkAsset(ctx context.Context, appID, assetID string) error
	UnlinkAsset(ctx context.Context, appID, assetID string) error
}

type Controllers interface {
	GetControllerByID(ctx context.Context, id string) (domain.ManagementController, error)
	ListControllersByAsset(ctx context.Context, assetID string) ([]domain.ManagementController, error)
	CreateController(ctx context.Context, c domain.ManagementController) error
	DeleteController(ctx context.Context, id string) error
}

type Audit interface {
	// RecordChange appends an audit entry. Entries are immutable once written.
	RecordChange(ctx context.Context, e domain.AuditEntry) error

	// ListRecentChanges returns the newest entries first, capped at limit.
	ListRecentChanges(ctx context.Context, limit int) ([]domain.AuditEntry, error)

	// PruneEntriesBefore deletes entries older than cutoff and reports how
	// many were removed.
	PruneEntriesBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type APIKeys interface {
	// ListActiveAPIKeys returns all keys that may currently authenticate.
	ListActiveAPIKeys(ctx context.Context) ([]domain.APIKey, error)
	CreateAPIKey(ctx context.Context, k domain.APIKey) error
	DeactivateAPIKey(ctx context.Context, id string) error
}
