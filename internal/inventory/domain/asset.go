package domain

import "time"

// Asset type values accepted by the inventory.
const (
	AssetTypeServer      = "server"
	AssetTypeWorkstation = "workstation"
	AssetTypeNetwork     = "network"
	AssetTypeStorage     = "storage"
)

// Asset status values.
const (
	AssetStatusActive      = "active"
	AssetStatusRetired     = "retired"
	AssetStatusMaintenance = "maintenance"
)

// Asset is a physical server, workstation or other piece of tracked hardware.
type Asset struct {
	ID           string
	Hostname     string
	FQDN         string // unique when set
	SerialNumber string
	Vendor       string
	Model        string
	Type         string // server, workstation, network, storage
	Status       string // active, retired, maintenance
	Location     string
	Specs        map[string]any // free-form hardware specs, stored as JSON
	OwnerID      string         // optional, references User
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidAssetType reports whether t is one of the accepted asset types.
func ValidAssetType(t string) bool {
	switch t {
	case AssetTypeServer, AssetTypeWorkstation, AssetTypeNetwork, AssetTypeStorage:
		return true
	}
	return false
}

// ValidAssetStatus reports whether s is one of the accepted asset statuses.
func ValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusActive, AssetStatusRetired, AssetStatusMaintenance:
		return true
	}
	return false
}
