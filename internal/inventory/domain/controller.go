package domain

import "time"

// Management controller types.
const (
	ControllerTypeILO     = "ilo"
	ControllerTypeIDRAC   = "idrac"
	ControllerTypeIPMI    = "ipmi"
	ControllerTypeRedfish = "redfish"
)

// ManagementController is an out-of-band controller (iLO, iDRAC, IPMI,
// Redfish) attached to an asset. Credentials live with the external secret
// broker; only a reference is stored here.
type ManagementController struct {
	ID            string
	AssetID       string
	Type          string // ilo, idrac, ipmi, redfish
	Address       string
	Port          int // default 443
	UIURL         string
	CredentialRef string // opaque reference into the external secret store
	CreatedAt     time.Time
}

// ValidControllerType reports whether t is one of the accepted controller types.
func ValidControllerType(t string) bool {
	switch t {
	case ControllerTypeILO, ControllerTypeIDRAC, ControllerTypeIPMI, ControllerTypeRedfish:
		return true
	}
	return false
}
