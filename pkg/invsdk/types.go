package invsdk

import "time"

// AssetRequest is the write shape for assets, used by both the upsert and
// update endpoints.
type AssetRequest struct {
	Hostname     string         `json:"hostname"`
	FQDN         string         `json:"fqdn,omitempty"`
	SerialNumber string         `json:"serial_number,omitempty"`
	Vendor       string         `json:"vendor,omitempty"`
	Model        string         `json:"model,omitempty"`
	Type         string         `json:"type,omitempty"`
	Status       string         `json:"status,omitempty"`
	Location     string         `json:"location,omitempty"`
	Specs        map[string]any `json:"specs,omitempty"`
	OwnerID      string         `json:"owner_id,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

// AssetResponse is the read shape for a single asset.
type AssetResponse struct {
	ID           string         `json:"id"`
	Hostname     string         `json:"hostname"`
	FQDN         string         `json:"fqdn,omitempty"`
	SerialNumber string         `json:"serial_number,omitempty"`
	Vendor       string         `json:"vendor,omitempty"`
	Model        string         `json:"model,omitempty"`
	Type         string         `json:"type"`
	Status       string         `json:"status"`
	Location     string         `json:"location,omitempty"`
	Specs        map[string]any `json:"specs,omitempty"`
	OwnerID      string         `json:"owner_id,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// UpsertAssetResponse reports the stored asset and whether the call created it.
type UpsertAssetResponse struct {
	Asset   AssetResponse `json:"asset"`
	Created bool          `json:"created"`
}

// AssetListResponse is a filtered page of assets.
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  int             `json:"total"`
}

type UserRequest struct {
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
	Active     *bool  `json:"active,omitempty"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email,omitempty"`
	Department string    `json:"department,omitempty"`
	Title      string    `json:"title,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type ApplicationRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	AccessURL   string   `json:"access_url,omitempty"`
	Environment string   `json:"environment,omitempty"`
	Version     string   `json:"version,omitempty"`
	Port        int      `json:"port,omitempty"`
	Status      string   `json:"status,omitempty"`
	ContactID   string   `json:"contact_id,omitempty"`
	Criticality string   `json:"criticality,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	AssetIDs    []string `json:"asset_ids,omitempty"`
}

type ApplicationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AccessURL   string    `json:"access_url,omitempty"`
	Environment string    `json:"environment"`
	Version     string    `json:"version,omitempty"`
	Port        int       `json:"port,omitempty"`
	Status      string    `json:"status"`
	ContactID   string    `json:"contact_id,omitempty"`
	Criticality string    `json:"criticality"`
	Notes       string    `json:"notes,omitempty"`
	AssetIDs    []string  `json:"asset_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ControllerRequest struct {
	Type          string `json:"type"`
	Address       string `json:"address"`
	Port          int    `json:"port,omitempty"`
	UIURL         string `json:"ui_url,omitempty"`
	CredentialRef string `json:"credential_ref,omitempty"`
}

type ControllerResponse struct {
	ID            string    `json:"id"`
	AssetID       string    `json:"asset_id"`
	Type          string    `json:"type"`
	Address       string    `json:"address"`
	Port          int       `json:"port"`
	UIURL         string    `json:"ui_url,omitempty"`
	CredentialRef string    `json:"credential_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type APIKeyRequest struct {
	Name string `json:"name"`
}

// APIKeyResponse describes a key. Key carries the plaintext only in the
// mint response; it is never retrievable afterwards.
type APIKeyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditEntryResponse struct {
	ID           string         `json:"id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Changes      map[string]any `json:"changes,omitempty"`
	APIKeyID     string         `json:"api_key_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

type AuditListResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
}

type ReportDescriptorResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type ReportListResponse struct {
	Reports []ReportDescriptorResponse `json:"reports"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version     string `json:"version"`
	Env         string `json:"env"`
	AuthEnabled bool   `json:"auth_enabled"`
}
