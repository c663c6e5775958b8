package web_test

import (
	"net/http"
	"testing"

	"github.com/stackledger/stackledger/pkg/invsdk"
	"github.com/stretchr/testify/require"
)

// TestAssetUpsertFlow covers the discovery-style workflow: an agent posts an
// asset, posts it again with new details, and the record is updated in place.
func TestAssetUpsertFlow(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := keyedClient(baseURL)
	ctx := t.Context()

	created, err := client.UpsertAsset(ctx, invsdk.AssetRequest{
		Hostname:     "db-01",
		FQDN:         "db-01.internal.example.com",
		SerialNumber: "SN-E2E-001",
		Vendor:       "Dell",
		Model:        "PowerEdge R760",
		Type:         "server",
		Location:     "rack 4",
	})
	require.NoError(t, err)
	require.True(t, created.Created, "First upsert should create the asset")
	require.NotEmpty(t, created.Asset.ID)
	require.Equal(t, "active", created.Asset.Status)

	// Same FQDN, new details. The upsert must match the existing record.
	updated, err := client.UpsertAsset(ctx, invsdk.AssetRequest{
		Hostname: "db-01",
		FQDN:     "db-01.internal.example.com",
		Vendor:   "Dell",
		Model:    "PowerEdge R760",
		Type:     "server",
		Location: "rack 7",
	})
	require.NoError(t, err)
	require.False(t, updated.Created, "Second upsert should update, not create")
	require.Equal(t, created.Asset.ID, updated.Asset.ID)
	require.Equal(t, "rack 7", updated.Asset.Location)

	list, err := client.ListAssets(ctx, invsdk.AssetListOptions{Search: "db-01"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total, "Upserts must not duplicate the asset")
}

// TestAssetWriteAuthorization verifies writes require an API key while reads
// stay open.
func TestAssetWriteAuthorization(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	ctx := t.Context()
	anon := invsdk.NewClient(baseURL)

	_, err := anon.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "sneaky-01"})
	assertAPIError(t, err, http.StatusUnauthorized, "Upsert without key")

	wrongKey := invsdk.NewClient(baseURL, invsdk.WithAPIKey("not-the-key"))
	_, err = wrongKey.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "sneaky-02"})
	assertAPIError(t, err, http.StatusUnauthorized, "Upsert with wrong key")

	_, err = anon.ListAssets(ctx, invsdk.AssetListOptions{})
	require.NoError(t, err, "List should not require a key")
}

// TestControllerLifecycle attaches a management controller to an asset and
// verifies it is removed along with the asset.
func TestControllerLifecycle(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := keyedClient(baseURL)
	ctx := t.Context()

	created, err := client.UpsertAsset(ctx, invsdk.AssetRequest{
		Hostname: "esx-01",
		Vendor:   "HPE",
		Type:     "server",
	})
	require.NoError(t, err)
	assetID := created.Asset.ID

	ctrl, err := client.AttachController(ctx, assetID, invsdk.ControllerRequest{
		Type:    "ilo",
		Address: "10.0.40.11",
		Port:    443,
		UIURL:   "https://10.0.40.11",
	})
	require.NoError(t, err)
	require.Equal(t, assetID, ctrl.AssetID)

	controllers, err := client.ListControllers(ctx, assetID)
	require.NoError(t, err)
	require.Len(t, controllers, 1)

	require.NoError(t, client.DeleteAsset(ctx, assetID))

	_, err = client.GetAsset(ctx, assetID)
	assertAPIError(t, err, http.StatusNotFound, "Asset should be gone after delete")
}

// TestAuditTrailRecordsWrites verifies API writes leave audit entries behind.
func TestAuditTrailRecordsWrites(t *testing.T) {
	baseURL, cleanup := setupWebContainer(t)
	defer cleanup()

	client := keyedClient(baseURL)
	ctx := t.Context()

	created, err := client.UpsertAsset(ctx, invsdk.AssetRequest{
		Hostname: "audited-01",
		Type:     "workstation",
	})
	require.NoError(t, err)
	require.NoError(t, client.DeleteAsset(ctx, created.Asset.ID))

	audit, err := client.ListAuditEntries(ctx, 50)
	require.NoError(t, err)

	var sawCreate, sawDelete bool
	for _, entry := range audit.Entries {
		if entry.ResourceID != created.Asset.ID {
			continue
		}
		switch entry.Action {
		case "CREATE":
			sawCreate = true
		case "DELETE":
			sawDelete = true
		}
	}
	require.True(t, sawCreate, "Audit trail should record the create")
	require.True(t, sawDelete, "Audit trail should record the delete")
}
