package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackledger/stackledger/internal/inventory/authn"
	"github.com/stackledger/stackledger/pkg/invsdk"
)

func newTestServer(t *testing.T) (*testEnv, *invsdk.Client, *invsdk.Client) {
	t.Helper()

	env := newTestEnv(t, authn.ProviderConfig{}, nil)
	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)

	keyed := invsdk.NewClient(srv.URL, invsdk.WithAPIKey(env.apiKey))
	anon := invsdk.NewClient(srv.URL)
	return env, keyed, anon
}

func TestAssetAPI(t *testing.T) {
	ctx := context.Background()
	_, keyed, anon := newTestServer(t)

	var assetID string

	t.Run("upsert creates then updates", func(t *testing.T) {
		created, err := keyed.UpsertAsset(ctx, invsdk.AssetRequest{
			Hostname: "web01",
			FQDN:     "web01.example.com",
			Vendor:   "Dell",
		})
		require.NoError(t, err)
		require.True(t, created.Created)
		assetID = created.Asset.ID

		updated, err := keyed.UpsertAsset(ctx, invsdk.AssetRequest{
			Hostname: "web01",
			FQDN:     "web01.example.com",
			Location: "DC-2",
		})
		require.NoError(t, err)
		require.False(t, updated.Created)
		require.Equal(t, assetID, updated.Asset.ID)
		require.Equal(t, "DC-2", updated.Asset.Location)
	})

	t.Run("writes require an api key", func(t *testing.T) {
		_, err := anon.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "nope"})
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeUnauthorized, apiErr.Code)
	})

	t.Run("reads are open", func(t *testing.T) {
		list, err := anon.ListAssets(ctx, invsdk.AssetListOptions{Search: "web"})
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)

		got, err := anon.GetAsset(ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, "web01", got.Hostname)
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		_, err := keyed.UpsertAsset(ctx, invsdk.AssetRequest{})
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeInvalidRequest, apiErr.Code)
	})

	t.Run("missing asset maps to 404", func(t *testing.T) {
		_, err := anon.GetAsset(ctx, "no-such-id")
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeNotFound, apiErr.Code)
	})

	t.Run("controllers attach and detach", func(t *testing.T) {
		c, err := keyed.AttachController(ctx, assetID, invsdk.ControllerRequest{
			Type:    "idrac",
			Address: "10.0.0.50",
		})
		require.NoError(t, err)
		require.Equal(t, 443, c.Port)

		list, err := anon.ListControllers(ctx, assetID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, keyed.DetachController(ctx, c.ID))
	})

	t.Run("delete removes the asset", func(t *testing.T) {
		require.NoError(t, keyed.DeleteAsset(ctx, assetID))

		_, err := anon.GetAsset(ctx, assetID)
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeNotFound, apiErr.Code)
	})
}

func TestDirectoryAPI(t *testing.T) {
	ctx := context.Background()
	_, keyed, anon := newTestServer(t)

	user, err := keyed.CreateUser(ctx, invsdk.UserRequest{
		Username: "jsmith",
		FullName: "Jordan Smith",
	})
	require.NoError(t, err)

	t.Run("duplicate username maps to 409", func(t *testing.T) {
		_, err := keyed.CreateUser(ctx, invsdk.UserRequest{
			Username: "jsmith",
			FullName: "Someone Else",
		})
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeConflict, apiErr.Code)
	})

	t.Run("applications link to assets", func(t *testing.T) {
		host, err := keyed.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "app-host"})
		require.NoError(t, err)

		app, err := keyed.CreateApplication(ctx, invsdk.ApplicationRequest{
			Name:      "billing",
			ContactID: user.ID,
			AssetIDs:  []string{host.Asset.ID},
		})
		require.NoError(t, err)
		require.Equal(t, []string{host.Asset.ID}, app.AssetIDs)

		apps, err := anon.ListApplications(ctx)
		require.NoError(t, err)
		require.Len(t, apps, 1)
	})

	t.Run("deactivate then filter active", func(t *testing.T) {
		require.NoError(t, keyed.DeactivateUser(ctx, user.ID))

		list, err := anon.ListUsers(ctx, invsdk.UserListOptions{ActiveOnly: true})
		require.NoError(t, err)
		require.Zero(t, list.Total)
	})
}

func TestAuditAndReportsAPI(t *testing.T) {
	ctx := context.Background()
	_, keyed, anon := newTestServer(t)

	_, err := keyed.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "audited"})
	require.NoError(t, err)

	t.Run("audit lists the change with the caller key", func(t *testing.T) {
		audit, err := anon.ListAuditEntries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, audit.Entries, 1)
		require.Equal(t, "CREATE", audit.Entries[0].Action)
		require.NotEmpty(t, audit.Entries[0].APIKeyID)
	})

	t.Run("report catalogue lists four planned reports", func(t *testing.T) {
		reports, err := anon.ListReports(ctx)
		require.NoError(t, err)
		require.Len(t, reports.Reports, 4)
		for _, d := range reports.Reports {
			require.Equal(t, "coming_soon", d.Status)
		}
	})
}

func TestHealthAPI(t *testing.T) {
	ctx := context.Background()
	env, _, anon := newTestServer(t)

	t.Run("livez", func(t *testing.T) {
		h, err := anon.Livez(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", h.Status)
		require.Equal(t, "test", h.Version)
	})

	t.Run("readyz pings the database", func(t *testing.T) {
		h, err := anon.Readyz(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", h.Status)
	})

	t.Run("version reports auth mode", func(t *testing.T) {
		v, err := anon.Version(ctx)
		require.NoError(t, err)
		require.Equal(t, "dev", v.Env)
		require.False(t, v.AuthEnabled)
	})

	t.Run("readyz degrades after close", func(t *testing.T) {
		require.NoError(t, env.store.Close())

		_, err := anon.Readyz(ctx)
		var apiErr *invsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, 503, apiErr.StatusCode)
	})
}

func TestAPIKeyAPI(t *testing.T) {
	ctx := context.Background()
	_, keyed, anon := newTestServer(t)
	srvURL := keyed.BaseURL

	minted, err := keyed.MintAPIKey(ctx, invsdk.APIKeyRequest{Name: "lab-agent"})
	require.NoError(t, err)
	require.NotEmpty(t, minted.Key)

	t.Run("minted key authenticates writes", func(t *testing.T) {
		agent := invsdk.NewClient(srvURL, invsdk.WithAPIKey(minted.Key))
		_, err := agent.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "lab01"})
		require.NoError(t, err)
	})

	t.Run("mint requires a name", func(t *testing.T) {
		_, err := keyed.MintAPIKey(ctx, invsdk.APIKeyRequest{})
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeInvalidRequest, apiErr.Code)
	})

	t.Run("revoked key stops working", func(t *testing.T) {
		require.NoError(t, keyed.RevokeAPIKey(ctx, minted.ID))

		agent := invsdk.NewClient(srvURL, invsdk.WithAPIKey(minted.Key))
		_, err := agent.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "lab02"})
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeUnauthorized, apiErr.Code)
	})

	t.Run("anonymous cannot mint once keys exist", func(t *testing.T) {
		_, err := anon.MintAPIKey(ctx, invsdk.APIKeyRequest{Name: "sneaky"})
		var apiErr *invsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, invsdk.ErrorCodeUnauthorized, apiErr.Code)
	})
}

func TestAPIKeyBootstrap(t *testing.T) {
	ctx := context.Background()

	// A fresh install with no keys and no dev key accepts the first mint.
	env := newTestEnv(t, authn.ProviderConfig{}, nil)
	require.NoError(t, env.store.APIKeys().DeactivateAPIKey(ctx, firstKeyID(t, env)))

	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)
	anon := invsdk.NewClient(srv.URL)

	minted, err := anon.MintAPIKey(ctx, invsdk.APIKeyRequest{Name: "bootstrap"})
	require.NoError(t, err)
	require.NotEmpty(t, minted.Key)

	// Open access ends as soon as the key exists.
	_, err = anon.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "locked-out"})
	var apiErr *invsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, invsdk.ErrorCodeUnauthorized, apiErr.Code)
}

func firstKeyID(t *testing.T, env *testEnv) string {
	t.Helper()

	keys, err := env.store.APIKeys().ListActiveAPIKeys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	return keys[0].ID
}
