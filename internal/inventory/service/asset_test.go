package service

import (
	"context"
	"testing"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/internal/inventory/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestAssetUpsertMatchesByNaturalKey(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AssetService{Store: st}

	t.Run("creates when nothing matches", func(t *testing.T) {
		a, created, err := svc.Upsert(ctx, AssetInput{
			Hostname:     "web01",
			FQDN:         "web01.example.com",
			SerialNumber: "SN-100",
			Vendor:       "Dell",
		}, "")
		require.NoError(t, err)
		require.True(t, created)
		require.NotEmpty(t, a.ID)
		require.Equal(t, domain.AssetTypeServer, a.Type)
		require.Equal(t, domain.AssetStatusActive, a.Status)
	})

	t.Run("matches by fqdn first", func(t *testing.T) {
		a, created, err := svc.Upsert(ctx, AssetInput{
			Hostname:     "web01-renamed",
			FQDN:         "web01.example.com",
			SerialNumber: "SN-999",
			Vendor:       "HPE",
		}, "")
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, "web01-renamed", a.Hostname)
		require.Equal(t, "SN-999", a.SerialNumber)
	})

	t.Run("falls back to serial plus vendor", func(t *testing.T) {
		first, created, err := svc.Upsert(ctx, AssetInput{
			Hostname:     "db01",
			SerialNumber: "SN-200",
			Vendor:       "Dell",
		}, "")
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.Upsert(ctx, AssetInput{
			Hostname:     "db01-new",
			SerialNumber: "SN-200",
			Vendor:       "Dell",
		}, "")
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, first.ID, second.ID)
	})

	t.Run("falls back to hostname last", func(t *testing.T) {
		first, created, err := svc.Upsert(ctx, AssetInput{Hostname: "switch01"}, "")
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.Upsert(ctx, AssetInput{
			Hostname: "switch01",
			Vendor:   "Cisco",
		}, "")
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, "Cisco", second.Vendor)
	})
}

func TestAssetUpsertValidation(t *testing.T) {
	ctx := context.Background()
	svc := &AssetService{Store: newTestStore(t)}

	t.Run("hostname is required", func(t *testing.T) {
		_, _, err := svc.Upsert(ctx, AssetInput{}, "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, _, err := svc.Upsert(ctx, AssetInput{Hostname: "x", Type: "toaster"}, "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, _, err := svc.Upsert(ctx, AssetInput{Hostname: "x", Status: "gone"}, "")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestAssetUpsertRecordsAudit(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AssetService{Store: st}

	a, _, err := svc.Upsert(ctx, AssetInput{Hostname: "audited"}, "key-1")
	require.NoError(t, err)

	entries, err := st.Audit().ListRecentChanges(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, domain.AuditActionCreate, entries[0].Action)
	require.Equal(t, "asset", entries[0].ResourceType)
	require.Equal(t, a.ID, entries[0].ResourceID)
	require.Equal(t, "key-1", entries[0].APIKeyID)

	_, _, err = svc.Upsert(ctx, AssetInput{Hostname: "audited", Location: "DC-1"}, "key-1")
	require.NoError(t, err)

	entries, err = st.Audit().ListRecentChanges(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, domain.AuditActionUpdate, entries[0].Action)
}

func TestAssetListFilters(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AssetService{Store: st}

	seed := []AssetInput{
		{Hostname: "web01", Vendor: "Dell", Status: domain.AssetStatusActive},
		{Hostname: "web02", Vendor: "Dell", Status: domain.AssetStatusRetired},
		{Hostname: "sw01", Vendor: "Cisco", Type: domain.AssetTypeNetwork},
	}
	for _, in := range seed {
		_, _, err := svc.Upsert(ctx, in, "")
		require.NoError(t, err)
	}

	t.Run("search matches hostname", func(t *testing.T) {
		assets, total, err := svc.List(ctx, store.AssetFilter{Search: "web"})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Len(t, assets, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		_, total, err := svc.List(ctx, store.AssetFilter{Status: domain.AssetStatusRetired})
		require.NoError(t, err)
		require.Equal(t, 1, total)
	})

	t.Run("filter by type", func(t *testing.T) {
		assets, total, err := svc.List(ctx, store.AssetFilter{Type: domain.AssetTypeNetwork})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, "sw01", assets[0].Hostname)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, _, err := svc.List(ctx, store.AssetFilter{Status: "nope"})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("status counts", func(t *testing.T) {
		counts, err := svc.StatusCounts(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, counts[domain.AssetStatusActive])
		require.Equal(t, 1, counts[domain.AssetStatusRetired])
	})
}

func TestAssetDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AssetService{Store: st}

	a, _, err := svc.Upsert(ctx, AssetInput{Hostname: "doomed"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID, ""))

	_, err = svc.Get(ctx, a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	t.Run("deleting twice reports not found", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, a.ID, ""), store.ErrNotFound)
	})
}
