package service

import (
	"context"
	"testing"

	"github.com/stackledger/stackledger/internal/inventory/domain"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stretchr/testify/require"
)

func TestApplicationCreateLinksAssets(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	assets := &AssetService{Store: st}
	svc := &ApplicationService{Store: st}

	host, _, err := assets.Upsert(ctx, AssetInput{Hostname: "app-host"}, "")
	require.NoError(t, err)

	app, err := svc.Create(ctx, ApplicationInput{
		Name:     "billing",
		Port:     8443,
		AssetIDs: []string{host.ID},
	}, "")
	require.NoError(t, err)
	require.Equal(t, domain.AppEnvProduction, app.Environment)
	require.Equal(t, domain.AppCriticalityMedium, app.Criticality)

	got, err := svc.Get(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, []string{host.ID}, got.AssetIDs)

	t.Run("missing asset aborts create", func(t *testing.T) {
		_, err := svc.Create(ctx, ApplicationInput{
			Name:     "broken",
			AssetIDs: []string{"no-such-asset"},
		}, "")
		require.ErrorIs(t, err, store.ErrNotFound)

		apps, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, apps, 1)
	})
}

func TestApplicationUpdateReconcilesLinks(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	assets := &AssetService{Store: st}
	svc := &ApplicationService{Store: st}

	a1, _, err := assets.Upsert(ctx, AssetInput{Hostname: "node1"}, "")
	require.NoError(t, err)
	a2, _, err := assets.Upsert(ctx, AssetInput{Hostname: "node2"}, "")
	require.NoError(t, err)

	app, err := svc.Create(ctx, ApplicationInput{
		Name:     "queue",
		AssetIDs: []string{a1.ID},
	}, "")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, app.ID, ApplicationInput{
		Name:     "queue",
		AssetIDs: []string{a2.ID},
	}, "")
	require.NoError(t, err)
	require.Equal(t, []string{a2.ID}, updated.AssetIDs)

	got, err := svc.Get(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, []string{a2.ID}, got.AssetIDs)
}

func TestApplicationValidation(t *testing.T) {
	ctx := context.Background()
	svc := &ApplicationService{Store: newTestStore(t)}

	t.Run("name required", func(t *testing.T) {
		_, err := svc.Create(ctx, ApplicationInput{}, "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown environment rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, ApplicationInput{Name: "x", Environment: "qa"}, "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown criticality rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, ApplicationInput{Name: "x", Criticality: "urgent"}, "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("port out of range rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, ApplicationInput{Name: "x", Port: 70000}, "")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestApplicationDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, ApplicationInput{Name: "temp"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, app.ID, ""))

	_, err = svc.Get(ctx, app.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	entries, err := st.Audit().ListRecentChanges(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, domain.AuditActionDelete, entries[0].Action)
	require.Equal(t, "application", entries[0].ResourceType)
}
