package http

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackledger/stackledger/internal/inventory/authn"
	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/internal/inventory/store/drivers/sqlite"
	"github.com/stackledger/stackledger/internal/inventory/view"
)

type testEnv struct {
	router *Router
	store  *sqlite.Store
	apiKey string
}

func newTestEnv(t *testing.T, provider authn.ProviderConfig, logger *slog.Logger) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	renderer, err := view.New()
	require.NoError(t, err)

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := NewRouter(provider, renderer, "dev", "test", st, logger)
	r.AssetService = &service.AssetService{Store: st}
	r.UserService = &service.UserService{Store: st}
	r.ApplicationService = &service.ApplicationService{Store: st}
	r.ControllerService = &service.ControllerService{Store: st}
	r.APIKeyService = &service.APIKeyService{Store: st}
	r.ReportService = &service.ReportService{Store: st}
	r.ApplyRoutes()

	_, plaintext, err := r.APIKeyService.Mint(context.Background(), "test-suite")
	require.NoError(t, err)

	return &testEnv{router: r, store: st, apiKey: plaintext}
}
