package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/stackledger/stackledger/internal/inventory/http"
	"github.com/stackledger/stackledger/internal/inventory/service"
	"github.com/stackledger/stackledger/internal/inventory/store"
	"github.com/stackledger/stackledger/internal/inventory/store/drivers/sqlite"
	"github.com/stackledger/stackledger/internal/inventory/view"
	"github.com/stackledger/stackledger/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the inventory service together: store, services, renderer
// and HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	assetService       *service.AssetService
	userService        *service.UserService
	applicationService *service.ApplicationService
	controllerService  *service.ControllerService
	apiKeyService      *service.APIKeyService
	reportService      *service.ReportService
	housekeeping       *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "inventory",
			Version: cfg.Version,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeeping.Start()

	app.logger.Info("inventory service starting",
		"port", app.cfg.Port,
		"version", app.cfg.Version,
		"auth_enabled", app.cfg.Provider.Enabled(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains outstanding requests, stops the housekeeping worker and
// closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down inventory service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeeping.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("inventory service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.assetService = &service.AssetService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.applicationService = &service.ApplicationService{Store: app.db}
	app.controllerService = &service.ControllerService{Store: app.db}
	app.apiKeyService = &service.APIKeyService{
		Store:  app.db,
		DevKey: app.cfg.DevAPIKey,
	}
	app.reportService = &service.ReportService{Store: app.db}

	app.housekeeping = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.AuditRetention,
	)

	if app.cfg.DevAPIKey != "" {
		app.logger.Warn("development API key bypass enabled")
	}
}

func (app *Application) initHTTP() error {
	renderer, err := view.New()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	router := httpapi.NewRouter(
		app.cfg.Provider,
		renderer,
		app.cfg.Env,
		app.cfg.Version,
		app.db,
		app.logger,
	)
	router.AssetService = app.assetService
	router.UserService = app.userService
	router.ApplicationService = app.applicationService
	router.ControllerService = app.controllerService
	router.APIKeyService = app.apiKeyService
	router.ReportService = app.reportService
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: router,
	}
	return nil
}
