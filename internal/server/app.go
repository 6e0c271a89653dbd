// Package server initializes and runs the rental platform API server.
// It wires the database-backed services, starts the HTTP listener and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roadfleet/roadfleet/internal/logging"
	"github.com/roadfleet/roadfleet/internal/server/config"
	"github.com/roadfleet/roadfleet/internal/server/httpapi"
	"github.com/roadfleet/roadfleet/internal/server/repositories/repomanager"
	"github.com/roadfleet/roadfleet/internal/server/services"
	"github.com/roadfleet/roadfleet/internal/server/storage"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	repos  *repomanager.PostgresRepositoryManager
	api    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout)

	db, err := repomanager.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	s3 := storage.NewS3Storage(cfg)

	api := httpapi.NewServer(
		services.NewAuthService(repos.Users(), cfg),
		services.NewBookingService(repos.Bookings()),
		services.NewVehicleService(repos.Vehicles(), s3),
		services.NewUserService(repos.Users()),
		services.NewStatsService(repos.Stats()),
		cfg,
		logger,
	)

	return &App{config: cfg, logger: logger, repos: repos, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.api.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return app.repos.Close()
}
