package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "tabata_timer/docs"
	"tabata_timer/internal/catalog"
	"tabata_timer/internal/config"
	"tabata_timer/internal/handlers"
	"tabata_timer/internal/logger"
	"tabata_timer/internal/repository"
	"tabata_timer/internal/repository/db"
	"tabata_timer/internal/server"
	"tabata_timer/internal/service"
	"tabata_timer/internal/timer"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and WebSocket stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	sqlDB, err := openDB(cfg, log)
	if err != nil {
		log.Errorw("failed to init sqlite", "err", err)
		return err
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	cat := loadCatalog(cfg, log)
	services, closeSession := service.NewService(ctx, repos, cat, service.Options{
		Defaults: cfg.Timer.Phases(),
		Timer:    timer.Options{TickInterval: cfg.Timer.TickInterval},
		Auth: service.AuthConfig{
			PinHash:    cfg.Auth.PinHash,
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
		Log: log,
	})
	apiHandler := handlers.NewHandler(services, log)
	if !services.Authorization.Enabled() {
		log.Warnw("controller pin not set; API is open", "hint", "tabata pin set")
	}

	srv := &server.Server{}
	errCh := runHTTPServer(srv, cfg, apiHandler, log)

	return waitForShutdown(ctx, errCh, srv, closeSession, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening database", "path", cfg.DB.Path)
	return db.InitDB(cfg.DB.Path)
}

// loadCatalog seeds the predefined workouts and adds the configured file's.
func loadCatalog(cfg *config.Config, log *logger.Logger) *catalog.Catalog {
	cat := catalog.New(log)
	if cfg.Catalog.Path == "" {
		return cat
	}
	n, err := cat.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Warnw("catalog_file_unreadable", "path", cfg.Catalog.Path, "err", err)
		return cat
	}
	log.Infow("catalog_loaded", "path", cfg.Catalog.Path, "added", n, "total", cat.Len())
	return cat
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "port", cfg.Port)
		errCh <- srv.Run(cfg.Port, server.WithCORS(handler.InitRoutes(), cfg.CORS.AllowedOrigins))
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a server failure, then
// saves the active session and drains in-flight requests.
func waitForShutdown(ctx context.Context, errCh <-chan error, srv *server.Server, closeSession func(context.Context), log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
	case <-ctx.Done():
	case runErr = <-errCh:
		log.Errorw("error starting server", "err", runErr)
	}

	log.Infow("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	closeSession(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return runErr
}
