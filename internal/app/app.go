// Package app initializes and runs the user account service. It configures
// logging, storage, authentication and both transports, and handles
// graceful shutdown.
package app

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/patric-chuzhbe/mobileappws/internal/auth"
	"github.com/patric-chuzhbe/mobileappws/internal/config"
	"github.com/patric-chuzhbe/mobileappws/internal/db/jsondb"
	"github.com/patric-chuzhbe/mobileappws/internal/db/memorystorage"
	"github.com/patric-chuzhbe/mobileappws/internal/db/postgresdb"
	"github.com/patric-chuzhbe/mobileappws/internal/db/sqlitedb"
	"github.com/patric-chuzhbe/mobileappws/internal/db/storage"
	"github.com/patric-chuzhbe/mobileappws/internal/grpcserver"
	"github.com/patric-chuzhbe/mobileappws/internal/ipchecker"
	"github.com/patric-chuzhbe/mobileappws/internal/logger"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
	"github.com/patric-chuzhbe/mobileappws/internal/router"
	"github.com/patric-chuzhbe/mobileappws/internal/service"
)

const shutdownTimeout = 10 * time.Second

// App bundles the configuration, the storage backend and the servers.
type App struct {
	cfg          *config.Config
	db           storage.Storage
	httpHandler  http.Handler
	grpcServer   *grpc.Server
	grpcListener net.Listener
}

// New initializes a new instance of App by:
// - loading configuration
// - initializing logger
// - selecting and setting up storage
// - setting up the service, the router and the optional gRPC server
func New(optionsProto ...config.InitOption) (*App, error) {
	var err error
	app := &App{}

	app.cfg, err = config.New(optionsProto...)
	if err != nil {
		return nil, err
	}

	err = logger.Init(app.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	authTokenSigningSecretKey, err := base64.URLEncoding.DecodeString(app.cfg.AuthTokenSigningSecretKey)
	if err != nil {
		return nil, fmt.Errorf("in internal/app/app.go/New(): error while `base64.URLEncoding.DecodeString()` calling: %w", err)
	}

	guard, err := ipchecker.New(app.cfg.TrustedSubnet)
	if err != nil {
		return nil, err
	}

	app.db, err = getStorageByType(app.cfg)
	if err != nil {
		return nil, err
	}

	theAuth := auth.New(authTokenSigningSecretKey, app.cfg.AuthTokenTTL, app.cfg.AuthTokenPrefix)
	svc := service.New(app.db, theAuth, app.cfg.BcryptCost)

	app.httpHandler = router.New(svc, theAuth, guard, app.cfg.ContextPath)

	if app.cfg.GRPCAddr != "" {
		app.grpcServer, app.grpcListener, err = grpcserver.NewGRPCServer(
			app.cfg.GRPCAddr,
			grpcserver.NewUsersHandler(svc),
			theAuth,
		)
		if err != nil {
			_ = app.db.Close()
			return nil, err
		}
	}

	return app, nil
}

// Run starts the HTTP server, and the gRPC server when configured, and
// blocks until a termination signal or a server failure.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.serve(ctx)
}

func (a *App) serve(ctx context.Context) error {
	logger.Log.Infow("server running", "RunAddr", a.cfg.RunAddr, "ContextPath", a.cfg.ContextPath)

	server := &http.Server{
		Addr:              a.cfg.RunAddr,
		Handler:           a.httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 2)
	go func() {
		serverErrCh <- server.ListenAndServe()
	}()

	if a.grpcServer != nil {
		logger.Log.Infow("gRPC server running", "GRPCAddr", a.grpcListener.Addr().String())
		go func() {
			serverErrCh <- a.grpcServer.Serve(a.grpcListener)
		}()
	}

	select {
	case <-ctx.Done():
		logger.Log.Infoln("Received shutdown signal. Closing the database and exiting...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if a.grpcServer != nil {
			a.grpcServer.GracefulStop()
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = a.db.Close()
			return fmt.Errorf("server shutdown error: %w", err)
		}

		return a.db.Close()

	case err := <-serverErrCh:
		if a.grpcServer != nil {
			a.grpcServer.Stop()
		}
		_ = server.Close()
		_ = a.db.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

// Close finalizes resources used by App such as logging.
func (a *App) Close() {
	if err := logger.Sync(); err != nil {
		fmt.Println("Logger sync error:", err)
	}
}

func getAvailableStorageType(cfg *config.Config) int {
	if cfg.DatabaseDSN != "" {
		return models.StorageTypePostgresql
	}

	if cfg.SQLitePath != "" {
		return models.StorageTypeSQLite
	}

	if cfg.DBFileName != "" {
		return models.StorageTypeFile
	}

	return models.StorageTypeMemory
}

func getStorageByType(cfg *config.Config) (storage.Storage, error) {
	switch getAvailableStorageType(cfg) {
	case models.StorageTypeUnknown:
		return nil, errors.New("unknown storage type")

	case models.StorageTypePostgresql:
		return postgresdb.New(
			context.Background(),
			cfg.DatabaseDSN,
			cfg.DBConnectionTimeout,
			cfg.MigrationsDir,
		)

	case models.StorageTypeSQLite:
		return sqlitedb.New(context.Background(), cfg.SQLitePath)

	case models.StorageTypeFile:
		return jsondb.New(cfg.DBFileName)
	}

	return memorystorage.New()
}
