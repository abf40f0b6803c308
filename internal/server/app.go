// Package server wires configuration, storage and services together and
// runs the gRPC endpoint until the process is signalled.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/dmitrijs2005/mvikeeper/internal/server/config"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/announcements"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mvikeeper/internal/server/services"

	gs "github.com/dmitrijs2005/mvikeeper/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *gs.GRPCServer
}

// NewApp opens storage (Postgres when a DSN is configured, memory
// otherwise), migrates it and builds the gRPC server.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	server := gs.NewGRPCServer(cfg.EndpointAddrGRPC, logger,
		services.NewSessionService(repos, cfg),
		services.NewVerificationService(cfg.VerificationPassword),
		services.NewAnnouncementService(repos),
		gs.WithLatency(cfg.Latency),
	)

	return &App{config: cfg, logger: logger, repos: repos, server: server}, nil
}

func openRepositories(ctx context.Context, cfg *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info(ctx, "Using in-memory storage")
		return repomanager.NewInMemoryRepositoryManager(announcements.Seed()...), nil
	}

	logger.Info(ctx, "Using PostgreSQL storage")
	return repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "latency", app.config.Latency.String())
	app.initSignalHandler(cancelFunc)

	defer func() {
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "close storage", "error", err)
		}
	}()

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
