package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "crowdfund-escrow/internal/adapter/http"
	"crowdfund-escrow/internal/adapter/memory"
	"crowdfund-escrow/internal/adapter/postgres"
	"crowdfund-escrow/internal/adapter/usecase"
	"crowdfund-escrow/internal/adapter/websocket"
	"crowdfund-escrow/internal/config"
	"crowdfund-escrow/internal/config/configs"
	"crowdfund-escrow/internal/core/port"
	"crowdfund-escrow/internal/db"
)

// main is the entry point of the escrow service. It loads configuration,
// selects the storage driver (optionally running migrations and seeding),
// starts the event hub and the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage initialisation error", slog.Any("error", err))
		return
	}
	defer closeRepo()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, repo, time.Now()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	hub := websocket.NewHub(logger, websocket.WithAllowedOrigins(cfg.HTTP.AllowedOrigins))
	go hub.Run(ctx)

	svc := usecase.NewEscrowUseCase(repo,
		usecase.WithEvents(hub),
		usecase.WithLogger(logger))

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		Auth:          httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		Events:        hub,
		AllowDeposits: cfg.Ledger.AllowDeposits,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("storage", cfg.Storage.Normalized()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openRepository builds the configured repository and returns a function
// releasing its resources.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.EscrowRepository, func(), error) {
	if cfg.Storage.Normalized() != configs.StoragePostgres {
		return memory.NewEscrowRepository(), func() {}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewEscrowRepository(pool), pool.Close, nil
}
