// Package main is the entry point for the Pit My Doro API server.
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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pitmydoro/backend/config"
	"github.com/pitmydoro/backend/internal/infra/cache"
	"github.com/pitmydoro/backend/internal/infra/db"
	"github.com/pitmydoro/backend/internal/infra/dependency"
	"github.com/pitmydoro/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Pit My Doro API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(persistence.Models()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	var redisClient *redis.Client
	redisClient, err = cache.NewRedisClient(&cfg.Redis)
	switch {
	case errors.Is(err, cache.ErrDisabled):
		slog.Info("Redis disabled, rate limiting in memory")
	case err != nil:
		slog.Warn("Redis unavailable, rate limiting in memory", "error", err)
		redisClient = nil
	default:
		defer func() { _ = redisClient.Close() }()
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Redis:         redisClient,
		DBHealthCheck: database.HealthCheck,
	})
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	ctx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(ctx)
	}
	go injector.SessionCleaner.Start(ctx)

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopBackground()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
