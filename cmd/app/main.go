package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BarSentry_Go/internal/alert"
	"github.com/osse101/BarSentry_Go/internal/concurrency"
	"github.com/osse101/BarSentry_Go/internal/config"
	"github.com/osse101/BarSentry_Go/internal/database"
	"github.com/osse101/BarSentry_Go/internal/database/postgres"
	"github.com/osse101/BarSentry_Go/internal/handler"
	"github.com/osse101/BarSentry_Go/internal/inventory"
	"github.com/osse101/BarSentry_Go/internal/recipe"
	"github.com/osse101/BarSentry_Go/internal/sales"
	"github.com/osse101/BarSentry_Go/internal/scheduler"
	"github.com/osse101/BarSentry_Go/internal/server"
	"github.com/osse101/BarSentry_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	recalcTimeout   = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ingredientRepo := postgres.NewIngredientRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)

	alertManager := alert.NewManager(alertRepo)
	graphResolver := recipe.NewResolver(recipeRepo)
	aggregator := sales.NewAggregator(salesRepo)
	importer := sales.NewImporter(salesRepo)

	inventoryService := inventory.NewService(
		ingredientRepo,
		graphResolver,
		aggregator,
		alertManager,
		concurrency.NewPassGuard(),
	)

	workerPool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workerPool.Start()
	defer workerPool.Stop()

	sched := scheduler.New(workerPool)
	if cfg.RecalcInterval > 0 {
		sched.Schedule(cfg.RecalcInterval, worker.NewRecalcJob(inventoryService, recalcTimeout))
		slog.Info("Scheduled recalculation enabled", "interval", cfg.RecalcInterval)
	}
	defer sched.Stop()

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		pool,
		inventoryService,
		alertManager,
		importer,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
