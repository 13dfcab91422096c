package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/autoorder/backend/internal/api"
	"github.com/andresuchdata/autoorder/backend/internal/cache"
	"github.com/andresuchdata/autoorder/backend/internal/config"
	"github.com/andresuchdata/autoorder/backend/internal/repository/postgres"
	"github.com/andresuchdata/autoorder/backend/internal/service"
	"github.com/andresuchdata/autoorder/backend/internal/storage"
	"github.com/andresuchdata/autoorder/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.Setup(os.Stdout, cfg.Server.Mode == "debug")
	logger.SetLevel(cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Cache and export storage degrade to noop when they cannot be reached
	catalogCache, err := cache.NewCatalogCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Catalog cache disabled")
		catalogCache = cache.NewNoopCatalogCache()
	}
	// Entries written before a migration may carry an older product shape
	if err := catalogCache.InvalidateAll(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to flush catalog cache")
	}

	exportStorage, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Export storage disabled")
		exportStorage = storage.NoopStorage{}
	}

	// Initialize services
	catalogService := service.NewCatalogService(postgres.NewCatalogRepository(db), catalogCache)
	services := &api.Services{
		CatalogService: catalogService,
		OrderService: service.NewOrderService(
			postgres.NewOrderRepository(db),
			catalogService,
			exportStorage,
			cfg.Order.DefaultSettings(),
		),
		PlanningService: service.NewPlanningService(
			postgres.NewPlanRepository(db),
			catalogService,
			cfg.Order.PlanMonths,
		),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
