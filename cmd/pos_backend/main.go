package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/shop_pos_app/internal/core/services"
	"github.com/SscSPs/shop_pos_app/internal/handlers"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/SscSPs/shop_pos_app/internal/platform/config"
	"github.com/SscSPs/shop_pos_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/shop_pos_app/internal/utils"
	"github.com/SscSPs/shop_pos_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Shop POS API
// @version 1.0
// @description Point of sale, stock and customer credit backend for a single shop.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := middleware.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool, logger)

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	var events services.EventTracker
	if posthogClient.IsInitialized() {
		events = posthogClient
	}
	serviceContainer := services.NewServiceContainer(cfg, repos, events)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps := handlers.Dependencies{
		Posthog:     posthogClient,
		Idempotency: middleware.NewIdempotencyStore(middleware.IdempotencyKeyTTL, cfg.IdempotencyCacheSize),
	}
	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, deps); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("shop", cfg.ShopName))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
