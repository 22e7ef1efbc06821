package handlers

import (
	"log/slog"

	"github.com/SscSPs/shop_pos_app/cmd/docs"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/SscSPs/shop_pos_app/internal/platform/config"
	"github.com/SscSPs/shop_pos_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the runtime pieces the routes need besides the services.
type Dependencies struct {
	Posthog     *utils.PosthogClientWrapper
	Idempotency *middleware.IdempotencyStore
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Dependencies,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if err := registerAuthRoutes(r, cfg, services.Auth); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps Dependencies,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.PosthogMiddleware(deps.Posthog),
	)

	if deps.Idempotency == nil {
		slog.Warn("No idempotency store configured, using an in-memory one")
		deps.Idempotency = middleware.NewIdempotencyStore(middleware.IdempotencyKeyTTL, cfg.IdempotencyCacheSize)
	}

	registerHomeRoutes(v1, cfg)
	registerProductRoutes(v1, service.Catalog)
	registerPOSRoutes(v1, service.Checkout, deps.Idempotency)
	registerSaleRoutes(v1, service.Checkout)
	registerCreditRoutes(v1, service.Credit, cfg.ShopName)
	registerDashboardRoutes(v1, service.Dashboard)
	registerReportRoutes(v1, service.Reports)
	registerCatalogGroupRoutes(v1, service.Categories, service.Locations)
	registerEmployeeRoutes(v1, service.Employees)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
