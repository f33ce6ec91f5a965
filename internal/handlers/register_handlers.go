package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/meridianfs/client_onboarding_app/cmd/docs"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/middleware"
	"github.com/meridianfs/client_onboarding_app/pkg/config"
)

// RegisterRoutes sets up all application routes. The intake surface is public
// and rate limited; everything under /api/v1 (auth routes aside) requires a
// reviewer principal.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	intakeLimiter *limiter.Limiter,
) {
	r.GET("/health", getHealth)

	setupIntakeRoutes(r, services, intakeLimiter)
	registerAuthRoutes(r, services.Auth)
	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupIntakeRoutes configures the public, rate-limited intake group.
func setupIntakeRoutes(r *gin.Engine, services *portssvc.ServiceContainer, intakeLimiter *limiter.Limiter) {
	intake := r.Group("/api/intake", middleware.RateLimit(intakeLimiter))
	registerSubmissionRoutes(intake, services.Intake)
}

// setupAPIV1Routes configures the authenticated review group.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.ReviewerAuth(services.Auth))

	registerReviewRoutes(v1, services.Review)
	registerAPIKeyRoutes(v1, services.APIKeys)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
