package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenworks/bakelab/config"
	"github.com/ovenworks/bakelab/internal/api"
	"github.com/ovenworks/bakelab/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	recipeHandler *api.RecipeHandler,
	adminHandler *api.AdminHandler,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS and request correlation apply to everything
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.RateLimitMiddleware())
	}

	recipeHandler.RegisterRoutes(v1)

	// Protected operational routes
	protected := v1.Group("")
	protected.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
	adminHandler.RegisterRoutes(protected)

	return router
}
