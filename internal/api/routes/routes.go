package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumatch-utils/internal/api/handlers"
	"resumatch-utils/internal/api/middleware"
	"resumatch-utils/internal/compare"
	"resumatch-utils/internal/config"
	"resumatch-utils/internal/extract"
	"resumatch-utils/internal/llm"
	"resumatch-utils/pkg/utils"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, resolver *extract.Resolver, engine *compare.Engine, llmManager *llm.Manager, cache *utils.ResultCache) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: 30s for most endpoints, 2 minutes for AI-backed endpoints
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, cache))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/parse", handlers.ParseResumeHandler(cfg, resolver, cache))
			resume.POST("/compare", handlers.CompareResumeHandler(cfg, engine, cache))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Resume Match Utils",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
