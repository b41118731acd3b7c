package routes

import (
	"github.com/gin-gonic/gin"

	readinghandler "aquameter/internal/interfaces/http/handlers/reading"
	"aquameter/internal/interfaces/http/middleware"
)

// ReadingRouteConfig holds dependencies for reading routes.
type ReadingRouteConfig struct {
	ReadingHandler *readinghandler.Handler
	AuthMiddleware *middleware.AuthMiddleware
	CaptureLimiter *middleware.RateLimiter
}

// SetupReadingRoutes configures reading capture and history routes.
func SetupReadingRoutes(engine *gin.Engine, cfg *ReadingRouteConfig) {
	readings := engine.Group("/readings")
	readings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		readings.POST("", cfg.CaptureLimiter.Limit(), cfg.ReadingHandler.Capture)
		readings.GET("", cfg.ReadingHandler.List)
		readings.PUT("/:id", cfg.ReadingHandler.Correct)
		readings.DELETE("/:id", cfg.ReadingHandler.Delete)
	}
}
