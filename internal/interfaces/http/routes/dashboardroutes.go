package routes

import (
	"github.com/gin-gonic/gin"

	"aquameter/internal/interfaces/http/handlers"
	"aquameter/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupDashboardRoutes configures the collection dashboard route.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("", cfg.DashboardHandler.GetDashboard)
	}
}
