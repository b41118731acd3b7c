package routes

import (
	"github.com/gin-gonic/gin"

	"aquameter/internal/interfaces/http/handlers"
	"aquameter/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the structure management routes.
type AdminRouteConfig struct {
	TenantHandler  *handlers.TenantHandler
	BlockHandler   *handlers.BlockHandler
	UnitHandler    *handlers.UnitHandler
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures tenant, block, unit and user management.
// Reads are open to every authenticated user; writes are master-only.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	tenants := engine.Group("/tenants")
	tenants.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tenants.GET("", cfg.TenantHandler.List)

		tenantsMaster := tenants.Group("")
		tenantsMaster.Use(cfg.AuthMiddleware.RequireMaster())
		{
			tenantsMaster.POST("", cfg.TenantHandler.Create)
			tenantsMaster.PUT("/:id", cfg.TenantHandler.Update)
			tenantsMaster.DELETE("/:id", cfg.TenantHandler.Delete)
		}
	}

	blocks := engine.Group("/blocks")
	blocks.Use(cfg.AuthMiddleware.RequireAuth())
	{
		blocks.GET("", cfg.BlockHandler.List)

		blocksMaster := blocks.Group("")
		blocksMaster.Use(cfg.AuthMiddleware.RequireMaster())
		{
			blocksMaster.POST("", cfg.BlockHandler.Create)
			blocksMaster.PUT("/:id", cfg.BlockHandler.Update)
			blocksMaster.DELETE("/:id", cfg.BlockHandler.Delete)
		}
	}

	units := engine.Group("/units")
	units.Use(cfg.AuthMiddleware.RequireAuth())
	{
		units.GET("", cfg.UnitHandler.List)

		unitsMaster := units.Group("")
		unitsMaster.Use(cfg.AuthMiddleware.RequireMaster())
		{
			unitsMaster.POST("", cfg.UnitHandler.Create)
			unitsMaster.POST("/generate", cfg.UnitHandler.Generate)
			unitsMaster.DELETE("/:id", cfg.UnitHandler.Delete)
		}
	}

	meters := engine.Group("/meters")
	meters.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireMaster())
	{
		meters.PUT("/:id", cfg.UnitHandler.UpdateMeter)
	}

	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	users.Use(cfg.AuthMiddleware.RequireMaster())
	{
		users.POST("", cfg.UserHandler.Create)
		users.GET("", cfg.UserHandler.List)
		users.PUT("/:id", cfg.UserHandler.Update)
		users.DELETE("/:id", cfg.UserHandler.Delete)
		users.GET("/:id/tenants", cfg.UserHandler.ListTenants)
		users.POST("/:id/tenants/:tenantId", cfg.UserHandler.LinkTenant)
		users.DELETE("/:id/tenants/:tenantId", cfg.UserHandler.UnlinkTenant)
	}
}
