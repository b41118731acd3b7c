package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "aquameter/internal/application/auth/usecases"
	blockusecases "aquameter/internal/application/block/usecases"
	dashboardusecases "aquameter/internal/application/dashboard/usecases"
	"aquameter/internal/application/reading/recognition"
	readingusecases "aquameter/internal/application/reading/usecases"
	tenantusecases "aquameter/internal/application/tenant/usecases"
	unitusecases "aquameter/internal/application/unit/usecases"
	userusecases "aquameter/internal/application/user/usecases"
	"aquameter/internal/infrastructure/auth"
	"aquameter/internal/infrastructure/config"
	recognitionimpl "aquameter/internal/infrastructure/recognition"
	"aquameter/internal/infrastructure/repository"
	"aquameter/internal/interfaces/http/handlers"
	readinghandler "aquameter/internal/interfaces/http/handlers/reading"
	"aquameter/internal/interfaces/http/middleware"
	"aquameter/internal/interfaces/http/routes"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/logger"
)

// Router assembles the HTTP surface: repositories, use cases, handlers,
// middleware and routes.
type Router struct {
	engine *gin.Engine
}

// jwtServiceAdapter bridges the infrastructure token service to the
// application-layer TokenIssuer contract.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, role, accessLevel string) (*authusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, role, accessLevel)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter builds the full HTTP router from the loaded configuration and
// an open database handle. redisClient may be nil; rate limiting is then a
// pass-through.
func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.MaxMultipartMemory = int64(cfg.Server.MaxBodyMB) << 20

	// Repositories and transaction boundary.
	tenantRepo := repository.NewTenantRepository(gormDB)
	blockRepo := repository.NewBlockRepository(gormDB)
	unitRepo := repository.NewUnitRepository(gormDB)
	meterRepo := repository.NewMeterRepository(gormDB)
	readingRepo := repository.NewReadingRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	// Infrastructure services.
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokenIssuer := &jwtServiceAdapter{JWTService: jwtService}

	var recognizer recognition.Service
	if cfg.Recognition.APIKey != "" {
		recognizer = recognitionimpl.NewGeminiService(
			cfg.Recognition.APIKey,
			cfg.Recognition.Model,
			time.Duration(cfg.Recognition.TimeoutSeconds)*time.Second,
			log,
		)
	} else {
		log.Warn("recognition API key not configured, captures will rely on manual values")
	}

	// Use cases.
	loginUC := authusecases.NewLoginUseCase(userRepo, tenantRepo, hasher, tokenIssuer, log)

	captureUC := readingusecases.NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, recognizer, txManager, log)
	correctUC := readingusecases.NewCorrectReadingUseCase(readingRepo, meterRepo, tenantRepo, txManager, log)
	listReadingsUC := readingusecases.NewListReadingsUseCase(readingRepo, log)
	deleteReadingUC := readingusecases.NewDeleteReadingUseCase(readingRepo, log)

	createTenantUC := tenantusecases.NewCreateTenantUseCase(tenantRepo, log)
	updateTenantUC := tenantusecases.NewUpdateTenantUseCase(tenantRepo, log)
	deleteTenantUC := tenantusecases.NewDeleteTenantUseCase(tenantRepo, log)
	listTenantsUC := tenantusecases.NewListTenantsUseCase(tenantRepo, userRepo, log)

	createBlockUC := blockusecases.NewCreateBlockUseCase(blockRepo, tenantRepo, log)
	listBlocksUC := blockusecases.NewListBlocksUseCase(blockRepo, log)
	updateBlockUC := blockusecases.NewUpdateBlockUseCase(blockRepo, log)
	deleteBlockUC := blockusecases.NewDeleteBlockUseCase(blockRepo, log)

	createUnitUC := unitusecases.NewCreateUnitUseCase(unitRepo, meterRepo, blockRepo, txManager, log)
	generateUnitsUC := unitusecases.NewGenerateUnitsUseCase(unitRepo, blockRepo, txManager, log)
	listUnitsUC := unitusecases.NewListUnitsUseCase(unitRepo, meterRepo, log)
	deleteUnitUC := unitusecases.NewDeleteUnitUseCase(unitRepo, meterRepo, txManager, log)
	updateMeterUC := unitusecases.NewUpdateMeterUseCase(meterRepo, log)

	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	linkTenantUC := userusecases.NewLinkTenantUseCase(userRepo, tenantRepo, log)
	unlinkTenantUC := userusecases.NewUnlinkTenantUseCase(userRepo, log)
	listUserTenantsUC := userusecases.NewListUserTenantsUseCase(userRepo, tenantRepo, log)

	getDashboardUC := dashboardusecases.NewGetDashboardUseCase(tenantRepo, readingRepo, log)

	// Handlers.
	authHandler := handlers.NewAuthHandler(loginUC, log)
	readingHandler := readinghandler.NewHandler(captureUC, correctUC, listReadingsUC, deleteReadingUC, log)
	tenantHandler := handlers.NewTenantHandler(createTenantUC, updateTenantUC, deleteTenantUC, listTenantsUC, log)
	blockHandler := handlers.NewBlockHandler(createBlockUC, listBlocksUC, updateBlockUC, deleteBlockUC, log)
	unitHandler := handlers.NewUnitHandler(createUnitUC, generateUnitsUC, listUnitsUC, deleteUnitUC, updateMeterUC, log)
	userHandler := handlers.NewUserHandler(createUserUC, updateUserUC, deleteUserUC, listUsersUC, linkTenantUC, unlinkTenantUC, listUserTenantsUC, log)
	dashboardHandler := handlers.NewDashboardHandler(getDashboardUC, log)

	// Middleware.
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	loginLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.LoginPerMinute, time.Minute)
	captureLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.CapturePerMinute, time.Minute)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
		RateLimiter: loginLimiter,
	})
	routes.SetupReadingRoutes(engine, &routes.ReadingRouteConfig{
		ReadingHandler: readingHandler,
		AuthMiddleware: authMiddleware,
		CaptureLimiter: captureLimiter,
	})
	routes.SetupDashboardRoutes(engine, &routes.DashboardRouteConfig{
		DashboardHandler: dashboardHandler,
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		TenantHandler:  tenantHandler,
		BlockHandler:   blockHandler,
		UnitHandler:    unitHandler,
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
