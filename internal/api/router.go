package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/identity-system/internal/api/handler"
	"github.com/userhub/identity-system/internal/api/middleware"
	"github.com/userhub/identity-system/internal/core/domain"
	"github.com/userhub/identity-system/internal/core/ports"
	"github.com/userhub/identity-system/internal/core/service"
	"github.com/userhub/identity-system/internal/infrastructure/config"
	mongodb "github.com/userhub/identity-system/internal/infrastructure/db/mongo"
	redisdb "github.com/userhub/identity-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. The user
// and token stores are owned here and handed to the services by reference;
// nothing in the request path reaches for ambient state.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokenStore := redisdb.NewTokenStore(rdb)
	hasher := service.NewBcryptHasher()
	tokenService := service.NewTokenService(cfg.JWTSecret, tokenStore, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	authService := service.NewAuthService(userRepo, hasher, tokenService, audit, log)
	userService := service.NewUserService(userRepo, hasher, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/refresh", authHandler.Refresh)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- User directory (bearer auth; create additionally requires admin) ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
