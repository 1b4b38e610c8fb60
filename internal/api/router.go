package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sessionhub/user-portal/internal/api/handler"
	"github.com/sessionhub/user-portal/internal/api/middleware"
	"github.com/sessionhub/user-portal/internal/api/renderer"
	"github.com/sessionhub/user-portal/internal/core/service"
	mongodb "github.com/sessionhub/user-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/sessionhub/user-portal/internal/infrastructure/db/redis"
	"github.com/sessionhub/user-portal/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The context bounds startup work (index creation) and owns the lifetime of
// the audit workers.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, jwtSecret string, auditWorkers int, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userportal"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	views, err := renderer.New()
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}
	e.Renderer = views

	// --- Dependencies ---
	userRepo, err := mongodb.NewUserRepository(ctx, db)
	if err != nil {
		return nil, err
	}

	dispatcher := queue.NewDispatcher(auditWorkers, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	hasher := service.NewBcryptHasher()
	codec := service.NewJWTSessionCodec(jwtSecret)
	cache := redisdb.NewUserCache(rdb)
	authService := service.NewAuthService(userRepo, hasher, codec, cache, dispatcher)

	authHandler := handler.NewAuthHandler(authService)
	pageHandler := handler.NewPageHandler()
	userHandler := handler.NewUserHandler(authService)
	session := middleware.Session(authService)

	// --- Pages and auth flows ---
	e.GET("/", pageHandler.Home, session)
	e.GET("/register", pageHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", pageHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout, session)

	// --- Informational endpoints ---
	e.GET("/users", userHandler.Ping)
	e.GET("/users/all", userHandler.ListAll)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
