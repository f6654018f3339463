package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushub/events-api/internal/api/handler"
	"github.com/campushub/events-api/internal/api/middleware"
	"github.com/campushub/events-api/internal/core/service"
	"github.com/campushub/events-api/internal/infrastructure/config"
	mongodb "github.com/campushub/events-api/internal/infrastructure/db/mongo"
	"github.com/campushub/events-api/internal/infrastructure/db/redis"
	"github.com/campushub/events-api/internal/infrastructure/storage"
)

const tokenTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, photos *storage.LocalStorage, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("campus_events"))

	// --- Dependencies ---
	studentRepo := mongodb.NewStudentRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	limiter := redis.NewLoginLimiter(rdb, 0, 0)

	authService := service.NewAuthService(studentRepo, limiter, cfg.JWTSecret, tokenTTL, log)
	eventService := service.NewEventService(eventRepo, studentRepo, log)
	rosterService := service.NewRosterService(studentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService, photos)
	adminHandler := handler.NewAdminHandler(rosterService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminMW := middleware.AdminKey(cfg.AdminAPIKey)

	// --- Student routes ---
	students := e.Group("/api/students")
	students.POST("/activate", authHandler.Activate)
	students.POST("/login", authHandler.Login)

	// --- Event routes ---
	events := e.Group("/api/events")
	events.GET("", eventHandler.List)
	events.GET("/:id", eventHandler.Get)
	events.POST("/:id/signup", eventHandler.Signup, authMW)

	// --- Admin routes ---
	admin := e.Group("/api/admin", adminMW)
	admin.POST("/students/import", adminHandler.ImportRoster)
	admin.POST("/events", eventHandler.Create)

	// --- Uploaded photos ---
	e.Static("/uploads", photos.BasePath())

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
