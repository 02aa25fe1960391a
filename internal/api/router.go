package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerlounge/consultancy-api/internal/api/handler"
	"github.com/careerlounge/consultancy-api/internal/api/middleware"
	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
	"github.com/careerlounge/consultancy-api/internal/core/service"
	mongodb "github.com/careerlounge/consultancy-api/internal/infrastructure/db/mongo"
	redisdb "github.com/careerlounge/consultancy-api/internal/infrastructure/db/redis"
	"github.com/careerlounge/consultancy-api/internal/infrastructure/http/handlers"
	"github.com/careerlounge/consultancy-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	mailer ports.Mailer,
	notifier ports.Notifier,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("consultancy"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)
	tokenStore := redisdb.NewResetTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, notifier, cfg.JWTSecret, cfg.TokenTTL, cfg.FrontendURL, log)
	bookingService := service.NewBookingService(bookingRepo, mailer, notifier, log)
	leadService := service.NewLeadService(leadRepo, log)
	adminService := service.NewAdminService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	leadHandler := handler.NewLeadHandler(leadService)
	adminHandler := handler.NewAdminHandler(adminService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Booking routes ---
	bookings := e.Group("/bookings", authRequired)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.ListAll, adminOnly)
	bookings.GET("/user/my-bookings", bookingHandler.ListMine)
	bookings.PATCH("/:id", bookingHandler.UpdateStatus, adminOnly)

	// --- Lead routes ---
	e.POST("/leads", leadHandler.Create)
	leads := e.Group("/leads", authRequired, adminOnly)
	leads.GET("", leadHandler.List)
	leads.PATCH("/:id", leadHandler.UpdateStatus)

	// --- Admin routes ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
