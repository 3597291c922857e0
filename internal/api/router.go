package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mentorloop/mentorship-api/internal/api/handler"
	"github.com/mentorloop/mentorship-api/internal/api/middleware"
	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/core/service"
	mongodb "github.com/mentorloop/mentorship-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/mentorloop/mentorship-api/internal/infrastructure/db/redis"
	"github.com/mentorloop/mentorship-api/internal/pkg/config"
	"github.com/mentorloop/mentorship-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mentorship"))

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Edge gate for page navigation: coarse allow/deny by public set and role
	// prefix. API routes are excluded here and protected below instead.
	e.Use(middleware.Gate(issuer))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	matchRepo := mongodb.NewMatchRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	loginLimiter := redisinfra.NewLoginLimiter(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, issuer, loginLimiter)
	mentorService := service.NewMentorService(userRepo, profileRepo, sessionRepo, log)
	requestService := service.NewRequestService(requestRepo, matchRepo, userRepo, profileRepo, log)
	sessionService := service.NewSessionService(sessionRepo, matchRepo, userRepo, profileRepo, log)
	dashboardService := service.NewDashboardService(userRepo, profileRepo, requestRepo, matchRepo, sessionRepo, log)
	adminService := service.NewAdminService(userRepo, profileRepo, matchRepo, sessionRepo, log)
	profileService := service.NewProfileService(profileRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	mentorHandler := handler.NewMentorHandler(mentorService)
	requestHandler := handler.NewRequestHandler(requestService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	adminHandler := handler.NewAdminHandler(adminService)
	profileHandler := handler.NewProfileHandler(profileService)

	authMW := middleware.Auth(issuer)

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/me", authHandler.Me, authMW)

	// --- Authenticated routes ---
	apiGroup := e.Group("/api", authMW)

	apiGroup.GET("/profile", profileHandler.Get)
	apiGroup.PUT("/profile", profileHandler.Update)

	apiGroup.GET("/mentors", mentorHandler.List, middleware.RBAC(domain.RoleMentee))

	apiGroup.POST("/requests", requestHandler.Create, middleware.RBAC(domain.RoleMentee))
	apiGroup.GET("/requests", requestHandler.List, middleware.RBAC(domain.RoleMentor, domain.RoleMentee))
	apiGroup.PATCH("/requests/:id", requestHandler.Decide, middleware.RBAC(domain.RoleMentor))

	apiGroup.POST("/sessions", sessionHandler.Schedule, middleware.RBAC(domain.RoleMentor))
	apiGroup.GET("/sessions", sessionHandler.List, middleware.RBAC(domain.RoleMentor, domain.RoleMentee))
	apiGroup.PATCH("/sessions/:id", sessionHandler.Update)

	apiGroup.GET("/mentor/dashboard", dashboardHandler.Mentor, middleware.RBAC(domain.RoleMentor))
	apiGroup.GET("/mentee/dashboard", dashboardHandler.Mentee, middleware.RBAC(domain.RoleMentee))

	// Admin routes: group RBAC plus the handler's own role re-check.
	adminGroup := apiGroup.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	adminGroup.GET("/stats", adminHandler.Stats)
	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.POST("/users", adminHandler.CreateUser)
	adminGroup.PUT("/users/:id/role", adminHandler.UpdateRole)
	adminGroup.GET("/matches", adminHandler.ListMatches)
	adminGroup.POST("/matches", adminHandler.CreateMatch)
	adminGroup.GET("/sessions", adminHandler.ListSessions)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, log)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
