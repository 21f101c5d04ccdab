package rest

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"news-service/app/port"
	"news-service/app/rest/handlers"
	custommw "news-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	AuthUsecase       port.AuthUsecase
	UserUsecase       port.UserUsecase
	ArticleUsecase    port.ArticleUsecase
	IngestUsecase     port.IngestUsecase
	MediaResolver     port.MediaResolver
	CredentialManager port.CredentialManager
	HealthChecker     handlers.HealthChecker
	SessionTTL        time.Duration
	UploadDir         string
	EnableDebug       bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.SessionTTL, config.Logger)
	userHandler := handlers.NewUserHandler(config.UserUsecase, config.Logger)
	articleHandler := handlers.NewArticleHandler(config.ArticleUsecase, config.IngestUsecase, config.MediaResolver, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.CredentialManager, config.Logger)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())

	// Uploaded article images
	if config.UploadDir != "" {
		e.Static("/uploads", config.UploadDir)
	}

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/health/ready", healthHandler.ReadinessCheck)
	v1.GET("/health/live", healthHandler.LivenessCheck)

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	// News endpoints; reads are public
	news := v1.Group("/news")
	news.GET("", articleHandler.List)
	news.GET("/featured", articleHandler.Featured)
	news.GET("/categories", articleHandler.Categories)
	news.GET("/:id", articleHandler.Get)

	// Like and unlike both toggle; stored state decides the direction
	news.PATCH("/:id/like", articleHandler.ToggleLike, requireAuth)
	news.PATCH("/:id/unlike", articleHandler.ToggleLike, requireAuth)

	// News administration
	news.POST("", articleHandler.Create, requireAuth, requireAdmin)
	news.PUT("/:id", articleHandler.Update, requireAuth, requireAdmin)
	news.DELETE("/:id", articleHandler.Delete, requireAuth, requireAdmin)
	news.POST("/ingest", articleHandler.Ingest, requireAuth, requireAdmin)

	// User endpoints
	users := v1.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout)
	users.GET("/profile", userHandler.Profile, requireAuth)
	users.PUT("/update", userHandler.UpdateProfile, requireAuth)

	// User administration
	users.GET("", userHandler.List, requireAuth, requireAdmin)
	users.POST("", userHandler.Create, requireAuth, requireAdmin)
	users.DELETE("/:id", userHandler.Delete, requireAuth, requireAdmin)

	return e
}
