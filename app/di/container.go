package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"news-service/app/config"
	"news-service/app/driver/newsapi"
	"news-service/app/driver/postgres"
	"news-service/app/driver/storage"
	"news-service/app/gateway"
	"news-service/app/port"
	"news-service/app/rest"
	"news-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// Usecases
	AuthUsecase    port.AuthUsecase
	UserUsecase    port.UserUsecase
	ArticleUsecase port.ArticleUsecase
	IngestUsecase  port.IngestUsecase

	// Supporting services
	CredentialManager port.CredentialManager
	MediaResolver     port.MediaResolver
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Repositories
	articleRepository := postgres.NewArticleRepository(container.DB.Pool(), logger)
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)

	// Credentials
	container.CredentialManager = usecase.NewCredentialManager(cfg.JWTSecret, cfg.SessionDuration)

	// News provider
	newsClient := newsapi.NewClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, cfg.NewsAPICountry, cfg.NewsAPIPageSize, logger)
	providerGateway := gateway.NewProviderGateway(newsClient, logger)

	// Media
	fileStore, err := storage.NewLocalFileStore(cfg.UploadDir, cfg.PublicBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}
	container.MediaResolver = gateway.NewMediaGateway(fileStore, logger)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUseCase(userRepository, container.CredentialManager, logger)
	container.UserUsecase = usecase.NewUserUseCase(userRepository, logger)
	container.ArticleUsecase = usecase.NewArticleUseCase(articleRepository, logger)
	container.IngestUsecase = usecase.NewIngestUseCase(providerGateway, articleRepository, logger)

	logger.Info("container initialized")
	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:            c.Logger,
		AuthUsecase:       c.AuthUsecase,
		UserUsecase:       c.UserUsecase,
		ArticleUsecase:    c.ArticleUsecase,
		IngestUsecase:     c.IngestUsecase,
		MediaResolver:     c.MediaResolver,
		CredentialManager: c.CredentialManager,
		HealthChecker:     c.DB,
		SessionTTL:        c.Config.SessionDuration,
		UploadDir:         c.Config.UploadDir,
		EnableDebug:       c.Config.LogLevel == "debug",
	})
}

// Close releases held resources.
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
