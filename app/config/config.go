package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the news service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"8080"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseHost     string `env:"DB_HOST" default:"news-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"news_db"`
	DatabaseUser     string `env:"DB_USER" default:"news_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Credentials
	JWTSecret       string        `env:"JWT_SECRET" required:"true"`
	SessionDuration time.Duration `env:"SESSION_DURATION" default:"24h"`

	// News provider
	NewsAPIBaseURL  string `env:"NEWS_API_BASE_URL" default:"https://newsapi.org"`
	NewsAPIKey      string `env:"NEWS_API_KEY"`
	NewsAPICountry  string `env:"NEWS_API_COUNTRY" default:"us"`
	NewsAPIPageSize int    `env:"NEWS_API_PAGE_SIZE" default:"50"`

	// Media
	PublicBaseURL string `env:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
	UploadDir     string `env:"UPLOAD_DIR" default:"./uploads"`

	// Seed admin (consumed by cmd/migrate)
	AdminUsername string `env:"ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" default:"admin@newshub.local"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "8080")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "news-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "news_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "news_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	if config.DatabaseURL == "" && config.DatabasePassword == "" {
		return nil, fmt.Errorf("either DATABASE_URL or DB_PASSWORD is required")
	}

	// Credential configuration
	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	sessionDurationStr := getEnvOrDefault("SESSION_DURATION", "24h")
	config.SessionDuration, err = time.ParseDuration(sessionDurationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_DURATION: %w", err)
	}

	// News provider configuration
	config.NewsAPIBaseURL = getEnvOrDefault("NEWS_API_BASE_URL", "https://newsapi.org")
	config.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	config.NewsAPICountry = getEnvOrDefault("NEWS_API_COUNTRY", "us")

	pageSizeStr := getEnvOrDefault("NEWS_API_PAGE_SIZE", "50")
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_API_PAGE_SIZE: %w", err)
	}
	config.NewsAPIPageSize = pageSize

	// Media configuration
	config.PublicBaseURL = strings.TrimRight(getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/")
	config.UploadDir = getEnvOrDefault("UPLOAD_DIR", "./uploads")

	// Seed admin configuration
	config.AdminUsername = getEnvOrDefault("ADMIN_USERNAME", "admin")
	config.AdminEmail = getEnvOrDefault("ADMIN_EMAIL", "admin@newshub.local")
	config.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate JWT secret length (minimum 16 for HS256 sanity)
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT secret must be at least 16 characters, got: %d", len(c.JWTSecret))
	}

	// Validate session duration (minimum 1 minute)
	if c.SessionDuration < time.Minute {
		return fmt.Errorf("session duration must be at least 1 minute, got: %v", c.SessionDuration)
	}

	// Validate provider page size
	if c.NewsAPIPageSize < 1 || c.NewsAPIPageSize > 100 {
		return fmt.Errorf("news api page size must be between 1 and 100, got: %d", c.NewsAPIPageSize)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
