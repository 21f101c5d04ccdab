package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("JWT_SECRET", "test-secret-at-least-16-chars")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Equal(t, "https://newsapi.org", cfg.NewsAPIBaseURL)
	assert.Equal(t, "us", cfg.NewsAPICountry)
	assert.Equal(t, 50, cfg.NewsAPIPageSize)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, "admin", cfg.AdminUsername)
}

func TestLoad_MissingSecrets(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr string
	}{
		{
			name: "missing database credentials",
			setup: func(t *testing.T) {
				t.Setenv("JWT_SECRET", "test-secret-at-least-16-chars")
			},
			wantErr: "DATABASE_URL or DB_PASSWORD",
		},
		{
			name: "missing jwt secret",
			setup: func(t *testing.T) {
				t.Setenv("DB_PASSWORD", "test-password")
			},
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "jwt secret too short",
			setup: func(t *testing.T) {
				t.Setenv("DB_PASSWORD", "test-password")
				t.Setenv("JWT_SECRET", "short")
			},
			wantErr: "at least 16 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid port", key: "PORT", value: "not-a-port"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "invalid log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "invalid session duration", key: "SESSION_DURATION", value: "soon"},
		{name: "session duration too short", key: "SESSION_DURATION", value: "10s"},
		{name: "invalid page size", key: "NEWS_API_PAGE_SIZE", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDSN(t *testing.T) {
	t.Run("explicit database url wins", func(t *testing.T) {
		cfg := &Config{DatabaseURL: "postgres://u:p@somewhere:5432/db"}
		assert.Equal(t, "postgres://u:p@somewhere:5432/db", cfg.DSN())
	})

	t.Run("built from parts", func(t *testing.T) {
		cfg := &Config{
			DatabaseUser:     "news_user",
			DatabasePassword: "pw",
			DatabaseHost:     "localhost",
			DatabasePort:     "5432",
			DatabaseName:     "news_db",
			DatabaseSSLMode:  "disable",
		}
		assert.Equal(t, "postgres://news_user:pw@localhost:5432/news_db?sslmode=disable", cfg.DSN())
	})
}
