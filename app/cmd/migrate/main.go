package main

import (
	"database/sql"
	"embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"news-service/app/config"
	"news-service/app/utils/database"
	"news-service/app/utils/logger"
	"news-service/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.Int("steps", 1, "Number of steps for down migration")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DSN(), appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrator := migration.NewMigrator(db, appLogger, migrationsFS)

	switch *command {
	case "up":
		if err := migrator.Up(); err != nil {
			appLogger.Error("Migration up failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("All migrations applied")

		if err := seedAdmin(db, cfg, appLogger); err != nil {
			appLogger.Error("Admin seeding failed", "error", err)
			os.Exit(1)
		}

	case "down":
		count := *steps
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			if err := migrator.Down(); err != nil {
				appLogger.Error("Migration down failed", "error", err, "step", i+1)
				os.Exit(1)
			}
		}
		appLogger.Info("Migrations rolled back", "steps", count)

	case "status":
		if err := migrator.Status(); err != nil {
			appLogger.Error("Migration status failed", "error", err)
			os.Exit(1)
		}

	default:
		appLogger.Error("Unknown command", "command", *command)
		fmt.Println("Available commands: up, down, status")
		os.Exit(1)
	}
}

// seedAdmin provisions the bootstrap admin account when ADMIN_PASSWORD is
// configured. Re-running is harmless: an existing username wins.
func seedAdmin(db *sql.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AdminPassword == "" {
		logger.Info("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	result, err := db.Exec(`
		INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'admin', $5, $5)
		ON CONFLICT (username) DO NOTHING`,
		uuid.New(), cfg.AdminUsername, cfg.AdminEmail, string(hash), now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read seed result: %w", err)
	}
	if inserted == 0 {
		logger.Info("Admin user already present", "username", cfg.AdminUsername)
	} else {
		logger.Info("Seeded admin user", "username", cfg.AdminUsername)
	}
	return nil
}
