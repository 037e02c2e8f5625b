package main

import (
	"flag"
	"log"

	"github.com/alexivanou/skytrip-api/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, or version")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	sourceURL := "file://migrations/postgres"
	var databaseURL string

	if cfg.DB.IsMemory() {
		sourceURL = "file://migrations/sqlite"
		// golang-migrate expects the scheme prefix; keep the sqlite DSN as-is
		databaseURL = "sqlite3://" + cfg.DB.DSN()
	} else {
		databaseURL = cfg.DB.DSN()
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		logger.Fatal("Failed to create migration instance", zap.Error(err))
	}
	defer m.Close()

	switch *command {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		logger.Info("Migrations applied")
	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to roll back migrations", zap.Error(err))
		}
		logger.Info("Migrations rolled back")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			logger.Fatal("Failed to get migration version", zap.Error(err))
		}
		logger.Info("Migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	default:
		logger.Fatal("Unknown command", zap.String("command", *command))
	}
}
