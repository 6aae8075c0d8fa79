package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"blogly-service/internal/config"
	"blogly-service/internal/logger"
)

func main() {
	var direction string
	flag.StringVar(&direction, "direction", "up", "migration direction: up or down")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, dsn)
	if err != nil {
		log.Error("Failed to create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("Failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Error("Failed to close migration db", slog.String("error", dbErr.Error()))
		}
	}()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		log.Error("Unknown migration direction", slog.String("direction", direction))
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to apply")
			return
		}
		log.Error("Migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("Migrations applied", slog.String("direction", direction))
}
