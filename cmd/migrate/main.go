package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"finance-api/migrations"
	"finance-api/pkg/config"
	"finance-api/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Usage: migrate [up|down]
func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		appLogger.Fatal("sql.Open", zap.Error(err))
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		appLogger.Fatal("postgres.WithInstance", zap.Error(err))
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		appLogger.Fatal("iofs.New", zap.Error(err))
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		appLogger.Fatal("migrate.NewWithInstance", zap.Error(err))
	}

	before := version(m, appLogger)

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		appLogger.Fatal("Unknown direction", zap.String("direction", direction))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		appLogger.Fatal("Migration failed", zap.String("direction", direction), zap.Error(err))
	}

	appLogger.Info("Migration status",
		zap.String("direction", direction),
		zap.Uint("pre_migration_version", before),
		zap.Uint("post_migration_version", version(m, appLogger)),
	)
}

func version(m *migrate.Migrate, log *zap.Logger) uint {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0
	}
	if err != nil {
		log.Fatal("m.Version", zap.Error(err))
	}
	if dirty {
		log.Warn("Database is in a dirty migration state", zap.Uint("version", v))
	}
	return v
}
