package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"dictionary/internal/config"
	"dictionary/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// Migrate applies the embedded migrations for driver
func Migrate(db *sql.DB, driver string, logger *zap.Logger) error {
	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	var dbDriver database.Driver
	switch driver {
	case config.DriverPostgres:
		dbDriver, err = migratepostgres.WithInstance(db, &migratepostgres.Config{})
	case config.DriverSQLite:
		dbDriver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	m.Log = &migrateLogger{logger: logger.Sugar()}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("Migrations applied successfully", zap.Uint("version", version))
	return nil
}

// migrateLogger adapts golang-migrate's logger interface to zap
type migrateLogger struct {
	logger *zap.SugaredLogger
}

func (l *migrateLogger) Printf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
