// Package storage opens the configured relational store, applies the embedded
// schema and builds the repositories for it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dictionary/internal/config"
	"dictionary/internal/repository"
	"dictionary/internal/repository/postgres"
	"dictionary/internal/repository/sqlite"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	maxConnectRetries = 30
	connectRetryDelay = 2 * time.Second
)

// Repositories groups the repository implementations of one backend
type Repositories struct {
	Languages    repository.LanguageRepository
	Words        repository.WordRepository
	Translations repository.TranslationRepository
}

// Open connects to the database selected by cfg and brings its schema up to date
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = connectPostgres(ctx, cfg.DSN(), logger)
	case config.DriverSQLite:
		db, err = openSQLite(cfg.Database.Path, cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db, cfg.Database.Driver, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// NewRepositories returns the repositories matching driver
func NewRepositories(db *sql.DB, driver string) Repositories {
	if driver == config.DriverPostgres {
		return Repositories{
			Languages:    postgres.NewLanguageRepo(db),
			Words:        postgres.NewWordRepo(db),
			Translations: postgres.NewTranslationRepo(db),
		}
	}

	return Repositories{
		Languages:    sqlite.NewLanguageRepo(db),
		Words:        sqlite.NewWordRepo(db),
		Translations: sqlite.NewTranslationRepo(db),
	}
}

// connectPostgres connects to PostgreSQL with retries
func connectPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < maxConnectRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				db.SetMaxOpenConns(25)
				db.SetMaxIdleConns(5)
				db.SetConnMaxLifetime(5 * time.Minute)
				return db, nil
			}
			db.Close()
		}

		logger.Warn("Failed to connect to database",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectRetryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectRetries, err)
}

// openSQLite opens a SQLite database, creating the parent directory of path.
// A single connection serializes writers and keeps ":memory:" databases alive.
func openSQLite(path, dsn string) (*sql.DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}
