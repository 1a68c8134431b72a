package testutil

import (
	"context"
	"testing"

	"dictionary/internal/config"
	"dictionary/internal/domain"
	"dictionary/internal/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRepositories opens a migrated in-memory SQLite database that is
// closed when the test ends
func NewTestRepositories(t *testing.T) storage.Repositories {
	t.Helper()

	cfg := &config.Config{
		Environment: config.EnvTest,
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   ":memory:",
		},
	}

	db, err := storage.Open(context.Background(), cfg, NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return storage.NewRepositories(db, config.DriverSQLite)
}

// NewTestWord creates a test word
func NewTestWord(id int64, name string, languageID int64) *domain.Word {
	return &domain.Word{
		ID:         id,
		Name:       name,
		LanguageID: languageID,
	}
}

// NewTestLanguage creates a test language
func NewTestLanguage(id int64, name string) *domain.Language {
	return &domain.Language{ID: id, Name: name}
}
