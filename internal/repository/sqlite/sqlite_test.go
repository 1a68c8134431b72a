package sqlite

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"dictionary/migrations"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a SQLite file in a temp dir with the dictionary schema applied
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dictionary.db")
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	files, err := fs.Glob(migrations.FS, "sqlite/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		schema, err := fs.ReadFile(migrations.FS, file)
		require.NoError(t, err)
		_, err = db.Exec(string(schema))
		require.NoError(t, err, file)
	}
	return db
}

func mustExec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}
