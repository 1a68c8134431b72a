// Package sqlite stores the dictionary in a SQLite database through the
// pure-Go modernc driver.
package sqlite

import (
	"database/sql"
	"errors"

	"dictionary/internal/domain"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// constraintError turns a unique, primary key or check violation into a
// validation error carrying reason. Other errors are returned unchanged.
func constraintError(err error, reason string) error {
	var sqliteErr *sqlitedriver.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE,
			sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlite3.SQLITE_CONSTRAINT_CHECK:
			return &domain.ValidationError{Reason: reason}
		}
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}

func scanWords(rows *sql.Rows) ([]domain.Word, error) {
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Name, &w.LanguageID); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
