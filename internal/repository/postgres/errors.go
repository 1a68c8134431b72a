package postgres

import (
	"database/sql"
	"errors"

	"dictionary/internal/domain"

	"github.com/lib/pq"
)

// SQLSTATE codes raised by constraint checks
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	checkViolation      = "23514"
)

// constraintError turns a unique or check violation into a validation error
// carrying reason. Other errors are returned unchanged.
func constraintError(err error, reason string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation, checkViolation:
			return &domain.ValidationError{Reason: reason}
		}
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// rollback is deferred by every transaction; it is a no-op after Commit
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
