package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"dictionary/internal/domain"
)

// LanguageRepo implements repository.LanguageRepository
type LanguageRepo struct {
	db *sql.DB
}

// NewLanguageRepo creates a new language repository
func NewLanguageRepo(db *sql.DB) *LanguageRepo {
	return &LanguageRepo{db: db}
}

// CreateLanguage inserts a language whose name is not taken yet.
// The check and the insert share one transaction; the unique index rejects a racing duplicate.
func (r *LanguageRepo) CreateLanguage(ctx context.Context, name string) (*domain.Language, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(tx)

	duplicate := fmt.Sprintf("language %q already exists", name)

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM languages WHERE name = ?)`, name).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.ValidationError{Reason: duplicate}
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO languages (name) VALUES (?)`, name)
	if err != nil {
		return nil, constraintError(err, duplicate)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, constraintError(err, duplicate)
	}
	return &domain.Language{ID: id, Name: name}, nil
}

// GetLanguage returns a language by id, or nil if it does not exist
func (r *LanguageRepo) GetLanguage(ctx context.Context, id int64) (*domain.Language, error) {
	var lang domain.Language
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM languages WHERE id = ?`, id).Scan(&lang.ID, &lang.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lang, nil
}

// ListLanguages returns all languages in creation order
func (r *LanguageRepo) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM languages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	languages := []domain.Language{}
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return languages, nil
}
