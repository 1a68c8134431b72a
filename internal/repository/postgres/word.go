package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dictionary/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// CreateWord inserts a word under an existing language.
// Names are unique per language, not globally.
func (r *WordRepo) CreateWord(ctx context.Context, name string, languageID int64) (*domain.Word, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(tx)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM languages WHERE id = $1)`
	if err := tx.QueryRowContext(ctx, query, languageID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("language", languageID)
	}

	query = `SELECT EXISTS (SELECT 1 FROM words WHERE language_id = $1 AND name = $2)`
	if err := tx.QueryRowContext(ctx, query, languageID, name).Scan(&exists); err != nil {
		return nil, err
	}
	duplicate := fmt.Sprintf("word %q already exists in this language", name)
	if exists {
		return nil, &domain.ValidationError{Reason: duplicate}
	}

	word := domain.Word{Name: name, LanguageID: languageID}
	query = `INSERT INTO words (name, language_id) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, name, languageID).Scan(&word.ID); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("language", languageID)
		}
		return nil, constraintError(err, duplicate)
	}

	if err := tx.Commit(); err != nil {
		return nil, constraintError(err, duplicate)
	}
	return &word, nil
}

// GetWord returns a word by id, or nil if it does not exist
func (r *WordRepo) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	var w domain.Word
	query := `SELECT id, name, language_id FROM words WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.LanguageID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWordsByLanguage returns the words owned by a language
func (r *WordRepo) ListWordsByLanguage(ctx context.Context, languageID int64) ([]domain.Word, error) {
	query := `
		SELECT id, name, language_id
		FROM words
		WHERE language_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, languageID)
	if err != nil {
		return nil, err
	}
	return scanWords(rows)
}

// FindWordsByName returns every word spelled exactly name, across languages
func (r *WordRepo) FindWordsByName(ctx context.Context, name string) ([]domain.Word, error) {
	query := `
		SELECT id, name, language_id
		FROM words
		WHERE name = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	return scanWords(rows)
}

// SearchWords returns words whose name matches a LIKE pattern
func (r *WordRepo) SearchWords(ctx context.Context, pattern string) ([]domain.Word, error) {
	query := `
		SELECT id, name, language_id
		FROM words
		WHERE name LIKE $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	return scanWords(rows)
}
