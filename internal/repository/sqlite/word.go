package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"dictionary/internal/domain"
)

const wordColumns = `id, name, language_id`

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
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM languages WHERE id = ?)`, languageID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("language", languageID)
	}

	duplicate := fmt.Sprintf("word %q already exists in this language", name)

	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM words WHERE language_id = ? AND name = ?)`,
		languageID, name,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.ValidationError{Reason: duplicate}
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO words (name, language_id) VALUES (?, ?)`, name, languageID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("language", languageID)
		}
		return nil, constraintError(err, duplicate)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, constraintError(err, duplicate)
	}
	return &domain.Word{ID: id, Name: name, LanguageID: languageID}, nil
}

// GetWord returns a word by id, or nil if it does not exist
func (r *WordRepo) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	var w domain.Word
	query := `SELECT ` + wordColumns + ` FROM words WHERE id = ?`
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
	return r.queryWords(ctx, `SELECT `+wordColumns+` FROM words WHERE language_id = ? ORDER BY id`, languageID)
}

// FindWordsByName returns every word spelled exactly name, across languages
func (r *WordRepo) FindWordsByName(ctx context.Context, name string) ([]domain.Word, error) {
	return r.queryWords(ctx, `SELECT `+wordColumns+` FROM words WHERE name = ? ORDER BY id`, name)
}

// SearchWords uses SQLite LIKE, which folds ASCII case
func (r *WordRepo) SearchWords(ctx context.Context, pattern string) ([]domain.Word, error) {
	return r.queryWords(ctx, `SELECT `+wordColumns+` FROM words WHERE name LIKE ? ORDER BY id`, pattern)
}

func (r *WordRepo) queryWords(ctx context.Context, query string, args ...any) ([]domain.Word, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanWords(rows)
}
