package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"dictionary/internal/domain"
)

// TranslationRepo implements repository.TranslationRepository
type TranslationRepo struct {
	db *sql.DB
}

// NewTranslationRepo creates a new translation pair repository
func NewTranslationRepo(db *sql.DB) *TranslationRepo {
	return &TranslationRepo{db: db}
}

// FindOrCreatePair returns the stored pair, inserting it first if needed
func (r *TranslationRepo) FindOrCreatePair(ctx context.Context, pair domain.TranslationPair) (*domain.TranslationPair, bool, error) {
	if !pair.IsCanonical() {
		return nil, false, domain.NewValidationError("first_id must be less than second_id")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(tx)

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM translation_pairs WHERE first_word_id = ? AND second_word_id = ?)`,
		pair.FirstWordID, pair.SecondWordID,
	).Scan(&exists)
	if err != nil {
		return nil, false, err
	}

	created := false
	if !exists {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO translation_pairs (first_word_id, second_word_id) VALUES (?, ?)`,
			pair.FirstWordID, pair.SecondWordID,
		)
		if err != nil {
			return nil, false, constraintError(err, "translation pair already exists")
		}
		created = true
	}

	if err := tx.Commit(); err != nil {
		return nil, false, constraintError(err, "translation pair already exists")
	}
	return &pair, created, nil
}

// TranslationsOf returns the words paired with wordID on either side
func (r *TranslationRepo) TranslationsOf(ctx context.Context, wordID int64) ([]domain.Word, error) {
	query := `
		SELECT w.id AS id, w.name AS name, w.language_id AS language_id
		FROM translation_pairs p
		JOIN words w ON w.id = p.second_word_id
		WHERE p.first_word_id = ?
		UNION
		SELECT w.id AS id, w.name AS name, w.language_id AS language_id
		FROM translation_pairs p
		JOIN words w ON w.id = p.first_word_id
		WHERE p.second_word_id = ?
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, wordID, wordID)
	if err != nil {
		return nil, err
	}
	return scanWords(rows)
}
