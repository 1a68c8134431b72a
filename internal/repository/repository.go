package repository

import (
	"context"

	"dictionary/internal/domain"
)

// LanguageRepository defines language data operations.
// Getters return nil without error when the row does not exist.
type LanguageRepository interface {
	CreateLanguage(ctx context.Context, name string) (*domain.Language, error)
	GetLanguage(ctx context.Context, id int64) (*domain.Language, error)
	ListLanguages(ctx context.Context) ([]domain.Language, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	CreateWord(ctx context.Context, name string, languageID int64) (*domain.Word, error)
	GetWord(ctx context.Context, id int64) (*domain.Word, error)
	ListWordsByLanguage(ctx context.Context, languageID int64) ([]domain.Word, error)
	FindWordsByName(ctx context.Context, name string) ([]domain.Word, error)
	// SearchWords matches names with SQL LIKE; the pattern is used verbatim
	SearchWords(ctx context.Context, pattern string) ([]domain.Word, error)
}

// TranslationRepository defines translation pair data operations
type TranslationRepository interface {
	// FindOrCreatePair stores a canonical pair unless it already exists.
	// The boolean reports whether a new row was inserted.
	FindOrCreatePair(ctx context.Context, pair domain.TranslationPair) (*domain.TranslationPair, bool, error)
	// TranslationsOf returns every word paired with wordID, from either side
	TranslationsOf(ctx context.Context, wordID int64) ([]domain.Word, error)
}
