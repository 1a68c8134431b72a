package service

import (
	"context"
	"strings"

	"dictionary/internal/domain"
	"dictionary/internal/repository"

	"go.uber.org/zap"
)

// WordService handles the word registry and search
type WordService struct {
	wordRepo     repository.WordRepository
	languageRepo repository.LanguageRepository
	logger       *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(
	wordRepo repository.WordRepository,
	languageRepo repository.LanguageRepository,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		wordRepo:     wordRepo,
		languageRepo: languageRepo,
		logger:       logger,
	}
}

// CreateWord adds a word under a language.
// The same name may exist under other languages but not twice in one.
func (s *WordService) CreateWord(ctx context.Context, name string, languageID int64) (*domain.Word, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("word name is required")
	}

	word, err := s.wordRepo.CreateWord(ctx, name, languageID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Word created",
		zap.Int64("word_id", word.ID),
		zap.Int64("language_id", word.LanguageID),
		zap.String("name", word.Name),
	)
	return word, nil
}

// GetWord returns a word or a NotFoundError
func (s *WordService) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	return getWord(ctx, s.wordRepo, id)
}

// ListWords returns the words of one language ordered by name
func (s *WordService) ListWords(ctx context.Context, languageID int64) ([]domain.Word, error) {
	lang, err := s.languageRepo.GetLanguage(ctx, languageID)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, domain.NewNotFoundError("language", languageID)
	}

	words, err := s.wordRepo.ListWordsByLanguage(ctx, languageID)
	if err != nil {
		return nil, err
	}

	sortByName(words)
	return words, nil
}

// SearchWords returns words matching a LIKE pattern ordered by name.
// The pattern is not escaped: % and _ act as wildcards.
func (s *WordService) SearchWords(ctx context.Context, pattern string) ([]domain.Word, error) {
	words, err := s.wordRepo.SearchWords(ctx, pattern)
	if err != nil {
		return nil, err
	}

	sortByName(words)
	return words, nil
}

func getWord(ctx context.Context, wordRepo repository.WordRepository, id int64) (*domain.Word, error) {
	word, err := wordRepo.GetWord(ctx, id)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, domain.NewNotFoundError("word", id)
	}
	return word, nil
}
