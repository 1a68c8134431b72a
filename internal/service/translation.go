package service

import (
	"context"

	"dictionary/internal/domain"
	"dictionary/internal/repository"

	"go.uber.org/zap"
)

// TranslationService maintains the symmetric translation relation
type TranslationService struct {
	wordRepo        repository.WordRepository
	translationRepo repository.TranslationRepository
	logger          *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(
	wordRepo repository.WordRepository,
	translationRepo repository.TranslationRepository,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		wordRepo:        wordRepo,
		translationRepo: translationRepo,
		logger:          logger,
	}
}

// AddTranslation links two words of different languages.
// Calling it again with the same words, in either order, returns the stored pair.
func (s *TranslationService) AddTranslation(ctx context.Context, wordIDA, wordIDB int64) (*domain.TranslationPair, error) {
	a, err := getWord(ctx, s.wordRepo, wordIDA)
	if err != nil {
		return nil, err
	}
	b, err := getWord(ctx, s.wordRepo, wordIDB)
	if err != nil {
		return nil, err
	}

	pair, err := domain.NewTranslationPair(*a, *b)
	if err != nil {
		return nil, err
	}

	stored, created, err := s.translationRepo.FindOrCreatePair(ctx, pair)
	if err != nil {
		return nil, err
	}

	if created {
		s.logger.Info("Translation added",
			zap.Int64("first_word_id", stored.FirstWordID),
			zap.Int64("second_word_id", stored.SecondWordID),
		)
	}
	return stored, nil
}

// TranslationsOf returns every word linked to wordID, ordered by name
func (s *TranslationService) TranslationsOf(ctx context.Context, wordID int64) ([]domain.Word, error) {
	if _, err := getWord(ctx, s.wordRepo, wordID); err != nil {
		return nil, err
	}

	words, err := s.translationRepo.TranslationsOf(ctx, wordID)
	if err != nil {
		return nil, err
	}

	sortByName(words)
	return words, nil
}

// Lookup returns every word spelled exactly name, across languages,
// each with its translations
func (s *TranslationService) Lookup(ctx context.Context, name string) ([]domain.Entry, error) {
	words, err := s.wordRepo.FindWordsByName(ctx, name)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(words))
	for _, word := range words {
		translations, err := s.translationRepo.TranslationsOf(ctx, word.ID)
		if err != nil {
			return nil, err
		}
		sortByName(translations)
		entries = append(entries, domain.Entry{Word: word, Translations: translations})
	}
	return entries, nil
}
