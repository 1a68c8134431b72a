package service

import (
	"context"
	"strings"

	"dictionary/internal/domain"
	"dictionary/internal/repository"

	"go.uber.org/zap"
)

// LanguageService handles the language registry
type LanguageService struct {
	languageRepo repository.LanguageRepository
	logger       *zap.Logger
}

// NewLanguageService creates a new language service
func NewLanguageService(languageRepo repository.LanguageRepository, logger *zap.Logger) *LanguageService {
	return &LanguageService{
		languageRepo: languageRepo,
		logger:       logger,
	}
}

// CreateLanguage registers a language. Names are unique by exact match.
func (s *LanguageService) CreateLanguage(ctx context.Context, name string) (*domain.Language, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("language name is required")
	}

	lang, err := s.languageRepo.CreateLanguage(ctx, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Language created",
		zap.Int64("language_id", lang.ID),
		zap.String("name", lang.Name),
	)
	return lang, nil
}

// GetLanguage returns a language or a NotFoundError
func (s *LanguageService) GetLanguage(ctx context.Context, id int64) (*domain.Language, error) {
	lang, err := s.languageRepo.GetLanguage(ctx, id)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, domain.NewNotFoundError("language", id)
	}
	return lang, nil
}

// ListLanguages returns all languages in creation order
func (s *LanguageService) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return s.languageRepo.ListLanguages(ctx)
}
