package testutil

import (
	"context"

	"dictionary/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLanguageRepository is a mock for LanguageRepository
type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) CreateLanguage(ctx context.Context, name string) (*domain.Language, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}

func (m *MockLanguageRepository) GetLanguage(ctx context.Context, id int64) (*domain.Language, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}

func (m *MockLanguageRepository) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) CreateWord(ctx context.Context, name string, languageID int64) (*domain.Word, error) {
	args := m.Called(ctx, name, languageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListWordsByLanguage(ctx context.Context, languageID int64) ([]domain.Word, error) {
	args := m.Called(ctx, languageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindWordsByName(ctx context.Context, name string) ([]domain.Word, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) SearchWords(ctx context.Context, pattern string) ([]domain.Word, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

// MockTranslationRepository is a mock for TranslationRepository
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) FindOrCreatePair(ctx context.Context, pair domain.TranslationPair) (*domain.TranslationPair, bool, error) {
	args := m.Called(ctx, pair)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.TranslationPair), args.Bool(1), args.Error(2)
}

func (m *MockTranslationRepository) TranslationsOf(ctx context.Context, wordID int64) ([]domain.Word, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}
