package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"dictionary/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pairExistsQuery = regexp.QuoteMeta(`SELECT EXISTS ( SELECT 1 FROM translation_pairs WHERE first_word_id = $1 AND second_word_id = $2 )`)
	insertPairQuery = regexp.QuoteMeta(`INSERT INTO translation_pairs (first_word_id, second_word_id) VALUES ($1, $2)`)
)

func TestTranslationRepo_FindOrCreatePair(t *testing.T) {
	pair := domain.TranslationPair{FirstWordID: 1, SecondWordID: 2}

	tests := []struct {
		name            string
		setup           func(mock sqlmock.Sqlmock)
		expectedCreated bool
		expectedInvalid bool
	}{
		{
			name: "new pair",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(pairExistsQuery).WithArgs(int64(1), int64(2)).WillReturnRows(existsRow(false))
				mock.ExpectExec(insertPairQuery).
					WithArgs(int64(1), int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedCreated: true,
		},
		{
			name: "existing pair",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(pairExistsQuery).WithArgs(int64(1), int64(2)).WillReturnRows(existsRow(true))
				mock.ExpectCommit()
			},
			expectedCreated: false,
		},
		{
			name: "primary key rejects racing insert",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(pairExistsQuery).WithArgs(int64(1), int64(2)).WillReturnRows(existsRow(false))
				mock.ExpectExec(insertPairQuery).
					WithArgs(int64(1), int64(2)).
					WillReturnError(&pq.Error{Code: uniqueViolation})
				mock.ExpectRollback()
			},
			expectedInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)
			repo := NewTranslationRepo(db)

			stored, created, err := repo.FindOrCreatePair(context.Background(), pair)

			if tt.expectedInvalid {
				assert.True(t, errors.Is(err, domain.ErrValidation))
				assert.Nil(t, stored)
			} else {
				require.NoError(t, err)
				assert.Equal(t, &pair, stored)
				assert.Equal(t, tt.expectedCreated, created)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTranslationRepo_FindOrCreatePair_RejectsNonCanonical(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranslationRepo(db)

	for _, pair := range []domain.TranslationPair{
		{FirstWordID: 2, SecondWordID: 1},
		{FirstWordID: 3, SecondWordID: 3},
	} {
		stored, created, err := repo.FindOrCreatePair(context.Background(), pair)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.Nil(t, stored)
		assert.False(t, created)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslationRepo_TranslationsOf(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranslationRepo(db)

	rows := sqlmock.NewRows(wordColumns).
		AddRow(2, "chat", 2).
		AddRow(3, "chaton", 2)
	mock.ExpectQuery("JOIN words w ON w.id = p.second_word_id WHERE p.first_word_id = \\$1 UNION").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	words, err := repo.TranslationsOf(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Word{
		{ID: 2, Name: "chat", LanguageID: 2},
		{ID: 3, Name: "chaton", LanguageID: 2},
	}, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}
