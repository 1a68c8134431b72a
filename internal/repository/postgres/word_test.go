package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"dictionary/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	languageIDExistsQuery = regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM languages WHERE id = $1)`)
	wordExistsQuery       = regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM words WHERE language_id = $1 AND name = $2)`)
	insertWordQuery       = regexp.QuoteMeta(`INSERT INTO words (name, language_id) VALUES ($1, $2) RETURNING id`)
	wordColumns           = []string{"id", "name", "language_id"}
)

func existsRow(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}

func TestWordRepo_CreateWord(t *testing.T) {
	tests := []struct {
		name             string
		setup            func(mock sqlmock.Sqlmock)
		expectedInvalid  bool
		expectedNotFound bool
	}{
		{
			name: "new word",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(languageIDExistsQuery).WithArgs(int64(1)).WillReturnRows(existsRow(true))
				mock.ExpectQuery(wordExistsQuery).WithArgs(int64(1), "cat").WillReturnRows(existsRow(false))
				mock.ExpectQuery(insertWordQuery).
					WithArgs("cat", int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
				mock.ExpectCommit()
			},
		},
		{
			name: "unknown language",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(languageIDExistsQuery).WithArgs(int64(1)).WillReturnRows(existsRow(false))
				mock.ExpectRollback()
			},
			expectedNotFound: true,
		},
		{
			name: "duplicate in language",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(languageIDExistsQuery).WithArgs(int64(1)).WillReturnRows(existsRow(true))
				mock.ExpectQuery(wordExistsQuery).WithArgs(int64(1), "cat").WillReturnRows(existsRow(true))
				mock.ExpectRollback()
			},
			expectedInvalid: true,
		},
		{
			name: "unique index rejects racing insert",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(languageIDExistsQuery).WithArgs(int64(1)).WillReturnRows(existsRow(true))
				mock.ExpectQuery(wordExistsQuery).WithArgs(int64(1), "cat").WillReturnRows(existsRow(false))
				mock.ExpectQuery(insertWordQuery).
					WithArgs("cat", int64(1)).
					WillReturnError(&pq.Error{Code: uniqueViolation})
				mock.ExpectRollback()
			},
			expectedInvalid: true,
		},
		{
			name: "language removed concurrently",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(languageIDExistsQuery).WithArgs(int64(1)).WillReturnRows(existsRow(true))
				mock.ExpectQuery(wordExistsQuery).WithArgs(int64(1), "cat").WillReturnRows(existsRow(false))
				mock.ExpectQuery(insertWordQuery).
					WithArgs("cat", int64(1)).
					WillReturnError(&pq.Error{Code: foreignKeyViolation})
				mock.ExpectRollback()
			},
			expectedNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)
			repo := NewWordRepo(db)

			word, err := repo.CreateWord(context.Background(), "cat", 1)

			switch {
			case tt.expectedInvalid:
				assert.Nil(t, word)
				assert.True(t, errors.Is(err, domain.ErrValidation))
			case tt.expectedNotFound:
				assert.Nil(t, word)
				assert.True(t, errors.Is(err, domain.ErrNotFound))
			default:
				require.NoError(t, err)
				assert.Equal(t, &domain.Word{ID: 10, Name: "cat", LanguageID: 1}, word)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_GetWord(t *testing.T) {
	tests := []struct {
		name          string
		rows          *sqlmock.Rows
		expected      *domain.Word
		expectedError bool
	}{
		{
			name:     "word found",
			rows:     sqlmock.NewRows(wordColumns).AddRow(5, "chat", 2),
			expected: &domain.Word{ID: 5, Name: "chat", LanguageID: 2},
		},
		{
			name:     "no word",
			rows:     sqlmock.NewRows(wordColumns),
			expected: nil,
		},
		{
			name:          "scan error",
			rows:          sqlmock.NewRows(wordColumns).AddRow("invalid", "chat", 2),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, language_id FROM words WHERE id = $1`)).
				WithArgs(int64(5)).
				WillReturnRows(tt.rows)

			word, err := repo.GetWord(context.Background(), 5)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, word)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, word)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_SearchWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows(wordColumns).
		AddRow(1, "cat", 1).
		AddRow(2, "chat", 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, language_id FROM words WHERE name LIKE $1 ORDER BY id`)).
		WithArgs("c%t").
		WillReturnRows(rows)

	words, err := repo.SearchWords(context.Background(), "c%t")

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "cat", words[0].Name)
	assert.Equal(t, "chat", words[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_SearchWords_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("WHERE name LIKE").
		WithArgs("%").
		WillReturnError(fmt.Errorf("query error"))

	words, err := repo.SearchWords(context.Background(), "%")

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_ListWordsByLanguage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, language_id FROM words WHERE language_id = $1 ORDER BY id`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(wordColumns))

	words, err := repo.ListWordsByLanguage(context.Background(), 9)

	assert.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_FindWordsByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows(wordColumns).
		AddRow(3, "pain", 1).
		AddRow(8, "pain", 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, language_id FROM words WHERE name = $1 ORDER BY id`)).
		WithArgs("pain").
		WillReturnRows(rows)

	words, err := repo.FindWordsByName(context.Background(), "pain")

	assert.NoError(t, err)
	assert.Equal(t, []domain.Word{
		{ID: 3, Name: "pain", LanguageID: 1},
		{ID: 8, Name: "pain", LanguageID: 2},
	}, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}
