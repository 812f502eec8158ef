package wordset

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestSetRepository(t *testing.T, driver string) (*DBSetRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewDBSetRepository(sqlx.NewDb(db, driver))
	repo.now = func() time.Time { return testNow }
	return repo, mock
}

var pairColumns = []string{
	"id", "set_id", "term_a", "term_b", "ease_factor", "interval_days",
	"next_review", "correct_count", "incorrect_count", "last_practice",
}

func TestDBSetRepository_FindAllSets(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantNames []string
		wantErr   bool
	}{
		{
			name: "returns sets most recently updated first",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "language_a", "language_b", "created_at", "updated_at"}).
					AddRow(2, "Animals", "nl", "en", testNow, testNow).
					AddRow(1, "Food", "nl", "fr", testNow, testNow.Add(-time.Hour))
				mock.ExpectQuery("SELECT \\* FROM word_sets ORDER BY updated_at DESC").WillReturnRows(rows)
			},
			wantNames: []string{"Animals", "Food"},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM word_sets").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSetRepository(t, "mysql")
			tt.setupMock(mock)

			got, err := repo.FindAllSets(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var names []string
			for _, s := range got {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSetRepository_FindSet(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantNil   bool
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "language_a", "language_b", "created_at", "updated_at"}).
					AddRow(7, "Animals", "nl", "en", testNow, testNow)
				mock.ExpectQuery("SELECT \\* FROM word_sets WHERE id = \\?").WithArgs(int64(7)).WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM word_sets WHERE id = \\?").WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantNil: true,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM word_sets WHERE id = \\?").WithArgs(int64(7)).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSetRepository(t, "mysql")
			tt.setupMock(mock)

			got, err := repo.FindSet(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, "Animals", got.Name)
			assert.Equal(t, "en", got.LanguageB)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSetRepository_CreateSet(t *testing.T) {
	t.Run("mysql uses LastInsertId and gives pairs default progress", func(t *testing.T) {
		repo, mock := newTestSetRepository(t, "mysql")
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO word_sets").
			WithArgs("Animals", "nl", "en", testNow, testNow).
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectExec("INSERT INTO word_pairs").
			WithArgs(int64(3), "kat", "cat", 2.5, 0, testNow, 0, 0, nil).
			WillReturnResult(sqlmock.NewResult(10, 1))
		mock.ExpectExec("INSERT INTO word_pairs").
			WithArgs(int64(3), "hond", "dog", 2.5, 0, testNow, 0, 0, nil).
			WillReturnResult(sqlmock.NewResult(11, 1))
		mock.ExpectCommit()

		set := &WordSet{Name: "Animals", LanguageA: "nl", LanguageB: "en"}
		pairs := []WordPair{
			{TermA: "kat", TermB: "cat", EaseFactor: 1.3, CorrectCount: 4},
			{TermA: "hond", TermB: "dog"},
		}
		require.NoError(t, repo.CreateSet(context.Background(), set, pairs))

		assert.Equal(t, int64(3), set.ID)
		assert.Equal(t, testNow, set.CreatedAt)
		assert.Equal(t, int64(10), pairs[0].ID)
		assert.Equal(t, int64(11), pairs[1].ID)
		assert.Equal(t, int64(3), pairs[0].SetID)
		assert.Equal(t, 2.5, pairs[0].EaseFactor)
		assert.Zero(t, pairs[0].CorrectCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("postgres uses RETURNING id", func(t *testing.T) {
		repo, mock := newTestSetRepository(t, "postgres")
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO word_sets .* VALUES \\(\\$1, \\$2, \\$3, \\$4, \\$5\\) RETURNING id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectQuery("INSERT INTO word_pairs .* RETURNING id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		set := &WordSet{Name: "Animals", LanguageA: "nl", LanguageB: "en"}
		pairs := []WordPair{{TermA: "kat", TermB: "cat"}}
		require.NoError(t, repo.CreateSet(context.Background(), set, pairs))

		assert.Equal(t, int64(5), set.ID)
		assert.Equal(t, int64(42), pairs[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pair insert failure rolls back", func(t *testing.T) {
		repo, mock := newTestSetRepository(t, "mysql")
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO word_sets").WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectExec("INSERT INTO word_pairs").WillReturnError(fmt.Errorf("disk full"))
		mock.ExpectRollback()

		err := repo.CreateSet(context.Background(), &WordSet{Name: "x", LanguageA: "nl", LanguageB: "en"},
			[]WordPair{{TermA: "a", TermB: "b"}})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBSetRepository_DeleteSet(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		anyErr    bool
	}{
		{
			name: "deletes pairs then the set",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM word_pairs WHERE set_id = \\?").WithArgs(int64(4)).
					WillReturnResult(sqlmock.NewResult(0, 12))
				mock.ExpectExec("DELETE FROM word_sets WHERE id = \\?").WithArgs(int64(4)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "missing set",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM word_pairs").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("DELETE FROM word_sets").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrNotFound,
		},
		{
			name: "pair delete error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM word_pairs").WillReturnError(fmt.Errorf("locked"))
				mock.ExpectRollback()
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSetRepository(t, "mysql")
			tt.setupMock(mock)

			err := repo.DeleteSet(context.Background(), 4)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSetRepository_FindPairsBySet(t *testing.T) {
	repo, mock := newTestSetRepository(t, "sqlite3")
	last := testNow.Add(-24 * time.Hour)
	rows := sqlmock.NewRows(pairColumns).
		AddRow(1, 2, "kat", "cat", 2.5, 0, testNow, 0, 0, nil).
		AddRow(2, 2, "hond", "dog", 1.9, 6, testNow.AddDate(0, 0, 6), 3, 1, last)
	mock.ExpectQuery("SELECT \\* FROM word_pairs WHERE set_id = \\? ORDER BY id").
		WithArgs(int64(2)).WillReturnRows(rows)

	got, err := repo.FindPairsBySet(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].LastPractice)
	assert.Equal(t, 6, got[1].Interval)
	assert.Equal(t, 4, got[1].Attempts())
	require.NotNil(t, got[1].LastPractice)
	assert.Equal(t, last, *got[1].LastPractice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSetRepository_CreatePair(t *testing.T) {
	repo, mock := newTestSetRepository(t, "mysql")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO word_pairs").
		WithArgs(int64(2), "vis", "fish", 2.5, 0, testNow, 0, 0, nil).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE word_sets SET updated_at = \\? WHERE id = \\?").
		WithArgs(testNow, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pair := &WordPair{SetID: 2, TermA: "vis", TermB: "fish"}
	require.NoError(t, repo.CreatePair(context.Background(), pair))
	assert.Equal(t, int64(9), pair.ID)
	assert.Equal(t, testNow, pair.NextReview)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSetRepository_UpdatePairProgress(t *testing.T) {
	last := testNow
	progress := Progress{
		EaseFactor:     2.36,
		Interval:       15,
		NextReview:     testNow.AddDate(0, 0, 15),
		CorrectCount:   5,
		IncorrectCount: 1,
		LastPractice:   &last,
	}

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "missing pair", affected: 0, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSetRepository(t, "mysql")
			mock.ExpectExec("UPDATE word_pairs SET ease_factor = \\?").
				WithArgs(2.36, 15, testNow.AddDate(0, 0, 15), 5, 1, &last, int64(8)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdatePairProgress(context.Background(), 8, progress)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSetRepository_DeletePair(t *testing.T) {
	t.Run("touches the owning set", func(t *testing.T) {
		repo, mock := newTestSetRepository(t, "mysql")
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT set_id FROM word_pairs WHERE id = \\?").WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"set_id"}).AddRow(2))
		mock.ExpectExec("DELETE FROM word_pairs WHERE id = \\?").WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE word_sets SET updated_at").WithArgs(testNow, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeletePair(context.Background(), 9))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing pair", func(t *testing.T) {
		repo, mock := newTestSetRepository(t, "mysql")
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT set_id FROM word_pairs").WillReturnRows(sqlmock.NewRows([]string{"set_id"}))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.DeletePair(context.Background(), 9), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBSetRepository_ResetSetProgress(t *testing.T) {
	repo, mock := newTestSetRepository(t, "mysql")
	mock.ExpectExec("UPDATE word_pairs SET ease_factor = \\?.* WHERE set_id = \\?").
		WithArgs(2.5, 0, testNow, 0, 0, nil, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 30))

	require.NoError(t, repo.ResetSetProgress(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
