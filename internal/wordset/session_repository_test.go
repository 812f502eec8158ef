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

func TestDBSessionRepository_CreateSession(t *testing.T) {
	completed := testNow.Add(5 * time.Minute)
	newSession := func() *PracticeSession {
		return &PracticeSession{
			UUID:             "4b8e2f3c-93a1-4c55-9d1f-0c1d2e3f4a5b",
			SetID:            2,
			Mode:             ModeTyping,
			StartedAt:        testNow,
			CompletedAt:      &completed,
			TotalQuestions:   2,
			CorrectAnswers:   1,
			IncorrectAnswers: 1,
			ReviewedPairs: []ReviewedPair{
				{PairID: 10, TermA: "kat", TermB: "cat", UserAnswer: "cat", Correct: true, TimeSpentMs: 1200},
				{PairID: 11, TermA: "hond", TermB: "dog", UserAnswer: "dig", Correct: false, TimeSpentMs: 4000},
			},
		}
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts the session and its reviewed pairs",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO practice_sessions").
					WithArgs("4b8e2f3c-93a1-4c55-9d1f-0c1d2e3f4a5b", int64(2), sqlmock.AnyArg(), testNow, &completed, 2, 1, 1).
					WillReturnResult(sqlmock.NewResult(20, 1))
				mock.ExpectExec("INSERT INTO reviewed_pairs").
					WithArgs(int64(20), int64(10), "kat", "cat", "cat", true, int64(1200)).
					WillReturnResult(sqlmock.NewResult(100, 1))
				mock.ExpectExec("INSERT INTO reviewed_pairs").
					WithArgs(int64(20), int64(11), "hond", "dog", "dig", false, int64(4000)).
					WillReturnResult(sqlmock.NewResult(101, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "reviewed pair failure rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO practice_sessions").WillReturnResult(sqlmock.NewResult(20, 1))
				mock.ExpectExec("INSERT INTO reviewed_pairs").WillReturnError(fmt.Errorf("constraint"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBSessionRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			session := newSession()
			err = repo.CreateSession(context.Background(), session)
			if tt.wantErr {
				assert.Error(t, err)
				assert.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(20), session.ID)
			assert.Equal(t, int64(20), session.ReviewedPairs[1].SessionID)
			assert.Equal(t, int64(101), session.ReviewedPairs[1].ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSessionRepository_FindSessionsBySet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewDBSessionRepository(sqlx.NewDb(db, "mysql"))

	sessionColumns := []string{
		"id", "uuid", "set_id", "mode", "started_at", "completed_at",
		"total_questions", "correct_answers", "incorrect_answers",
	}
	mock.ExpectQuery("SELECT \\* FROM practice_sessions WHERE set_id = \\? ORDER BY started_at DESC").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(21, "b", 2, "flashcard", testNow, testNow, 3, 3, 0).
			AddRow(20, "a", 2, "typing", testNow.Add(-time.Hour), testNow, 2, 1, 1))
	mock.ExpectQuery("SELECT \\* FROM reviewed_pairs WHERE session_id IN \\(\\?, \\?\\) ORDER BY id").
		WithArgs(int64(21), int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "session_id", "pair_id", "term_a", "term_b", "user_answer", "correct", "time_spent_ms",
		}).
			AddRow(100, 20, 10, "kat", "cat", "cat", true, 1200).
			AddRow(101, 20, 11, "hond", "dog", "dig", false, 4000))

	got, err := repo.FindSessionsBySet(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "b", got[0].UUID)
	assert.Equal(t, ModeFlashcard, got[0].Mode)
	assert.Empty(t, got[0].ReviewedPairs)

	assert.Equal(t, ModeTyping, got[1].Mode)
	require.Len(t, got[1].ReviewedPairs, 2)
	assert.True(t, got[1].ReviewedPairs[0].Correct)
	assert.Equal(t, "dig", got[1].ReviewedPairs[1].UserAnswer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSessionRepository_FindAllSessions_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewDBSessionRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectQuery("SELECT \\* FROM practice_sessions ORDER BY started_at").
		WillReturnError(fmt.Errorf("connection refused"))

	_, err = repo.FindAllSessions(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSessionRepository_FindAllSessions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewDBSessionRepository(sqlx.NewDb(db, "postgres"))

	mock.ExpectQuery("SELECT \\* FROM practice_sessions ORDER BY started_at, id").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "uuid", "set_id", "mode", "started_at", "completed_at",
			"total_questions", "correct_answers", "incorrect_answers",
		}).
			AddRow(20, "a", 2, "typing", testNow.Add(-time.Hour), testNow, 1, 1, 0))
	mock.ExpectQuery("SELECT \\* FROM reviewed_pairs WHERE session_id IN \\(\\$1\\) ORDER BY id").
		WithArgs(int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "session_id", "pair_id", "term_a", "term_b", "user_answer", "correct", "time_spent_ms",
		}).
			AddRow(100, 20, 10, "kat", "cat", "cat", true, 1200))

	got, err := repo.FindAllSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].ReviewedPairs, 1)
	assert.Equal(t, int64(10), got[0].ReviewedPairs[0].PairID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
