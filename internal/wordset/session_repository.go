package wordset

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBSessionRepository implements SessionRepository on top of sqlx.
type DBSessionRepository struct {
	db *sqlx.DB
}

// NewDBSessionRepository creates a new DBSessionRepository.
func NewDBSessionRepository(db *sqlx.DB) *DBSessionRepository {
	return &DBSessionRepository{db: db}
}

// CreateSession inserts a session and its reviewed pairs in a single transaction.
func (r *DBSessionRepository) CreateSession(ctx context.Context, session *PracticeSession) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	sessionID, err := insertReturningID(ctx, tx,
		`INSERT INTO practice_sessions (uuid, set_id, mode, started_at, completed_at,
			total_questions, correct_answers, incorrect_answers) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.UUID, session.SetID, session.Mode, session.StartedAt, session.CompletedAt,
		session.TotalQuestions, session.CorrectAnswers, session.IncorrectAnswers)
	if err != nil {
		return fmt.Errorf("insertReturningID(practice_session) > %w", err)
	}
	session.ID = sessionID

	for i := range session.ReviewedPairs {
		reviewed := &session.ReviewedPairs[i]
		reviewed.SessionID = sessionID
		id, err := insertReturningID(ctx, tx,
			`INSERT INTO reviewed_pairs (session_id, pair_id, term_a, term_b, user_answer, correct, time_spent_ms)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sessionID, reviewed.PairID, reviewed.TermA, reviewed.TermB,
			reviewed.UserAnswer, reviewed.Correct, reviewed.TimeSpentMs)
		if err != nil {
			return fmt.Errorf("insertReturningID(reviewed_pair) > %w", err)
		}
		reviewed.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// FindSessionsBySet returns the sessions of a set, newest first, with their reviewed pairs.
func (r *DBSessionRepository) FindSessionsBySet(ctx context.Context, setID int64) ([]PracticeSession, error) {
	var sessions []PracticeSession
	if err := r.db.SelectContext(ctx, &sessions,
		r.db.Rebind("SELECT * FROM practice_sessions WHERE set_id = ? ORDER BY started_at DESC, id DESC"), setID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(practice_sessions by set) > %w", err)
	}
	if err := r.loadReviewedPairs(ctx, sessions); err != nil {
		return nil, fmt.Errorf("loadReviewedPairs() > %w", err)
	}
	return sessions, nil
}

// FindAllSessions returns every session in chronological order with their reviewed pairs.
func (r *DBSessionRepository) FindAllSessions(ctx context.Context) ([]PracticeSession, error) {
	var sessions []PracticeSession
	if err := r.db.SelectContext(ctx, &sessions, "SELECT * FROM practice_sessions ORDER BY started_at, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(practice_sessions) > %w", err)
	}
	if err := r.loadReviewedPairs(ctx, sessions); err != nil {
		return nil, fmt.Errorf("loadReviewedPairs() > %w", err)
	}
	return sessions, nil
}

func (r *DBSessionRepository) loadReviewedPairs(ctx context.Context, sessions []PracticeSession) error {
	if len(sessions) == 0 {
		return nil
	}

	sessionIDs := make([]int64, len(sessions))
	sessionMap := make(map[int64]*PracticeSession, len(sessions))
	for i := range sessions {
		sessionIDs[i] = sessions[i].ID
		sessionMap[sessions[i].ID] = &sessions[i]
	}

	query, args, err := sqlx.In("SELECT * FROM reviewed_pairs WHERE session_id IN (?) ORDER BY id", sessionIDs)
	if err != nil {
		return fmt.Errorf("sqlx.In(reviewed_pairs) > %w", err)
	}
	var reviewed []ReviewedPair
	if err := r.db.SelectContext(ctx, &reviewed, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.SelectContext(reviewed_pairs) > %w", err)
	}
	for _, rp := range reviewed {
		s := sessionMap[rp.SessionID]
		s.ReviewedPairs = append(s.ReviewedPairs, rp)
	}
	return nil
}
