package wordset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("not found")

//go:generate mockgen -source=repository.go -destination=../mocks/wordset/mock_repository.go -package=mock_wordset

// Repository is the persistence store for sets, pairs and the practice history.
type Repository interface {
	SetRepository
	SessionRepository
}

// SessionRepository defines operations for the append-only practice history.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *PracticeSession) error
	FindSessionsBySet(ctx context.Context, setID int64) ([]PracticeSession, error)
	FindAllSessions(ctx context.Context) ([]PracticeSession, error)
}

// DBRepository implements Repository with the sqlx repositories.
type DBRepository struct {
	*DBSetRepository
	*DBSessionRepository
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		DBSetRepository:     NewDBSetRepository(db),
		DBSessionRepository: NewDBSessionRepository(db),
	}
}

// SetRepository defines operations for managing word sets and their pairs.
type SetRepository interface {
	FindAllSets(ctx context.Context) ([]WordSet, error)
	FindSet(ctx context.Context, id int64) (*WordSet, error)
	CreateSet(ctx context.Context, set *WordSet, pairs []WordPair) error
	UpdateSet(ctx context.Context, set *WordSet) error
	DeleteSet(ctx context.Context, id int64) error

	FindPairsBySet(ctx context.Context, setID int64) ([]WordPair, error)
	FindAllPairs(ctx context.Context) ([]WordPair, error)
	CreatePair(ctx context.Context, pair *WordPair) error
	UpdatePairTerms(ctx context.Context, pair *WordPair) error
	UpdatePairProgress(ctx context.Context, id int64, progress Progress) error
	DeletePair(ctx context.Context, id int64) error
	ResetSetProgress(ctx context.Context, setID int64) error
}

// DBSetRepository implements SetRepository on top of sqlx.
// It works with the mysql, sqlite3 and postgres drivers.
type DBSetRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBSetRepository creates a new DBSetRepository.
func NewDBSetRepository(db *sqlx.DB) *DBSetRepository {
	return &DBSetRepository{db: db, now: time.Now}
}

// FindAllSets returns all sets, most recently updated first.
func (r *DBSetRepository) FindAllSets(ctx context.Context) ([]WordSet, error) {
	var sets []WordSet
	if err := r.db.SelectContext(ctx, &sets, "SELECT * FROM word_sets ORDER BY updated_at DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(word_sets) > %w", err)
	}
	return sets, nil
}

// FindSet returns the set with the given id, or nil if not found.
func (r *DBSetRepository) FindSet(ctx context.Context, id int64) (*WordSet, error) {
	var set WordSet
	err := r.db.GetContext(ctx, &set, r.db.Rebind("SELECT * FROM word_sets WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word_set) > %w", err)
	}
	return &set, nil
}

// CreateSet inserts a set together with its initial pairs in a single transaction.
// Pairs get the default scheduling state and are due immediately.
func (r *DBSetRepository) CreateSet(ctx context.Context, set *WordSet, pairs []WordPair) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	now := r.now()
	set.CreatedAt = now
	set.UpdatedAt = now
	setID, err := insertReturningID(ctx, tx,
		"INSERT INTO word_sets (name, language_a, language_b, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		set.Name, set.LanguageA, set.LanguageB, set.CreatedAt, set.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertReturningID(word_set) > %w", err)
	}
	set.ID = setID

	for i := range pairs {
		pairs[i] = NewWordPair(setID, pairs[i].TermA, pairs[i].TermB, now)
		if err := insertPair(ctx, tx, &pairs[i]); err != nil {
			return fmt.Errorf("insertPair() > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// UpdateSet updates the name and languages of a set.
func (r *DBSetRepository) UpdateSet(ctx context.Context, set *WordSet) error {
	set.UpdatedAt = r.now()
	result, err := r.db.ExecContext(ctx,
		r.db.Rebind("UPDATE word_sets SET name = ?, language_a = ?, language_b = ?, updated_at = ? WHERE id = ?"),
		set.Name, set.LanguageA, set.LanguageB, set.UpdatedAt, set.ID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update word_set) > %w", err)
	}
	return requireAffected(result)
}

// DeleteSet removes a set and all of its pairs. Session history is kept.
func (r *DBSetRepository) DeleteSet(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM word_pairs WHERE set_id = ?"), id); err != nil {
		return fmt.Errorf("tx.ExecContext(delete word_pairs) > %w", err)
	}
	result, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM word_sets WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(delete word_set) > %w", err)
	}
	if err := requireAffected(result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// FindPairsBySet returns the pairs of a set in insertion order.
func (r *DBSetRepository) FindPairsBySet(ctx context.Context, setID int64) ([]WordPair, error) {
	var pairs []WordPair
	if err := r.db.SelectContext(ctx, &pairs,
		r.db.Rebind("SELECT * FROM word_pairs WHERE set_id = ? ORDER BY id"), setID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(word_pairs by set) > %w", err)
	}
	return pairs, nil
}

// FindAllPairs returns the pairs of every set.
func (r *DBSetRepository) FindAllPairs(ctx context.Context) ([]WordPair, error) {
	var pairs []WordPair
	if err := r.db.SelectContext(ctx, &pairs, "SELECT * FROM word_pairs ORDER BY set_id, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(word_pairs) > %w", err)
	}
	return pairs, nil
}

// CreatePair adds a pair to an existing set and touches the set.
func (r *DBSetRepository) CreatePair(ctx context.Context, pair *WordPair) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	now := r.now()
	*pair = NewWordPair(pair.SetID, pair.TermA, pair.TermB, now)
	if err := insertPair(ctx, tx, pair); err != nil {
		return fmt.Errorf("insertPair() > %w", err)
	}
	if err := touchSet(ctx, tx, pair.SetID, now); err != nil {
		return fmt.Errorf("touchSet() > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// UpdatePairTerms updates the two terms of a pair and touches its set.
func (r *DBSetRepository) UpdatePairTerms(ctx context.Context, pair *WordPair) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		tx.Rebind("UPDATE word_pairs SET term_a = ?, term_b = ? WHERE id = ?"),
		pair.TermA, pair.TermB, pair.ID)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(update word_pair) > %w", err)
	}
	if err := requireAffected(result); err != nil {
		return err
	}
	if err := touchSet(ctx, tx, pair.SetID, r.now()); err != nil {
		return fmt.Errorf("touchSet() > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// UpdatePairProgress writes the scheduling fields of a pair.
func (r *DBSetRepository) UpdatePairProgress(ctx context.Context, id int64, progress Progress) error {
	result, err := r.db.ExecContext(ctx,
		r.db.Rebind(`UPDATE word_pairs SET ease_factor = ?, interval_days = ?, next_review = ?,
			correct_count = ?, incorrect_count = ?, last_practice = ? WHERE id = ?`),
		progress.EaseFactor, progress.Interval, progress.NextReview,
		progress.CorrectCount, progress.IncorrectCount, progress.LastPractice, id)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update word_pair progress) > %w", err)
	}
	return requireAffected(result)
}

// DeletePair removes a pair and touches the set it belonged to.
func (r *DBSetRepository) DeletePair(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	var setID int64
	err = tx.GetContext(ctx, &setID, tx.Rebind("SELECT set_id FROM word_pairs WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("tx.GetContext(word_pair set_id) > %w", err)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM word_pairs WHERE id = ?"), id); err != nil {
		return fmt.Errorf("tx.ExecContext(delete word_pair) > %w", err)
	}
	if err := touchSet(ctx, tx, setID, r.now()); err != nil {
		return fmt.Errorf("touchSet() > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// ResetSetProgress puts every pair of a set back to its never-practiced state.
func (r *DBSetRepository) ResetSetProgress(ctx context.Context, setID int64) error {
	reset := ResetProgress(r.now())
	_, err := r.db.ExecContext(ctx,
		r.db.Rebind(`UPDATE word_pairs SET ease_factor = ?, interval_days = ?, next_review = ?,
			correct_count = ?, incorrect_count = ?, last_practice = ? WHERE set_id = ?`),
		reset.EaseFactor, reset.Interval, reset.NextReview,
		reset.CorrectCount, reset.IncorrectCount, reset.LastPractice, setID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(reset word_pairs) > %w", err)
	}
	return nil
}

func insertPair(ctx context.Context, tx *sqlx.Tx, pair *WordPair) error {
	id, err := insertReturningID(ctx, tx,
		`INSERT INTO word_pairs (set_id, term_a, term_b, ease_factor, interval_days, next_review,
			correct_count, incorrect_count, last_practice) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pair.SetID, pair.TermA, pair.TermB, pair.EaseFactor, pair.Interval, pair.NextReview,
		pair.CorrectCount, pair.IncorrectCount, pair.LastPractice)
	if err != nil {
		return fmt.Errorf("insertReturningID(word_pair) > %w", err)
	}
	pair.ID = id
	return nil
}

func touchSet(ctx context.Context, tx *sqlx.Tx, setID int64, now time.Time) error {
	if _, err := tx.ExecContext(ctx, tx.Rebind("UPDATE word_sets SET updated_at = ? WHERE id = ?"), now, setID); err != nil {
		return fmt.Errorf("tx.ExecContext(touch word_set) > %w", err)
	}
	return nil
}

// insertReturningID runs an INSERT and returns the generated id.
// lib/pq has no LastInsertId, so postgres uses RETURNING instead.
func insertReturningID(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (int64, error) {
	if tx.DriverName() == "postgres" {
		var id int64
		if err := tx.GetContext(ctx, &id, tx.Rebind(query+" RETURNING id"), args...); err != nil {
			return 0, fmt.Errorf("tx.GetContext(returning id) > %w", err)
		}
		return id, nil
	}

	result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("tx.ExecContext() > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	return id, nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
