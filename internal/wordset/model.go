// Package wordset provides the word set domain models and repository interfaces.
package wordset

import (
	"time"

	"github.com/reclamegraag/examiner/internal/srs"
)

// PracticeMode names the quiz strategy used for a practice session.
type PracticeMode string

const (
	ModeFlashcard      PracticeMode = "flashcard"
	ModeTyping         PracticeMode = "typing"
	ModeMultipleChoice PracticeMode = "multiple-choice"
	ModeQuick          PracticeMode = "quick"
)

// PracticeModes lists every supported mode in display order.
var PracticeModes = []PracticeMode{ModeFlashcard, ModeTyping, ModeMultipleChoice, ModeQuick}

// WordSet is a named collection of word pairs between two languages.
type WordSet struct {
	ID        int64     `db:"id" yaml:"-"`
	Name      string    `db:"name" yaml:"name" validate:"required"`
	LanguageA string    `db:"language_a" yaml:"language_a" validate:"required"`
	LanguageB string    `db:"language_b" yaml:"language_b" validate:"required"`
	CreatedAt time.Time `db:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `db:"updated_at" yaml:"updated_at"`
}

// WordPair is a term in language A with its counterpart in language B and
// the scheduling state of the pair.
type WordPair struct {
	ID             int64      `db:"id" yaml:"-"`
	SetID          int64      `db:"set_id" yaml:"-"`
	TermA          string     `db:"term_a" yaml:"term_a" validate:"required"`
	TermB          string     `db:"term_b" yaml:"term_b" validate:"required"`
	EaseFactor     float64    `db:"ease_factor" yaml:"ease_factor" validate:"gte=1.3"`
	Interval       int        `db:"interval_days" yaml:"interval_days" validate:"gte=0"`
	NextReview     time.Time  `db:"next_review" yaml:"next_review"`
	CorrectCount   int        `db:"correct_count" yaml:"correct_count" validate:"gte=0"`
	IncorrectCount int        `db:"incorrect_count" yaml:"incorrect_count" validate:"gte=0"`
	LastPractice   *time.Time `db:"last_practice" yaml:"last_practice,omitempty"`
}

// NewWordPair returns a pair with default scheduling state, due immediately.
func NewWordPair(setID int64, termA, termB string, now time.Time) WordPair {
	return WordPair{
		SetID:      setID,
		TermA:      termA,
		TermB:      termB,
		EaseFactor: srs.DefaultEaseFactor,
		NextReview: now,
	}
}

// ReviewDue implements srs.Reviewable.
func (p WordPair) ReviewDue() time.Time {
	return p.NextReview
}

// Ease implements srs.Reviewable.
func (p WordPair) Ease() float64 {
	return p.EaseFactor
}

// Attempts returns the number of recorded answers for the pair.
func (p WordPair) Attempts() int {
	return p.CorrectCount + p.IncorrectCount
}

// Progress is the subset of a word pair written back after a review.
type Progress struct {
	EaseFactor     float64
	Interval       int
	NextReview     time.Time
	CorrectCount   int
	IncorrectCount int
	LastPractice   *time.Time
}

// Progress returns the current scheduling fields of the pair.
func (p WordPair) Progress() Progress {
	return Progress{
		EaseFactor:     p.EaseFactor,
		Interval:       p.Interval,
		NextReview:     p.NextReview,
		CorrectCount:   p.CorrectCount,
		IncorrectCount: p.IncorrectCount,
		LastPractice:   p.LastPractice,
	}
}

// ApplyProgress overwrites the scheduling fields of the pair.
func (p *WordPair) ApplyProgress(progress Progress) {
	p.EaseFactor = progress.EaseFactor
	p.Interval = progress.Interval
	p.NextReview = progress.NextReview
	p.CorrectCount = progress.CorrectCount
	p.IncorrectCount = progress.IncorrectCount
	p.LastPractice = progress.LastPractice
}

// ResetProgress returns the scheduling state of a pair that was never practiced.
func ResetProgress(now time.Time) Progress {
	return Progress{
		EaseFactor: srs.DefaultEaseFactor,
		NextReview: now,
	}
}

// ReviewedPair is a snapshot of one answered question within a session.
type ReviewedPair struct {
	ID          int64  `db:"id" yaml:"-"`
	SessionID   int64  `db:"session_id" yaml:"-"`
	PairID      int64  `db:"pair_id" yaml:"pair_id"`
	TermA       string `db:"term_a" yaml:"term_a"`
	TermB       string `db:"term_b" yaml:"term_b"`
	UserAnswer  string `db:"user_answer" yaml:"user_answer,omitempty"`
	Correct     bool   `db:"correct" yaml:"correct"`
	TimeSpentMs int64  `db:"time_spent_ms" yaml:"time_spent_ms,omitempty"`
}

// PracticeSession is the record of one completed practice run.
type PracticeSession struct {
	ID               int64          `db:"id" yaml:"-"`
	UUID             string         `db:"uuid" yaml:"uuid"`
	SetID            int64          `db:"set_id" yaml:"-"`
	Mode             PracticeMode   `db:"mode" yaml:"mode"`
	StartedAt        time.Time      `db:"started_at" yaml:"started_at"`
	CompletedAt      *time.Time     `db:"completed_at" yaml:"completed_at,omitempty"`
	TotalQuestions   int            `db:"total_questions" yaml:"total_questions"`
	CorrectAnswers   int            `db:"correct_answers" yaml:"correct_answers"`
	IncorrectAnswers int            `db:"incorrect_answers" yaml:"incorrect_answers"`
	ReviewedPairs    []ReviewedPair `db:"-" yaml:"reviewed_pairs,omitempty"`
}
