// Package srs implements the SM-2 style spaced-repetition scheduler used to
// plan word pair reviews.
package srs

import (
	"cmp"
	"math"
	"slices"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	fastAnswer   = 3 * time.Second
	steadyAnswer = 5 * time.Second
)

// Quality grades a single recall event from 0 (blackout) to 5 (perfect).
type Quality int

const (
	QualityIncorrect Quality = 0
	QualityHesitant  Quality = 3
	QualitySteady    Quality = 4
	QualityPerfect   Quality = 5
)

// Result is the scheduling state produced by NextReview.
type Result struct {
	EaseFactor float64
	Interval   int
	NextReview time.Time
}

// NextReview computes the next interval and ease factor after a review of the given quality.
// The ease factor is always derived from the incoming ease, whichever interval branch is taken.
func NextReview(quality Quality, easeFactor float64, interval int, now time.Time) Result {
	var next int
	switch {
	case quality < QualityHesitant:
		next = 1
	case interval <= 0:
		next = 1
	case interval == 1:
		next = 6
	default:
		next = int(math.Round(float64(interval) * easeFactor))
	}

	q := float64(5 - quality)
	ease := math.Max(MinEaseFactor, easeFactor+(0.1-q*(0.08+q*0.02)))

	return Result{
		EaseFactor: ease,
		Interval:   next,
		NextReview: now.AddDate(0, 0, next),
	}
}

// DeriveQuality maps correctness and response time to a Quality.
// A non-positive elapsed duration means the timing is unknown.
func DeriveQuality(isCorrect bool, elapsed time.Duration) Quality {
	if !isCorrect {
		return QualityIncorrect
	}
	if elapsed > 0 && elapsed < fastAnswer {
		return QualityPerfect
	}
	if elapsed > 0 && elapsed < steadyAnswer {
		return QualitySteady
	}
	return QualityHesitant
}

// Reviewable is anything carrying a review date and an ease factor.
type Reviewable interface {
	ReviewDue() time.Time
	Ease() float64
}

// DueForReview returns the indices of items due at now, most overdue first.
// Items overdue by exactly the same amount are ordered by descending ease factor.
func DueForReview[T Reviewable](items []T, now time.Time) []int {
	type candidate struct {
		index   int
		overdue time.Duration
		ease    float64
	}

	var due []candidate
	for i, item := range items {
		if item.ReviewDue().After(now) {
			continue
		}
		due = append(due, candidate{
			index:   i,
			overdue: now.Sub(item.ReviewDue()),
			ease:    item.Ease(),
		})
	}

	slices.SortStableFunc(due, func(a, b candidate) int {
		if a.overdue != b.overdue {
			return cmp.Compare(b.overdue, a.overdue)
		}
		return cmp.Compare(b.ease, a.ease)
	})

	indices := make([]int, len(due))
	for i, c := range due {
		indices[i] = c.index
	}
	return indices
}
