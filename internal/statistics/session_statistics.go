// Package statistics summarizes practice history.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/reclamegraag/examiner/internal/wordset"
)

// SessionStatistics holds statistics for a time period
type SessionStatistics struct {
	Period        string // "2025-01"
	SessionsCount int
	Questions     int
	Correct       int
	Incorrect     int
	NewPairs      int // Pairs answered correctly for the first time
	ReviewedPairs int // Unique pairs answered in the period
}

// Accuracy returns the share of correct answers as a whole percentage.
func (s SessionStatistics) Accuracy() int {
	return percentage(s.Correct, s.Questions)
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	SessionsCount int
	Questions     int
	Correct       int
	Incorrect     int
	NewPairs      int
	ReviewedPairs int // Unique pairs answered (deduplicated across periods)
}

// Accuracy returns the share of correct answers as a whole percentage.
func (a AggregateStatistics) Accuracy() int {
	return percentage(a.Correct, a.Questions)
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []SessionStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	sessions  int
	questions int
	correct   int
	incorrect int
	newPairs  int
	reviewed  map[int64]struct{}
}

// CalculateStatistics calculates practice statistics from completed sessions.
// It accepts optional year and month filters (0 means no filter).
// A pair counts as new in the period of its first correct answer, even when
// that answer lies outside the filter.
func CalculateStatistics(sessions []wordset.PracticeSession, year, month int) StatisticsResult {
	ordered := make([]wordset.PracticeSession, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartedAt.Before(ordered[j].StartedAt)
	})

	stats := make(map[string]*periodData)
	learned := make(map[int64]struct{})
	globalReviewed := make(map[int64]struct{})

	for _, session := range ordered {
		if session.StartedAt.IsZero() {
			continue
		}
		inFilter := matchesFilter(session.StartedAt.Year(), int(session.StartedAt.Month()), year, month)

		var data *periodData
		if inFilter {
			period := fmt.Sprintf("%d-%02d", session.StartedAt.Year(), int(session.StartedAt.Month()))
			data = ensurePeriodExists(stats, period)
			data.sessions++
			data.questions += session.TotalQuestions
			data.correct += session.CorrectAnswers
			data.incorrect += session.IncorrectAnswers
		}

		for _, reviewed := range session.ReviewedPairs {
			if inFilter {
				data.reviewed[reviewed.PairID] = struct{}{}
				globalReviewed[reviewed.PairID] = struct{}{}
			}
			if !reviewed.Correct {
				continue
			}
			if _, ok := learned[reviewed.PairID]; ok {
				continue
			}
			learned[reviewed.PairID] = struct{}{}
			if inFilter {
				data.newPairs++
			}
		}
	}

	return buildResult(stats, globalReviewed)
}

func ensurePeriodExists(stats map[string]*periodData, period string) *periodData {
	if stats[period] == nil {
		stats[period] = &periodData{
			reviewed: make(map[int64]struct{}),
		}
	}
	return stats[period]
}

func matchesFilter(sessionYear, sessionMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if sessionYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return sessionMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalReviewed map[int64]struct{}) StatisticsResult {
	periods := make([]SessionStatistics, 0, len(stats))

	var aggregate AggregateStatistics
	for period, data := range stats {
		periods = append(periods, SessionStatistics{
			Period:        period,
			SessionsCount: data.sessions,
			Questions:     data.questions,
			Correct:       data.correct,
			Incorrect:     data.incorrect,
			NewPairs:      data.newPairs,
			ReviewedPairs: len(data.reviewed),
		})
		aggregate.SessionsCount += data.sessions
		aggregate.Questions += data.questions
		aggregate.Correct += data.correct
		aggregate.Incorrect += data.incorrect
		aggregate.NewPairs += data.newPairs
	}
	aggregate.ReviewedPairs = len(globalReviewed)

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
