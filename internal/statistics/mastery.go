package statistics

import (
	"time"

	"github.com/reclamegraag/examiner/internal/srs"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// MasteredInterval is the review interval in days from which a pair counts as mastered.
const MasteredInterval = 21

// Mastery summarizes the scheduling state of the pairs of a set.
type Mastery struct {
	Total       int
	New         int // never answered
	Learning    int // answered, interval below MasteredInterval
	Mastered    int
	Due         int
	Correct     int
	Incorrect   int
	AverageEase float64
}

// Accuracy returns the share of correct answers over all recorded attempts.
func (m Mastery) Accuracy() int {
	return percentage(m.Correct, m.Correct+m.Incorrect)
}

// MasteredPercentage returns the share of mastered pairs.
func (m Mastery) MasteredPercentage() int {
	return percentage(m.Mastered, m.Total)
}

// CalculateMastery summarizes pairs at now.
func CalculateMastery(pairs []wordset.WordPair, now time.Time) Mastery {
	mastery := Mastery{Total: len(pairs)}
	if len(pairs) == 0 {
		return mastery
	}

	var easeSum float64
	for _, pair := range pairs {
		easeSum += pair.EaseFactor
		mastery.Correct += pair.CorrectCount
		mastery.Incorrect += pair.IncorrectCount

		switch {
		case pair.Attempts() == 0:
			mastery.New++
		case pair.Interval >= MasteredInterval:
			mastery.Mastered++
		default:
			mastery.Learning++
		}
	}
	mastery.Due = len(srs.DueForReview(pairs, now))
	mastery.AverageEase = easeSum / float64(len(pairs))
	return mastery
}
