// Package practice drives practice sessions: the round state machine, the
// quick drill queue, the quiz mode graders and the recording of results.
package practice

import (
	"fmt"
	"math/rand/v2"

	"github.com/reclamegraag/examiner/internal/wordset"
)

// Direction selects which side of a pair is shown as the prompt.
type Direction string

const (
	DirectionAToB   Direction = "a-to-b"
	DirectionBToA   Direction = "b-to-a"
	DirectionRandom Direction = "random"
)

// Directions lists every supported direction.
var Directions = []Direction{DirectionAToB, DirectionBToA, DirectionRandom}

// ParseDirection converts a flag or config value into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Question is a pair resolved into a prompt and the answer expected for it.
type Question struct {
	Pair     *wordset.WordPair
	Prompt   string
	Expected string
	// Reversed is true when TermB is the prompt.
	Reversed bool
	// Options holds the shuffled choices in multiple-choice mode.
	Options []string
}

// Resolve turns a pair into a question for the given direction.
// DirectionRandom flips a coin on every call, so callers must keep the
// returned Question for as long as it is on screen.
func Resolve(pair *wordset.WordPair, direction Direction, rng *rand.Rand) Question {
	reversed := direction == DirectionBToA
	if direction == DirectionRandom {
		reversed = rng.IntN(2) == 0
	}
	if reversed {
		return Question{Pair: pair, Prompt: pair.TermB, Expected: pair.TermA, Reversed: true}
	}
	return Question{Pair: pair, Prompt: pair.TermA, Expected: pair.TermB}
}

// answerSide returns the side of pair that would be expected for a question
// with the given orientation.
func answerSide(pair *wordset.WordPair, reversed bool) string {
	if reversed {
		return pair.TermA
	}
	return pair.TermB
}

func shuffle[T any](rng *rand.Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
