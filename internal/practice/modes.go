package practice

import (
	"math/rand/v2"

	"github.com/reclamegraag/examiner/internal/fuzzy"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// MaxDistractors is the number of wrong options offered next to the answer.
const MaxDistractors = 3

// BuildOptions returns the expected answer and up to MaxDistractors distinct
// distractors taken from the same side of the other pairs, in random order.
// Fewer options are returned when the set has too few distinct answers.
func BuildOptions(q Question, pairs []*wordset.WordPair, rng *rand.Rand) []string {
	seen := map[string]struct{}{q.Expected: {}}
	var candidates []string
	for _, p := range pairs {
		if p == q.Pair || (q.Pair != nil && p.ID == q.Pair.ID) {
			continue
		}
		answer := answerSide(p, q.Reversed)
		if _, ok := seen[answer]; ok {
			continue
		}
		seen[answer] = struct{}{}
		candidates = append(candidates, answer)
	}

	candidates = shuffle(rng, candidates)
	if len(candidates) > MaxDistractors {
		candidates = candidates[:MaxDistractors]
	}
	return shuffle(rng, append(candidates, q.Expected))
}

// GradeChoice grades a multiple-choice pick by exact comparison.
func GradeChoice(q Question, choice string) bool {
	return choice == q.Expected
}

// TypedGrade is the outcome of grading a typed answer.
type TypedGrade struct {
	Result   fuzzy.Result
	Correct  bool
	Feedback string
}

// GradeTyped grades free-text input with the fuzzy matcher.
func GradeTyped(q Question, input string) TypedGrade {
	result := fuzzy.Match(input, q.Expected)
	return TypedGrade{
		Result:   result,
		Correct:  result.Accepted(),
		Feedback: fuzzy.Feedback(result, q.Expected),
	}
}

// AcceptRetype reports whether a corrective retype after a wrong answer
// matches the expected answer. It never changes the recorded answer.
func AcceptRetype(q Question, input string) bool {
	return fuzzy.Match(input, q.Expected).Accepted()
}
