// Package fuzzy grades free-text answers against an expected answer.
package fuzzy

import (
	"fmt"
	"strings"
)

// Result describes how close an answer is to the expected answer.
type Result struct {
	IsExact       bool
	IsAccentMatch bool
	// IsFuzzyMatch is true when the accent-folded forms are equal.
	// Match short-circuits before computing a distance in that case,
	// so a zero distance is never reported from the Levenshtein branch.
	IsFuzzyMatch bool
	IsClose      bool
	Distance     int
}

// Accepted reports whether the answer counts as correct for scheduling.
func (r Result) Accepted() bool {
	return r.IsExact || r.IsAccentMatch || r.IsFuzzyMatch
}

var accentReplacer = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i",
	"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ý", "y", "ÿ", "y",
	"ñ", "n", "ç", "c", "ß", "ss",
	"œ", "oe", "æ", "ae",
)

// FoldAccents replaces the supported diacritics with their plain Latin form.
// The input is expected to be lowercase already.
func FoldAccents(s string) string {
	return accentReplacer.Replace(s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match compares answer to expected ignoring case, surrounding whitespace and accents.
func Match(answer, expected string) Result {
	normalizedAnswer := normalize(answer)
	normalizedExpected := normalize(expected)

	if normalizedAnswer == normalizedExpected {
		return Result{IsExact: true, IsAccentMatch: true, IsFuzzyMatch: true}
	}

	foldedAnswer := FoldAccents(normalizedAnswer)
	foldedExpected := FoldAccents(normalizedExpected)
	if foldedAnswer == foldedExpected {
		return Result{IsAccentMatch: true, IsFuzzyMatch: true}
	}

	distance := Levenshtein(foldedAnswer, foldedExpected)
	return Result{
		IsFuzzyMatch: distance == 0,
		IsClose:      distance == 1,
		Distance:     distance,
	}
}

// Levenshtein returns the edit distance between a and b counted in runes.
// Insertions, deletions and substitutions all cost 1.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if ra[j-1] == rb[i-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j-1], curr[j-1], prev[j])
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

// Feedback returns the explanation shown to the learner, or an empty string
// when the answer was exact.
func Feedback(result Result, expected string) string {
	switch {
	case result.IsExact:
		return ""
	case result.IsAccentMatch:
		return "Watch the accents"
	case result.IsClose:
		return fmt.Sprintf("Almost! The answer is: %s", expected)
	default:
		return Correction(expected)
	}
}

// Correction is the message shown for a wrong answer, whichever way it was
// given.
func Correction(expected string) string {
	return fmt.Sprintf("Wrong. The correct answer is: %s", expected)
}
