// Package ocr turns photographed vocabulary lists into word pairs.
package ocr

import (
	"math"
	"regexp"
	"strings"
)

// DefaultLowConfidenceThreshold is the confidence below which parsed pairs
// are held back for review.
const DefaultLowConfidenceThreshold = 60

var (
	dashSeparator       = regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+)$`)
	colonSeparator      = regexp.MustCompile(`^(.+?)\s*:\s*(.+)$`)
	multiSpaceSeparator = regexp.MustCompile(`^(.+?)\s{3,}(.+)$`)
)

// ParsedPair is a pair read from one recognized line.
type ParsedPair struct {
	TermA      string
	TermB      string
	Confidence float64
	// Line is the index of the source line.
	Line int
}

// ParseLines parses every line into a pair. Lines that do not look like a
// pair are dropped.
func ParseLines(lines []Line) []ParsedPair {
	var pairs []ParsedPair
	for i, line := range lines {
		termA, termB, ok := ParseLine(line.Text)
		if !ok {
			continue
		}
		pairs = append(pairs, ParsedPair{
			TermA:      termA,
			TermB:      termB,
			Confidence: line.Confidence,
			Line:       i,
		})
	}
	return pairs
}

// ParseLine splits a line into two terms. The separators are tried in order:
// a tab, a dash, a colon, three or more spaces. Without a separator a line
// of four or more words is split in half, the first half taking the odd
// word, and a line of exactly two words is split between them.
func ParseLine(text string) (string, string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", "", false
	}

	if parts := strings.Split(trimmed, "\t"); len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], " ")), true
	}

	for _, re := range []*regexp.Regexp{dashSeparator, colonSeparator, multiSpaceSeparator} {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
		}
	}

	words := strings.Fields(trimmed)
	switch {
	case len(words) >= 4:
		mid := int(math.Ceil(float64(len(words)) / 2))
		return strings.Join(words[:mid], " "), strings.Join(words[mid:], " "), true
	case len(words) == 2:
		return words[0], words[1], true
	}
	return "", "", false
}

// Partition drops pairs with an empty side and splits the rest into pairs
// at or above threshold and pairs below it.
func Partition(pairs []ParsedPair, threshold float64) (valid, lowConfidence []ParsedPair) {
	for _, p := range pairs {
		if p.TermA == "" || p.TermB == "" {
			continue
		}
		if p.Confidence < threshold {
			lowConfidence = append(lowConfidence, p)
			continue
		}
		valid = append(valid, p)
	}
	return valid, lowConfidence
}
