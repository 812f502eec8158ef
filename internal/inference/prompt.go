package inference

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GeneratePrompt builds the instruction sent to a model for a generation.
func GeneratePrompt(request GenerateRequest) string {
	return fmt.Sprintf(`Generate exactly %d word pairs on the theme %q.
Language A: %s
Language B: %s
Difficulty: %s

Return ONLY a JSON array of objects with "termA" (in %s) and "termB" (in %s).
No explanation, no numbering, only the JSON array.
Example: [{"termA":"hond","termB":"dog"},{"termA":"kat","termB":"cat"}]`,
		request.Count, request.Theme,
		request.LanguageA, request.LanguageB,
		request.Difficulty.Description(),
		request.LanguageA, request.LanguageB)
}

// TranscribePrompt builds the instruction sent with an image of a vocabulary list.
func TranscribePrompt(languageA, languageB string) string {
	return fmt.Sprintf(`Extract ALL word pairs from this vocabulary list image.
The list contains pairs in two languages: %s and %s.
Return ONLY a JSON array of objects with "termA" (%s) and "termB" (%s).
Ignore numbering, bullet points, and headers. Only return the word pairs.
Example: [{"termA":"house","termB":"huis"},{"termA":"cat","termB":"kat"}]`,
		languageA, languageB, languageA, languageB)
}

// ParsePairs decodes the JSON array a model answered with. Text around the
// array, such as a markdown fence, is ignored. Entries with a blank side are
// skipped and the remaining terms are trimmed.
func ParsePairs(content string) ([]Pair, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON array in response %q: %w", content, ErrEmptyResponse)
	}

	var decoded []Pair
	if err := json.Unmarshal([]byte(content[start:end+1]), &decoded); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}

	pairs := make([]Pair, 0, len(decoded))
	for _, p := range decoded {
		a := strings.TrimSpace(p.TermA)
		b := strings.TrimSpace(p.TermB)
		if a == "" || b == "" {
			continue
		}
		pairs = append(pairs, Pair{TermA: a, TermB: b})
	}
	if len(pairs) == 0 {
		return nil, ErrEmptyResponse
	}
	return pairs, nil
}
