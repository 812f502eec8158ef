package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reclamegraag/examiner/internal/wordset"
)

func TestCalculateMastery(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		pairs []wordset.WordPair
		want  Mastery
	}{
		{
			name:  "empty set",
			pairs: nil,
			want:  Mastery{},
		},
		{
			name: "mixed progress",
			pairs: []wordset.WordPair{
				{EaseFactor: 2.5, NextReview: now},
				{EaseFactor: 2.2, Interval: 6, CorrectCount: 2, IncorrectCount: 1, NextReview: now.AddDate(0, 0, -1)},
				{EaseFactor: 2.8, Interval: 30, CorrectCount: 5, NextReview: now.AddDate(0, 0, 10)},
				{EaseFactor: 2.5, Interval: 21, CorrectCount: 3, NextReview: now.AddDate(0, 0, 1)},
			},
			want: Mastery{
				Total:       4,
				New:         1,
				Learning:    1,
				Mastered:    2,
				Due:         2,
				Correct:     10,
				Incorrect:   1,
				AverageEase: 2.5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMastery(tt.pairs, now)
			assert.InDelta(t, tt.want.AverageEase, got.AverageEase, 1e-9)
			got.AverageEase = tt.want.AverageEase
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMastery_Percentages(t *testing.T) {
	m := Mastery{Total: 4, Mastered: 1, Correct: 9, Incorrect: 1}
	assert.Equal(t, 25, m.MasteredPercentage())
	assert.Equal(t, 90, m.Accuracy())
	assert.Equal(t, 0, Mastery{}.Accuracy())
}
