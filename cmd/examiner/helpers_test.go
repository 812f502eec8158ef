package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func TestModeFlag_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    ModeFlag
		wantErr bool
	}{
		{value: "flashcard", want: ModeFlag(wordset.ModeFlashcard)},
		{value: "typing", want: ModeFlag(wordset.ModeTyping)},
		{value: "multiple-choice", want: ModeFlag(wordset.ModeMultipleChoice)},
		{value: "quick", want: ModeFlag(wordset.ModeQuick)},
		{value: "oral", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var flag ModeFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flag)
			assert.Equal(t, tt.value, flag.String())
		})
	}
}

func TestDirectionFlag_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    DirectionFlag
		wantErr bool
	}{
		{value: "a-to-b", want: DirectionFlag(practice.DirectionAToB)},
		{value: "b-to-a", want: DirectionFlag(practice.DirectionBToA)},
		{value: "random", want: DirectionFlag(practice.DirectionRandom)},
		{value: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var flag DirectionFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestHideFlag_Set(t *testing.T) {
	var flag HideFlag
	assert.NoError(t, flag.Set("a"))
	assert.Equal(t, "a", flag.String())
	assert.NoError(t, flag.Set("b"))
	assert.Error(t, flag.Set("both"))
	assert.Equal(t, "b", flag.String())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{arg: "12", want: 12},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "twelve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseID("set", tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWordSet(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setName   string
		languageA string
		languageB string
		wantA     string
		wantB     string
		wantErr   bool
	}{
		{name: "codes", setName: "Dieren", languageA: "nl", languageB: "en", wantA: "nl", wantB: "en"},
		{name: "names and tags", setName: "Verbs", languageA: "German", languageB: "fr-FR", wantA: "de", wantB: "fr"},
		{name: "unknown language", setName: "Verbs", languageA: "klingon", languageB: "en", wantErr: true},
		{name: "empty name", setName: "", languageA: "nl", languageB: "en", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newWordSet(tt.setName, tt.languageA, tt.languageB, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.setName, got.Name)
			assert.Equal(t, tt.wantA, got.LanguageA)
			assert.Equal(t, tt.wantB, got.LanguageB)
			assert.Equal(t, now, got.CreatedAt)
		})
	}
}

func TestSelectPairs(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pairs := []wordset.WordPair{
		{ID: 1, TermA: "kat", EaseFactor: 2.5, NextReview: now.AddDate(0, 0, 3)},
		{ID: 2, TermA: "hond", EaseFactor: 2.5, NextReview: now.AddDate(0, 0, -1)},
		{ID: 3, TermA: "paard", EaseFactor: 2.5, NextReview: now.AddDate(0, 0, -4)},
	}

	all := selectPairs(pairs, false, now)
	require.Len(t, all, 3)
	assert.Same(t, &pairs[0], all[0])

	due := selectPairs(pairs, true, now)
	require.Len(t, due, 2)
	assert.Equal(t, int64(3), due[0].ID)
	assert.Equal(t, int64(2), due[1].ID)
	assert.Same(t, &pairs[2], due[0])
}

func TestParseInterval(t *testing.T) {
	got, err := parseInterval("90m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got)

	_, err = parseInterval("10s")
	assert.ErrorContains(t, err, "at least 1m")

	_, err = parseInterval("hourly")
	assert.Error(t, err)
}

func TestNewSessionConfig(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pairs := []wordset.WordPair{
		{ID: 1, TermA: "kat", TermB: "cat", EaseFactor: 2.5, NextReview: now.AddDate(0, 0, -1)},
		{ID: 2, TermA: "hond", TermB: "dog", EaseFactor: 2.5, NextReview: now.AddDate(0, 0, 5)},
		{ID: 3, TermA: "vis", TermB: "fish", EaseFactor: 2.5, NextReview: now.AddDate(0, 0, 5)},
		{ID: 4, TermA: "paard", TermB: "horse", EaseFactor: 2.5, NextReview: now.AddDate(0, 0, 5)},
	}
	options := practiceOptions{mode: wordset.ModeMultipleChoice, direction: practice.DirectionAToB, dueOnly: true}

	config := newSessionConfig(pairs, options, now)
	assert.Equal(t, wordset.ModeMultipleChoice, config.Mode)
	require.Len(t, config.Distractors, len(pairs))

	selected := selectPairs(pairs, options.dueOnly, now)
	require.Len(t, selected, 1)
	session := practice.NewSession(1, selected, config)
	q := session.CurrentQuestion()
	require.NotNil(t, q)
	assert.Len(t, q.Options, 4)
	assert.ElementsMatch(t, []string{"cat", "dog", "fish", "horse"}, q.Options)
}
