package datasync

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reclamegraag/examiner/internal/wordset"
)

func TestReadSetFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *SetFile
		wantErr bool
	}{
		{
			name: "pairs only",
			content: `name: Dieren
language_a: nl
language_b: en
pairs:
  - term_a: hond
    term_b: dog
  - term_a: kat
    term_b: cat
`,
			want: &SetFile{
				WordSet: wordset.WordSet{Name: "Dieren", LanguageA: "nl", LanguageB: "en"},
				Pairs: []wordset.WordPair{
					{TermA: "hond", TermB: "dog"},
					{TermA: "kat", TermB: "cat"},
				},
			},
		},
		{
			name: "unknown key",
			content: `name: Dieren
colour: red
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadSetFile(strings.NewReader(tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteSetFile_ReadBack(t *testing.T) {
	file := &SetFile{
		WordSet: wordset.WordSet{ID: 4, Name: "Dieren", LanguageA: "nl", LanguageB: "en", CreatedAt: testNow, UpdatedAt: testNow},
		Pairs: []wordset.WordPair{
			{ID: 1, SetID: 4, TermA: "hond", TermB: "dog", EaseFactor: 2.5, NextReview: testNow, CorrectCount: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSetFile(&buf, file))
	assert.Contains(t, buf.String(), "term_a: hond")
	assert.NotContains(t, buf.String(), "id:")

	got, err := ReadSetFile(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Dieren", got.Name)
	assert.Zero(t, got.ID)
	require.Len(t, got.Pairs, 1)
	assert.Equal(t, 1, got.Pairs[0].CorrectCount)
	assert.True(t, testNow.Equal(got.Pairs[0].NextReview))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "dieren-les-3.yml", FileName("Dieren: les 3"))
	assert.Equal(t, "set.yml", FileName("???"))
}

func TestWriteSetFileTo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sets")
	path, err := WriteSetFileTo(dir, &SetFile{WordSet: wordset.WordSet{Name: "Franse woorden"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "franse-woorden.yml"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "name: Franse woorden")
}
