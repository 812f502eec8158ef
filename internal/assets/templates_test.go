package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPair struct {
	TermA string
	TermB string
}

type testList struct {
	Name      string
	LanguageA string
	LanguageB string
	HideA     bool
	HideB     bool
	Pairs     []testPair
}

func TestParseWordListTemplate(t *testing.T) {
	data := testList{
		Name:      "Dieren",
		LanguageA: "Dutch",
		LanguageB: "English",
		Pairs: []testPair{
			{TermA: "hond", TermB: "dog"},
			{TermA: "kat | poes", TermB: "cat"},
		},
	}

	tests := []struct {
		name         string
		templatePath string
		data         testList

		wantTemplateName string
		wantContains     []string
		wantNotContains  []string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				content := `Custom: {{ range .Pairs }}{{ .TermA }};{{ end }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			}(t),
			data:             data,
			wantTemplateName: "custom.md.go.tmpl",
			wantContains:     []string{"Custom: hond;kat | poes;"},
		},
		{
			name:             "falls back to embedded template",
			templatePath:     "",
			data:             data,
			wantTemplateName: "word-list.md.go.tmpl",
			wantContains: []string{
				"# Dieren",
				"| # | Dutch | English |",
				"| 1 | hond | dog |",
				`| 2 | kat \| poes | cat |`,
			},
		},
		{
			name:             "falls back when the file is missing",
			templatePath:     "/nonexistent/list.md.go.tmpl",
			data:             data,
			wantTemplateName: "word-list.md.go.tmpl",
			wantContains:     []string{"2 words"},
		},
		{
			name:         "hidden side is left blank",
			templatePath: "",
			data: func() testList {
				d := data
				d.HideB = true
				return d
			}(),
			wantTemplateName: "word-list.md.go.tmpl",
			wantContains:     []string{"| 1 | hond |   |"},
			wantNotContains:  []string{"dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseWordListTemplate(tt.templatePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, tmpl.Name())

			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, tt.data))
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
			for _, notWant := range tt.wantNotContains {
				assert.NotContains(t, buf.String(), notWant)
			}
		})
	}
}
