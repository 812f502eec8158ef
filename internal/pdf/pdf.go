// Package pdf renders word sets as printable PDF word lists.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/reclamegraag/examiner/internal/assets"
	"github.com/reclamegraag/examiner/internal/datasync"
	"github.com/reclamegraag/examiner/internal/language"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// Hide selects a side left blank for writing practice.
type Hide string

const (
	HideNone Hide = ""
	HideA    Hide = "a"
	HideB    Hide = "b"
)

// WordList is the data passed to the word list template.
type WordList struct {
	Name      string
	LanguageA string
	LanguageB string
	HideA     bool
	HideB     bool
	Pairs     []wordset.WordPair
}

// NewWordList builds the template data for a set, showing language names where known.
func NewWordList(set wordset.WordSet, pairs []wordset.WordPair, hide Hide) WordList {
	return WordList{
		Name:      set.Name,
		LanguageA: languageName(set.LanguageA),
		LanguageB: languageName(set.LanguageB),
		HideA:     hide == HideA,
		HideB:     hide == HideB,
		Pairs:     pairs,
	}
}

func languageName(code string) string {
	if l, ok := language.ByCode(code); ok {
		return l.Name
	}
	return code
}

// RenderSet writes the word list of a set as markdown and converts it to PDF.
// It returns the path of the PDF file.
func RenderSet(outputDir, templatePath string, list WordList) (string, error) {
	tmpl, err := assets.ParseWordListTemplate(templatePath)
	if err != nil {
		return "", fmt.Errorf("assets.ParseWordListTemplate() > %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	markdownPath := filepath.Join(outputDir, strings.TrimSuffix(datasync.FileName(list.Name), ".yml")+".md")

	f, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	if err := tmpl.Execute(f, list); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("tmpl.Execute() > %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("f.Close() > %w", err)
	}

	pdfPath, err := ConvertMarkdownToPDF(markdownPath)
	if err != nil {
		return "", fmt.Errorf("ConvertMarkdownToPDF() > %w", err)
	}
	return pdfPath, nil
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
