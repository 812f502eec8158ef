// Package datasync provides import/export of word sets between files and the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/reclamegraag/examiner/internal/language"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// SetFile is the file representation of a word set.
type SetFile struct {
	wordset.WordSet `yaml:",inline"`
	Pairs           []wordset.WordPair        `yaml:"pairs"`
	Sessions        []wordset.PracticeSession `yaml:"sessions,omitempty"`
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	SetID            int64
	SetCreated       bool
	PairsNew         int
	PairsSkipped     int
	ProgressRestored int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
	// KeepProgress restores the scheduling state stored in the file.
	KeepProgress bool
}

// Importer writes word sets and pairs from files, OCR or generation into the database.
type Importer struct {
	setRepo   wordset.SetRepository
	validator *validator.Validate
	writer    io.Writer
	now       func() time.Time
}

// NewImporter creates a new Importer.
func NewImporter(setRepo wordset.SetRepository, writer io.Writer) *Importer {
	return &Importer{
		setRepo:   setRepo,
		validator: validator.New(),
		writer:    writer,
		now:       time.Now,
	}
}

// ImportSet creates a new set from a file. Duplicate pairs within the file are skipped.
func (imp *Importer) ImportSet(ctx context.Context, file SetFile, opts ImportOptions) (*ImportResult, error) {
	set := file.WordSet
	for _, code := range []*string{&set.LanguageA, &set.LanguageB} {
		lang, err := language.Lookup(*code)
		if err != nil {
			return nil, fmt.Errorf("language.Lookup(%s) > %w", *code, err)
		}
		*code = lang.Code
	}
	if err := imp.validator.Struct(set); err != nil {
		return nil, fmt.Errorf("validator.Struct(%s) > %w", set.Name, err)
	}

	var result ImportResult
	seen := make(map[string]struct{}, len(file.Pairs))
	var pairs []wordset.WordPair
	var progress []wordset.Progress
	for _, pair := range file.Pairs {
		if err := imp.validatePair(pair, opts.KeepProgress); err != nil {
			return nil, err
		}
		key := pairKey(pair.TermA, pair.TermB)
		if _, ok := seen[key]; ok {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q = %q\n", pair.TermA, pair.TermB)
			result.PairsSkipped++
			continue
		}
		seen[key] = struct{}{}
		pairs = append(pairs, wordset.WordPair{TermA: strings.TrimSpace(pair.TermA), TermB: strings.TrimSpace(pair.TermB)})
		progress = append(progress, pair.Progress())
		fmt.Fprintf(imp.writer, "  [NEW]  %q = %q\n", pair.TermA, pair.TermB)
		result.PairsNew++
	}

	result.SetCreated = true
	if opts.DryRun {
		return &result, nil
	}

	if err := imp.setRepo.CreateSet(ctx, &set, pairs); err != nil {
		return nil, fmt.Errorf("CreateSet(%s) > %w", set.Name, err)
	}
	result.SetID = set.ID

	if !opts.KeepProgress {
		return &result, nil
	}
	for i, pair := range pairs {
		if !hasProgress(progress[i]) {
			continue
		}
		if err := imp.setRepo.UpdatePairProgress(ctx, pair.ID, progress[i]); err != nil {
			return nil, fmt.Errorf("UpdatePairProgress(%d) > %w", pair.ID, err)
		}
		result.ProgressRestored++
	}
	return &result, nil
}

// ImportPairs adds pairs to an existing set. Pairs already in the set are skipped.
func (imp *Importer) ImportPairs(ctx context.Context, setID int64, candidates []wordset.WordPair, opts ImportOptions) (*ImportResult, error) {
	set, err := imp.setRepo.FindSet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("FindSet(%d) > %w", setID, err)
	}
	if set == nil {
		return nil, fmt.Errorf("set %d: %w", setID, wordset.ErrNotFound)
	}

	existing, err := imp.setRepo.FindPairsBySet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("FindPairsBySet(%d) > %w", setID, err)
	}
	seen := make(map[string]struct{}, len(existing)+len(candidates))
	for _, pair := range existing {
		seen[pairKey(pair.TermA, pair.TermB)] = struct{}{}
	}

	result := ImportResult{SetID: setID}
	for _, candidate := range candidates {
		if err := imp.validatePair(candidate, false); err != nil {
			return nil, err
		}
		key := pairKey(candidate.TermA, candidate.TermB)
		if _, ok := seen[key]; ok {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q = %q\n", candidate.TermA, candidate.TermB)
			result.PairsSkipped++
			continue
		}
		seen[key] = struct{}{}

		if !opts.DryRun {
			pair := wordset.NewWordPair(setID, strings.TrimSpace(candidate.TermA), strings.TrimSpace(candidate.TermB), imp.now())
			if err := imp.setRepo.CreatePair(ctx, &pair); err != nil {
				return nil, fmt.Errorf("CreatePair() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q = %q\n", candidate.TermA, candidate.TermB)
		result.PairsNew++
	}
	return &result, nil
}

func (imp *Importer) validatePair(pair wordset.WordPair, withProgress bool) error {
	fields := []string{"TermA", "TermB"}
	if withProgress && hasProgress(pair.Progress()) {
		fields = append(fields, "EaseFactor", "Interval", "CorrectCount", "IncorrectCount")
	}
	candidate := pair
	candidate.TermA = strings.TrimSpace(pair.TermA)
	candidate.TermB = strings.TrimSpace(pair.TermB)
	if err := imp.validator.StructPartial(candidate, fields...); err != nil {
		return fmt.Errorf("validator.StructPartial(%q) > %w", pair.TermA, err)
	}
	return nil
}

func hasProgress(progress wordset.Progress) bool {
	return progress.CorrectCount+progress.IncorrectCount > 0 || progress.Interval > 0
}

func pairKey(termA, termB string) string {
	return strings.ToLower(strings.TrimSpace(termA)) + "\x00" + strings.ToLower(strings.TrimSpace(termB))
}

// Exporter reads a set with its pairs and sessions from the database.
type Exporter struct {
	repo wordset.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(repo wordset.Repository) *Exporter {
	return &Exporter{repo: repo}
}

// Export reads a set, its pairs and optionally its session history.
func (e *Exporter) Export(ctx context.Context, setID int64, withSessions bool) (*SetFile, error) {
	set, err := e.repo.FindSet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("FindSet(%d) > %w", setID, err)
	}
	if set == nil {
		return nil, fmt.Errorf("set %d: %w", setID, wordset.ErrNotFound)
	}

	pairs, err := e.repo.FindPairsBySet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("FindPairsBySet(%d) > %w", setID, err)
	}

	file := SetFile{WordSet: *set, Pairs: pairs}
	if !withSessions {
		return &file, nil
	}
	sessions, err := e.repo.FindSessionsBySet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("FindSessionsBySet(%d) > %w", setID, err)
	}
	file.Sessions = sessions
	return &file, nil
}
