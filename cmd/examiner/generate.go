package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/datasync"
	"github.com/reclamegraag/examiner/internal/inference"
	"github.com/reclamegraag/examiner/internal/inference/gemini"
	"github.com/reclamegraag/examiner/internal/inference/openai"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func newGenerateCommand() *cobra.Command {
	var (
		provider   string
		theme      string
		count      int
		difficulty string
		opts       datasync.ImportOptions
	)
	command := &cobra.Command{
		Use:   "generate <set id>",
		Short: "Add AI suggested pairs on a theme to a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			level, err := inference.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			return withStore(func(cfg *config.Config, s *store) error {
				ctx := cmd.Context()
				set, err := findSet(ctx, s.repo, setID)
				if err != nil {
					return err
				}
				generator, err := newGenerator(ctx, cfg, provider)
				if err != nil {
					return err
				}

				request := inference.GenerateRequest{
					Theme:      theme,
					LanguageA:  languageName(set.LanguageA),
					LanguageB:  languageName(set.LanguageB),
					Count:      count,
					Difficulty: level,
				}
				pairs, err := generatePairs(ctx, generator, request, cmd.OutOrStdout())
				if err != nil {
					return err
				}

				importer := datasync.NewImporter(s.repo, cmd.OutOrStdout())
				result, err := importer.ImportPairs(ctx, setID, pairs, opts)
				if err != nil {
					return fmt.Errorf("importer.ImportPairs() > %w", err)
				}
				printImportResult(cmd.OutOrStdout(), result, opts.DryRun)
				return nil
			})
		},
	}
	flags := command.Flags()
	flags.StringVar(&provider, "provider", "openai", "Model provider. Options: openai, gemini")
	flags.StringVar(&theme, "theme", "", "Theme of the words, for example \"kitchen\"")
	flags.IntVar(&count, "count", 10, "Number of pairs to generate (1-100)")
	flags.StringVar(&difficulty, "difficulty", string(inference.DifficultyIntermediate), "Options: beginner, intermediate, advanced")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Show the suggestions without adding them")
	_ = command.MarkFlagRequired("theme")
	return command
}

func newGenerator(ctx context.Context, cfg *config.Config, provider string) (inference.Generator, error) {
	switch provider {
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		return openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.RetryAttempts), nil
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.RetryAttempts)
		if err != nil {
			return nil, fmt.Errorf("gemini.NewClient() > %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("invalid provider %q, valid values are %q or %q", provider, "openai", "gemini")
	}
}

// generatePairs asks the generator for pairs. Any failure discards the whole
// batch.
func generatePairs(ctx context.Context, generator inference.Generator, request inference.GenerateRequest, out io.Writer) ([]wordset.WordPair, error) {
	_, _ = fmt.Fprintf(out, "Generating %d %s pair(s) about %q...\n", request.Count, request.Difficulty, request.Theme)
	suggestions, err := generator.GeneratePairs(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("GeneratePairs() > %w", err)
	}

	pairs := make([]wordset.WordPair, 0, len(suggestions))
	for _, s := range suggestions {
		pairs = append(pairs, wordset.WordPair{TermA: s.TermA, TermB: s.TermB})
	}
	return pairs, nil
}
