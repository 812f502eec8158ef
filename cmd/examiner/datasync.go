package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/reclamegraag/examiner/internal/cli"
	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/datasync"
	"github.com/reclamegraag/examiner/internal/inference"
	"github.com/reclamegraag/examiner/internal/inference/gemini"
	"github.com/reclamegraag/examiner/internal/language"
	"github.com/reclamegraag/examiner/internal/ocr"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func newImportCommand() *cobra.Command {
	importCommand := &cobra.Command{
		Use:   "import",
		Short: "Import word pairs from files or pictures",
	}
	importCommand.AddCommand(
		newImportYAMLCommand(),
		newImportWorkbookCommand(),
		newImportImageCommand(),
	)
	return importCommand
}

func newImportYAMLCommand() *cobra.Command {
	var opts datasync.ImportOptions
	command := &cobra.Command{
		Use:   "yaml <file>",
		Short: "Create a set from an exported YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readSetFile(args[0])
			if err != nil {
				return err
			}
			return withStore(func(_ *config.Config, s *store) error {
				importer := datasync.NewImporter(s.repo, cmd.OutOrStdout())
				result, err := importer.ImportSet(cmd.Context(), *file, opts)
				if err != nil {
					return fmt.Errorf("importer.ImportSet() > %w", err)
				}
				printImportResult(cmd.OutOrStdout(), result, opts.DryRun)
				return nil
			})
		},
	}
	command.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be imported without writing")
	command.Flags().BoolVar(&opts.KeepProgress, "keep-progress", false, "Restore the review progress stored in the file")
	return command
}

func readSetFile(path string) (*datasync.SetFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	file, err := datasync.ReadSetFile(f)
	if err != nil {
		return nil, fmt.Errorf("datasync.ReadSetFile(%s) > %w", path, err)
	}
	return file, nil
}

func newImportWorkbookCommand() *cobra.Command {
	var (
		opts      datasync.ImportOptions
		workbook  = datasync.DefaultWorkbookOptions()
		setID     int64
		name      string
		languageA string
		languageB string
	)
	command := &cobra.Command{
		Use:   "xlsx <file>",
		Short: "Import pairs from two columns of a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() {
				_ = f.Close()
			}()
			pairs, err := datasync.ReadWorkbook(f, workbook)
			if err != nil {
				return fmt.Errorf("datasync.ReadWorkbook() > %w", err)
			}

			return withStore(func(_ *config.Config, s *store) error {
				importer := datasync.NewImporter(s.repo, cmd.OutOrStdout())
				var result *datasync.ImportResult
				if setID > 0 {
					result, err = importer.ImportPairs(cmd.Context(), setID, pairs, opts)
				} else {
					if name == "" {
						return fmt.Errorf("either --set or --name is required")
					}
					now := time.Now()
					result, err = importer.ImportSet(cmd.Context(), datasync.SetFile{
						WordSet: wordset.WordSet{
							Name:      name,
							LanguageA: languageA,
							LanguageB: languageB,
							CreatedAt: now,
							UpdatedAt: now,
						},
						Pairs: pairs,
					}, opts)
				}
				if err != nil {
					return fmt.Errorf("import > %w", err)
				}
				printImportResult(cmd.OutOrStdout(), result, opts.DryRun)
				return nil
			})
		},
	}
	flags := command.Flags()
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be imported without writing")
	flags.Int64Var(&setID, "set", 0, "Add the pairs to this set")
	flags.StringVar(&name, "name", "", "Create a new set with this name")
	flags.StringVarP(&languageA, "language-a", "a", "nl", "language of the first column for a new set")
	flags.StringVarP(&languageB, "language-b", "b", "en", "language of the second column for a new set")
	flags.StringVar(&workbook.SheetName, "sheet", "", "Sheet to read, the first one when empty")
	flags.StringVar(&workbook.ColumnA, "column-a", workbook.ColumnA, "Column of the first term")
	flags.StringVar(&workbook.ColumnB, "column-b", workbook.ColumnB, "Column of the second term")
	flags.IntVar(&workbook.StartRow, "start-row", workbook.StartRow, "First row holding a pair")
	return command
}

func newImportImageCommand() *cobra.Command {
	var (
		engine string
		opts   datasync.ImportOptions
	)
	command := &cobra.Command{
		Use:   "image <set id> <picture>",
		Short: "Read pairs from a photographed word list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[1], err)
			}
			image := ocr.Image{Data: data, MIMEType: http.DetectContentType(data)}

			return withStore(func(cfg *config.Config, s *store) error {
				ctx := cmd.Context()
				set, err := findSet(ctx, s.repo, setID)
				if err != nil {
					return err
				}

				var extraction ocr.Extraction
				switch engine {
				case "tesseract":
					extraction, err = recognizeWithTesseract(ctx, cfg, *set, image)
				case "gemini":
					extraction, err = transcribeWithGemini(ctx, cfg, *set, image)
				default:
					return fmt.Errorf("invalid engine %q, valid values are %q or %q", engine, "tesseract", "gemini")
				}
				if err != nil {
					return err
				}

				accepted, err := cli.NewPairReviewer().Review(extraction.Pairs, extraction.LowConfidence)
				if err != nil {
					return fmt.Errorf("Review() > %w", err)
				}

				importer := datasync.NewImporter(s.repo, cmd.OutOrStdout())
				result, err := importer.ImportPairs(ctx, setID, toWordPairs(accepted), opts)
				if err != nil {
					return fmt.Errorf("importer.ImportPairs() > %w", err)
				}
				printImportResult(cmd.OutOrStdout(), result, opts.DryRun)
				return nil
			})
		},
	}
	command.Flags().StringVar(&engine, "engine", "tesseract", "Text recognition engine. Options: tesseract, gemini")
	command.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be imported without writing")
	return command
}

func recognizeWithTesseract(ctx context.Context, cfg *config.Config, set wordset.WordSet, image ocr.Image) (ocr.Extraction, error) {
	pool := ocr.NewPool(cfg.OCR.TesseractCommand)
	defer pool.ReleaseAll()

	recognizer, err := pool.Acquire(ctx, language.TesseractCodes(set.LanguageA, set.LanguageB))
	if err != nil {
		return ocr.Extraction{}, fmt.Errorf("pool.Acquire() > %w", err)
	}
	extraction, err := ocr.Extract(ctx, recognizer, image, cfg.OCR.LowConfidenceThreshold)
	if err != nil {
		return ocr.Extraction{}, fmt.Errorf("ocr.Extract() > %w", err)
	}
	return extraction, nil
}

func transcribeWithGemini(ctx context.Context, cfg *config.Config, set wordset.WordSet, image ocr.Image) (ocr.Extraction, error) {
	if cfg.Gemini.APIKey == "" {
		return ocr.Extraction{}, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.RetryAttempts)
	if err != nil {
		return ocr.Extraction{}, fmt.Errorf("gemini.NewClient() > %w", err)
	}
	return transcribe(ctx, client, set, image, cfg.OCR.LowConfidenceThreshold)
}

// transcribe reads pairs with a model. Models report no confidence, so every
// pair gets inference.TranscribedConfidence.
func transcribe(ctx context.Context, transcriber inference.Transcriber, set wordset.WordSet, image ocr.Image, threshold float64) (ocr.Extraction, error) {
	pairs, err := transcriber.TranscribePairs(ctx, inference.TranscribeRequest{
		Image:     image.Data,
		MIMEType:  image.MIMEType,
		LanguageA: languageName(set.LanguageA),
		LanguageB: languageName(set.LanguageB),
	})
	if err != nil {
		return ocr.Extraction{}, fmt.Errorf("TranscribePairs() > %w", err)
	}

	parsed := make([]ocr.ParsedPair, 0, len(pairs))
	for i, p := range pairs {
		parsed = append(parsed, ocr.ParsedPair{
			TermA:      p.TermA,
			TermB:      p.TermB,
			Confidence: inference.TranscribedConfidence,
			Line:       i,
		})
	}
	valid, low := ocr.Partition(parsed, threshold)
	return ocr.Extraction{Pairs: valid, LowConfidence: low}, nil
}

func languageName(code string) string {
	if l, ok := language.ByCode(code); ok {
		return l.Name
	}
	return code
}

func toWordPairs(parsed []ocr.ParsedPair) []wordset.WordPair {
	pairs := make([]wordset.WordPair, len(parsed))
	for i, p := range parsed {
		pairs[i] = wordset.WordPair{TermA: p.TermA, TermB: p.TermB}
	}
	return pairs
}

func printImportResult(out io.Writer, result *datasync.ImportResult, dryRun bool) {
	prefix := ""
	if dryRun {
		prefix = "[dry run] "
	}
	if result.SetCreated && result.SetID > 0 {
		_, _ = fmt.Fprintf(out, "%sCreated set %d\n", prefix, result.SetID)
	}
	_, _ = fmt.Fprintf(out, "%s%d new, %d skipped", prefix, result.PairsNew, result.PairsSkipped)
	if result.ProgressRestored > 0 {
		_, _ = fmt.Fprintf(out, ", progress restored for %d", result.ProgressRestored)
	}
	_, _ = fmt.Fprintln(out)
}

func newExportCommand() *cobra.Command {
	var (
		withSessions bool
		outputDir    string
	)
	command := &cobra.Command{
		Use:   "export <set id>",
		Short: "Write a set to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			return withStore(func(cfg *config.Config, s *store) error {
				file, err := datasync.NewExporter(s.repo).Export(cmd.Context(), setID, withSessions)
				if err != nil {
					return fmt.Errorf("exporter.Export(%d) > %w", setID, err)
				}
				if outputDir == "" {
					outputDir = cfg.Outputs.ExportDirectory
				}
				path, err := datasync.WriteSetFileTo(outputDir, file)
				if err != nil {
					return fmt.Errorf("datasync.WriteSetFileTo() > %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pair(s) to %s\n", len(file.Pairs), path)
				return nil
			})
		},
	}
	command.Flags().BoolVar(&withSessions, "sessions", false, "Include the practice history")
	command.Flags().StringVar(&outputDir, "output", "", "Output directory, outputs.export_directory when empty")
	return command
}
