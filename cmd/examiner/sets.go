package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/language"
	"github.com/reclamegraag/examiner/internal/srs"
	"github.com/reclamegraag/examiner/internal/statistics"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func newSetsCommand() *cobra.Command {
	setsCommand := &cobra.Command{
		Use:   "sets",
		Short: "Manage word sets",
	}

	setsCommand.AddCommand(
		newSetsListCommand(),
		newSetsCreateCommand(),
		newSetsShowCommand(),
		newSetsRenameCommand(),
		newSetsDeleteCommand(),
		newSetsResetCommand(),
	)
	return setsCommand
}

func newSetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every word set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(_ *config.Config, s *store) error {
				return listSets(cmd.Context(), s.repo, cmd.OutOrStdout(), time.Now())
			})
		},
	}
}

func listSets(ctx context.Context, repo wordset.SetRepository, out io.Writer, now time.Time) error {
	sets, err := repo.FindAllSets(ctx)
	if err != nil {
		return fmt.Errorf("FindAllSets() > %w", err)
	}
	if len(sets) == 0 {
		_, _ = fmt.Fprintln(out, "No word sets yet. Create one with: examiner sets create <name>")
		return nil
	}
	pairs, err := repo.FindAllPairs(ctx)
	if err != nil {
		return fmt.Errorf("FindAllPairs() > %w", err)
	}

	counts := make(map[int64]int)
	for _, p := range pairs {
		counts[p.SetID]++
	}
	due := make(map[int64]int)
	for _, i := range srs.DueForReview(pairs, now) {
		due[pairs[i].SetID]++
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tLANGUAGES\tPAIRS\tDUE")
	for _, set := range sets {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s → %s\t%d\t%d\n",
			set.ID, set.Name, set.LanguageA, set.LanguageB, counts[set.ID], due[set.ID])
	}
	return w.Flush()
}

func newSetsCreateCommand() *cobra.Command {
	var languageA, languageB string
	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty word set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newWordSet(args[0], languageA, languageB, time.Now())
			if err != nil {
				return err
			}
			return withStore(func(_ *config.Config, s *store) error {
				if err := s.repo.CreateSet(cmd.Context(), set, nil); err != nil {
					return fmt.Errorf("CreateSet() > %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created set %d: %s (%s → %s)\n", set.ID, set.Name, set.LanguageA, set.LanguageB)
				return nil
			})
		},
	}
	command.Flags().StringVarP(&languageA, "language-a", "a", "nl", "language of the first term")
	command.Flags().StringVarP(&languageB, "language-b", "b", "en", "language of the second term")
	return command
}

// newWordSet builds a set with normalized language codes.
func newWordSet(name, languageA, languageB string, now time.Time) (*wordset.WordSet, error) {
	if name == "" {
		return nil, fmt.Errorf("the set name is required")
	}
	a, err := language.Lookup(languageA)
	if err != nil {
		return nil, fmt.Errorf("language.Lookup(%s) > %w", languageA, err)
	}
	b, err := language.Lookup(languageB)
	if err != nil {
		return nil, fmt.Errorf("language.Lookup(%s) > %w", languageB, err)
	}
	return &wordset.WordSet{
		Name:      name,
		LanguageA: a.Code,
		LanguageB: b.Code,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func newSetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <set id>",
		Short: "Show the pairs of a set with their progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			return withStore(func(_ *config.Config, s *store) error {
				return showSet(cmd.Context(), s.repo, cmd.OutOrStdout(), setID, time.Now())
			})
		},
	}
}

func showSet(ctx context.Context, repo wordset.SetRepository, out io.Writer, setID int64, now time.Time) error {
	set, err := findSet(ctx, repo, setID)
	if err != nil {
		return err
	}
	pairs, err := repo.FindPairsBySet(ctx, setID)
	if err != nil {
		return fmt.Errorf("FindPairsBySet(%d) > %w", setID, err)
	}

	_, _ = fmt.Fprintf(out, "%s (%s → %s)\n\n", set.Name, set.LanguageA, set.LanguageB)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTERM A\tTERM B\tCORRECT\tINCORRECT\tEASE\tINTERVAL\tNEXT REVIEW")
	for _, p := range pairs {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.2f\t%dd\t%s\n",
			p.ID, p.TermA, p.TermB, p.CorrectCount, p.IncorrectCount,
			p.EaseFactor, p.Interval, p.NextReview.Local().Format("2006-01-02"))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("w.Flush() > %w", err)
	}

	mastery := statistics.CalculateMastery(pairs, now)
	_, _ = fmt.Fprintf(out, "\n%d pairs: %d new, %d learning, %d mastered (%d%%), %d due\n",
		mastery.Total, mastery.New, mastery.Learning, mastery.Mastered, mastery.MasteredPercentage(), mastery.Due)
	if mastery.Correct+mastery.Incorrect > 0 {
		_, _ = fmt.Fprintf(out, "Accuracy %d%%, average ease %.2f\n", mastery.Accuracy(), mastery.AverageEase)
	}
	return nil
}

func newSetsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <set id> <name>",
		Short: "Rename a set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			return withStore(func(_ *config.Config, s *store) error {
				set, err := findSet(cmd.Context(), s.repo, setID)
				if err != nil {
					return err
				}
				set.Name = args[1]
				if err := s.repo.UpdateSet(cmd.Context(), set); err != nil {
					return fmt.Errorf("UpdateSet(%d) > %w", setID, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed set %d to %s\n", set.ID, set.Name)
				return nil
			})
		},
	}
}

func newSetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <set id>",
		Short: "Delete a set and its pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			return withStore(func(_ *config.Config, s *store) error {
				if err := s.repo.DeleteSet(cmd.Context(), setID); err != nil {
					return fmt.Errorf("DeleteSet(%d) > %w", setID, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted set %d\n", setID)
				return nil
			})
		},
	}
}

func newSetsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <set id>",
		Short: "Forget the progress of every pair in a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			return withStore(func(_ *config.Config, s *store) error {
				if _, err := findSet(cmd.Context(), s.repo, setID); err != nil {
					return err
				}
				if err := s.repo.ResetSetProgress(cmd.Context(), setID); err != nil {
					return fmt.Errorf("ResetSetProgress(%d) > %w", setID, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reset the progress of set %d\n", setID)
				return nil
			})
		},
	}
}

func newPairsCommand() *cobra.Command {
	pairsCommand := &cobra.Command{
		Use:   "pairs",
		Short: "Manage the word pairs of a set",
	}

	pairsCommand.AddCommand(
		&cobra.Command{
			Use:   "add <set id> <term a> <term b>",
			Short: "Add a pair to a set",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				setID, err := parseID("set", args[0])
				if err != nil {
					return err
				}
				return withStore(func(_ *config.Config, s *store) error {
					pair, err := addPair(cmd.Context(), s.repo, setID, args[1], args[2], time.Now())
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added pair %d: %s — %s\n", pair.ID, pair.TermA, pair.TermB)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "edit <set id> <pair id> <term a> <term b>",
			Short: "Change the terms of a pair",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				setID, err := parseID("set", args[0])
				if err != nil {
					return err
				}
				pairID, err := parseID("pair", args[1])
				if err != nil {
					return err
				}
				return withStore(func(_ *config.Config, s *store) error {
					pair, err := findPair(cmd.Context(), s.repo, setID, pairID)
					if err != nil {
						return err
					}
					pair.TermA, pair.TermB = args[2], args[3]
					if err := s.repo.UpdatePairTerms(cmd.Context(), pair); err != nil {
						return fmt.Errorf("UpdatePairTerms(%d) > %w", pairID, err)
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated pair %d: %s — %s\n", pair.ID, pair.TermA, pair.TermB)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete <set id> <pair id>",
			Short: "Delete a pair",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				setID, err := parseID("set", args[0])
				if err != nil {
					return err
				}
				pairID, err := parseID("pair", args[1])
				if err != nil {
					return err
				}
				return withStore(func(_ *config.Config, s *store) error {
					if _, err := findPair(cmd.Context(), s.repo, setID, pairID); err != nil {
						return err
					}
					if err := s.repo.DeletePair(cmd.Context(), pairID); err != nil {
						return fmt.Errorf("DeletePair(%d) > %w", pairID, err)
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted pair %d\n", pairID)
					return nil
				})
			},
		},
	)
	return pairsCommand
}

func addPair(ctx context.Context, repo wordset.SetRepository, setID int64, termA, termB string, now time.Time) (*wordset.WordPair, error) {
	if termA == "" || termB == "" {
		return nil, fmt.Errorf("both terms are required")
	}
	if _, err := findSet(ctx, repo, setID); err != nil {
		return nil, err
	}
	pair := wordset.NewWordPair(setID, termA, termB, now)
	if err := repo.CreatePair(ctx, &pair); err != nil {
		return nil, fmt.Errorf("CreatePair() > %w", err)
	}
	return &pair, nil
}
