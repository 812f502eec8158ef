package main

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/reclamegraag/examiner/internal/cli"
	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/reminder"
	"github.com/reclamegraag/examiner/internal/speech"
	"github.com/reclamegraag/examiner/internal/srs"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func newPracticeCommand() *cobra.Command {
	var (
		mode      ModeFlag
		direction DirectionFlag
		dueOnly   bool
		noRetype  bool
	)
	command := &cobra.Command{
		Use:   "practice <set id>",
		Short: "Practice the pairs of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID("set", args[0])
			if err != nil {
				return err
			}
			return withStore(func(cfg *config.Config, s *store) error {
				options := practiceOptions{
					mode:      wordset.PracticeMode(cfg.Practice.DefaultMode),
					direction: practice.Direction(cfg.Practice.DefaultDirection),
					dueOnly:   dueOnly,
					retype:    cfg.Practice.TypingRetype && !noRetype,
				}
				if cmd.Flags().Changed("mode") {
					options.mode = wordset.PracticeMode(mode)
				}
				if cmd.Flags().Changed("direction") {
					options.direction = practice.Direction(direction)
				}
				return runPractice(cmd.Context(), cfg, s, setID, options)
			})
		},
	}
	command.Flags().Var(&mode, "mode", "Practice mode. Options: flashcard, typing, multiple-choice, quick")
	command.Flags().Var(&direction, "direction", "Question direction. Options: a-to-b, b-to-a, random")
	command.Flags().BoolVar(&dueOnly, "due", false, "Only practice pairs that are due for review")
	command.Flags().BoolVar(&noRetype, "no-retype", false, "Do not ask to retype a wrong answer in typing mode")
	return command
}

type practiceOptions struct {
	mode      wordset.PracticeMode
	direction practice.Direction
	dueOnly   bool
	retype    bool
}

func runPractice(ctx context.Context, cfg *config.Config, s *store, setID int64, options practiceOptions) error {
	set, err := findSet(ctx, s.repo, setID)
	if err != nil {
		return err
	}
	pairs, err := s.repo.FindPairsBySet(ctx, setID)
	if err != nil {
		return fmt.Errorf("FindPairsBySet(%d) > %w", setID, err)
	}
	now := time.Now()
	selected := selectPairs(pairs, options.dueOnly, now)
	if len(selected) == 0 {
		if options.dueOnly {
			fmt.Println("Nothing is due for review in this set.")
		} else {
			fmt.Println("This set has no pairs yet.")
		}
		return nil
	}

	var written atomic.Int64
	unsubscribe := s.repo.Subscribe(func(_ context.Context, change wordset.Change) {
		if change.Kind == wordset.ChangePair {
			written.Add(1)
		}
	})
	defer unsubscribe()

	var speaker speech.Speaker = speech.Silent{}
	if cfg.Speech.Enabled {
		speaker = speech.NewCommandSpeaker(cfg.Speech.Command)
	}
	recorder := practice.NewRecorder(s.repo, cfg.Practice.RetryAttempts)
	base := cli.NewInteractiveQuizCLI(*set, speaker, recorder)

	sessionConfig := newSessionConfig(pairs, options, now)
	var quiz cli.Session
	if options.mode == wordset.ModeQuick {
		quiz = cli.NewDrillQuizCLI(base, practice.NewDrill(setID, selected, sessionConfig))
	} else {
		quiz = cli.NewPracticeQuizCLI(base, practice.NewSession(setID, selected, sessionConfig), options.retype)
	}

	fmt.Printf("Practicing %s: %d pair(s), %s mode, %s\n\n", set.Name, len(selected), options.mode, options.direction)
	runErr := base.Run(ctx, quiz)
	recorder.Wait()
	fmt.Printf("Saved progress for %d answer(s)\n", written.Load())
	return runErr
}

// newSessionConfig draws multiple-choice distractors from the whole set, so a
// due-only run still offers the other answers of the set.
func newSessionConfig(pairs []wordset.WordPair, options practiceOptions, now time.Time) practice.Config {
	return practice.Config{
		Mode:        options.mode,
		Direction:   options.direction,
		Distractors: selectPairs(pairs, false, now),
	}
}

// selectPairs returns pointers to the pairs to practice. With dueOnly the
// pairs due at now are returned, most overdue first.
func selectPairs(pairs []wordset.WordPair, dueOnly bool, now time.Time) []*wordset.WordPair {
	if !dueOnly {
		selected := make([]*wordset.WordPair, len(pairs))
		for i := range pairs {
			selected[i] = &pairs[i]
		}
		return selected
	}

	indices := srs.DueForReview(pairs, now)
	selected := make([]*wordset.WordPair, len(indices))
	for i, index := range indices {
		selected[i] = &pairs[index]
	}
	return selected
}

func newDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List the sets with pairs due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(_ *config.Config, s *store) error {
				due, err := reminder.DueSets(cmd.Context(), s.repo, time.Now())
				if err != nil {
					return fmt.Errorf("reminder.DueSets() > %w", err)
				}
				return printDueSets(cmd.OutOrStdout(), due)
			})
		},
	}
}

func printDueSets(out io.Writer, due []reminder.DueSet) error {
	if len(due) == 0 {
		_, _ = fmt.Fprintln(out, "Nothing is due for review.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tDUE")
	for _, d := range due {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\n", d.Set.ID, d.Set.Name, d.Due)
	}
	return w.Flush()
}
