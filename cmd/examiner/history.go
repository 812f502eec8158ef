package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/statistics"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func newHistoryCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "history <set id>",
		Short: "Show the practice sessions of a set",
		Args:  cobra.ExactArgs(1),
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
				sessions, err := s.repo.FindSessionsBySet(cmd.Context(), setID)
				if err != nil {
					return fmt.Errorf("FindSessionsBySet(%d) > %w", setID, err)
				}
				if limit > 0 && len(sessions) > limit {
					sessions = sessions[:limit]
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", set.Name)
				return printHistory(cmd.OutOrStdout(), sessions)
			})
		},
	}
	command.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show, 0 for all")
	return command
}

func printHistory(out io.Writer, sessions []wordset.PracticeSession) error {
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(out, "No sessions yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STARTED\tMODE\tSCORE\tANSWERS\tDURATION")
	for _, session := range sessions {
		score := 0
		if session.TotalQuestions > 0 {
			score = session.CorrectAnswers * 100 / session.TotalQuestions
		}
		duration := "-"
		if session.CompletedAt != nil {
			duration = session.CompletedAt.Sub(session.StartedAt).Round(time.Second).String()
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d/%d (%d%%)\t%d\t%s\n",
			session.StartedAt.Local().Format("2006-01-02 15:04"),
			session.Mode,
			session.CorrectAnswers, session.TotalQuestions, score,
			len(session.ReviewedPairs),
			duration)
	}
	return w.Flush()
}

func newStatsCommand() *cobra.Command {
	var (
		year  int
		month int
		setID int64
	)
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show practice statistics per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 0 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}
			return withStore(func(_ *config.Config, s *store) error {
				var (
					sessions []wordset.PracticeSession
					err      error
				)
				if setID > 0 {
					sessions, err = s.repo.FindSessionsBySet(cmd.Context(), setID)
				} else {
					sessions, err = s.repo.FindAllSessions(cmd.Context())
				}
				if err != nil {
					return fmt.Errorf("find sessions > %w", err)
				}
				return printStatistics(cmd.OutOrStdout(), statistics.CalculateStatistics(sessions, year, month))
			})
		},
	}
	command.Flags().IntVar(&year, "year", 0, "Only count sessions of this year")
	command.Flags().IntVar(&month, "month", 0, "Only count sessions of this month (1-12)")
	command.Flags().Int64Var(&setID, "set", 0, "Only count sessions of this set")
	return command
}

func printStatistics(out io.Writer, result statistics.StatisticsResult) error {
	if len(result.Periods) == 0 {
		_, _ = fmt.Fprintln(out, "No sessions in this period.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PERIOD\tSESSIONS\tANSWERS\tCORRECT\tACCURACY\tNEW\tREVIEWED")
	for _, p := range result.Periods {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d%%\t%d\t%d\n",
			p.Period, p.SessionsCount, p.Questions, p.Correct, p.Accuracy(), p.NewPairs, p.ReviewedPairs)
	}
	a := result.Aggregate
	_, _ = fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%d%%\t%d\t%d\n",
		a.SessionsCount, a.Questions, a.Correct, a.Accuracy(), a.NewPairs, a.ReviewedPairs)
	return w.Flush()
}
