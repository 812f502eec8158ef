package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/reclamegraag/examiner/internal/cli"
	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/reminder"
)

func newRemindCommand() *cobra.Command {
	var (
		every string
		once  bool
	)
	command := &cobra.Command{
		Use:   "remind",
		Short: "Print a reminder whenever words are due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(cfg *config.Config, s *store) error {
				if every == "" {
					every = cfg.Reminder.Every
				}
				interval, err := parseInterval(every)
				if err != nil {
					return err
				}

				scheduler := reminder.New(s.repo, cli.NewReminderPrinter(cmd.OutOrStdout()))
				if once {
					return scheduler.Check(cmd.Context())
				}

				ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer cancel()
				if err := scheduler.Start(ctx, interval); err != nil {
					return fmt.Errorf("scheduler.Start() > %w", err)
				}
				defer scheduler.Stop()

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Checking for due words every %s, press Ctrl+C to stop\n", interval)
				<-ctx.Done()
				return nil
			})
		},
	}
	command.Flags().StringVar(&every, "every", "", "Interval between checks, reminder.every when empty")
	command.Flags().BoolVar(&once, "once", false, "Check once and exit")
	return command
}

func parseInterval(s string) (time.Duration, error) {
	interval, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	if interval < time.Minute {
		return 0, fmt.Errorf("invalid interval %q: must be at least 1m", s)
	}
	return interval, nil
}
