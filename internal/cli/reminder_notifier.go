package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/reclamegraag/examiner/internal/reminder"
)

// ReminderPrinter writes due-review reminders to a terminal.
type ReminderPrinter struct {
	writer io.Writer
	bold   *color.Color
	now    func() time.Time
}

// NewReminderPrinter creates a ReminderPrinter on w.
func NewReminderPrinter(w io.Writer) *ReminderPrinter {
	return &ReminderPrinter{
		writer: w,
		bold:   color.New(color.Bold, color.FgYellow),
		now:    time.Now,
	}
}

// Notify implements reminder.Notifier.
func (p *ReminderPrinter) Notify(_ context.Context, due []reminder.DueSet) error {
	if len(due) == 0 {
		return nil
	}
	if _, err := p.bold.Fprintf(p.writer, "⏰ %s: words are waiting for review\n", p.now().Format("15:04")); err != nil {
		return fmt.Errorf("bold.Fprintf() > %w", err)
	}
	for _, d := range due {
		if _, err := fmt.Fprintf(p.writer, "  %s (#%d): %d due\n", d.Set.Name, d.Set.ID, d.Due); err != nil {
			return fmt.Errorf("fmt.Fprintf() > %w", err)
		}
	}
	return nil
}
