package cli

import (
	"context"
	"fmt"

	"github.com/reclamegraag/examiner/internal/practice"
)

// DrillQuizCLI runs the quick mode: a card is shown until the learner
// knows it, and missed cards come back at the end of the queue.
type DrillQuizCLI struct {
	*InteractiveQuizCLI
	drill *practice.Drill
}

// NewDrillQuizCLI creates a quiz CLI driving drill.
func NewDrillQuizCLI(base *InteractiveQuizCLI, drill *practice.Drill) *DrillQuizCLI {
	return &DrillQuizCLI{
		InteractiveQuizCLI: base,
		drill:              drill,
	}
}

// Session asks the card at the front of the queue.
func (r *DrillQuizCLI) Session(ctx context.Context) error {
	r.reportWriteErrors()

	q := r.drill.CurrentQuestion()
	if q == nil {
		return r.finish()
	}

	mastered, total := r.drill.Progress()
	fmt.Fprintf(r.stdoutWriter, "%d / %d mastered\n", mastered, total)
	r.showPrompt(ctx, q)

	r.italic.Fprint(r.stdoutWriter, "Press Enter to show the answer")
	if _, err := r.readLine(); err != nil {
		return endOnEOF(err)
	}
	fmt.Fprintf(r.stdoutWriter, "Answer: %s\n", r.bold.Sprint(q.Expected))

	known, err := r.readYesNo("Did you know it?")
	if err != nil {
		return endOnEOF(err)
	}
	if r.recorder != nil {
		r.recorder.RecordDrillAnswer(ctx, q.Pair, known)
	}
	r.drill.Answer(known)
	fmt.Fprintln(r.stdoutWriter)
	return nil
}

func (r *DrillQuizCLI) finish() error {
	if r.recorder != nil {
		r.recorder.Wait()
		r.reportWriteErrors()
	}

	mastered, total := r.drill.Progress()
	stats := r.drill.Stats()
	r.bold.Fprintln(r.stdoutWriter, "All done!")
	fmt.Fprintf(r.stdoutWriter, "%d of %d words mastered\n", mastered, total)
	fmt.Fprintf(r.stdoutWriter, "%d correct, %d incorrect\n", stats.Correct, stats.Incorrect)

	again, err := r.askAgain()
	if err != nil {
		return err
	}
	if !again {
		return errEnd
	}
	r.drill.Reset()
	fmt.Fprintln(r.stdoutWriter)
	return nil
}
