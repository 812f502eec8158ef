package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/reclamegraag/examiner/internal/fuzzy"
	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// PracticeQuizCLI runs a practice session in flashcard, typing or
// multiple-choice mode, including the retry rounds over missed pairs.
type PracticeQuizCLI struct {
	*InteractiveQuizCLI
	session *practice.Session
	// retype asks for the correct answer after a wrong typed answer.
	retype    bool
	lastRound practice.Round
}

// NewPracticeQuizCLI creates a quiz CLI driving session.
func NewPracticeQuizCLI(base *InteractiveQuizCLI, session *practice.Session, retype bool) *PracticeQuizCLI {
	return &PracticeQuizCLI{
		InteractiveQuizCLI: base,
		session:            session,
		retype:             retype,
		lastRound:          session.Round(),
	}
}

// Session asks the current question. It returns errEnd once the learner is
// done with the finished session.
func (r *PracticeQuizCLI) Session(ctx context.Context) error {
	r.reportWriteErrors()

	q := r.session.CurrentQuestion()
	if q == nil {
		return r.finish(ctx)
	}

	r.printProgress()
	shownAt := r.now()
	r.showPrompt(ctx, q)

	var (
		resp practice.Response
		err  error
	)
	switch r.session.Mode() {
	case wordset.ModeTyping:
		resp, err = r.askTyped(q)
	case wordset.ModeMultipleChoice:
		resp, err = r.askChoice(q)
	default:
		resp, err = r.askFlashcard(q)
	}
	if err != nil {
		return endOnEOF(err)
	}
	resp.Elapsed = r.now().Sub(shownAt)

	r.session.Answer(resp)
	if r.recorder != nil {
		r.recorder.RecordAnswer(ctx, q.Pair, resp)
	}
	r.session.Advance()
	fmt.Fprintln(r.stdoutWriter)
	return nil
}

func (r *PracticeQuizCLI) printProgress() {
	round := r.session.Round()
	position, total := r.session.Position()
	if round == practice.RoundRetry && r.lastRound != practice.RoundRetry {
		r.yellow.Fprintf(r.stdoutWriter, "↻ Let's retry the %d word(s) you missed\n\n", total)
	}
	r.lastRound = round

	marker := ""
	if round == practice.RoundRetry {
		marker = "↻ "
	}
	fmt.Fprintf(r.stdoutWriter, "%s%d / %d\n", marker, position+1, total)
}

func (r *PracticeQuizCLI) askFlashcard(q *practice.Question) (practice.Response, error) {
	r.italic.Fprint(r.stdoutWriter, "Press Enter to show the answer")
	if _, err := r.readLine(); err != nil {
		return practice.Response{}, err
	}
	fmt.Fprintf(r.stdoutWriter, "Answer: %s\n", r.bold.Sprint(q.Expected))

	known, err := r.readYesNo("Did you know it?")
	if err != nil {
		return practice.Response{}, err
	}
	return practice.Response{Correct: known}, nil
}

func (r *PracticeQuizCLI) askTyped(q *practice.Question) (practice.Response, error) {
	input, err := r.readAnswer("Your answer: ")
	if err != nil {
		return practice.Response{}, err
	}

	grade := practice.GradeTyped(*q, input)
	if grade.Correct {
		message := "Correct"
		if grade.Feedback != "" {
			message = grade.Feedback
		}
		r.printCorrect(message)
		return practice.Response{Correct: true, Input: input}, nil
	}

	r.printIncorrect(grade.Feedback)
	if r.retype {
		if err := r.askRetype(q); err != nil {
			return practice.Response{}, err
		}
	}
	return practice.Response{Correct: false, Input: input}, nil
}

// askRetype repeats until the learner types the expected answer.
func (r *PracticeQuizCLI) askRetype(q *practice.Question) error {
	for {
		input, err := r.readAnswer("Type the correct answer: ")
		if err != nil {
			return err
		}
		if practice.AcceptRetype(*q, input) {
			r.green.Fprintln(r.stdoutWriter, "Well done!")
			return nil
		}
	}
}

func (r *PracticeQuizCLI) askChoice(q *practice.Question) (practice.Response, error) {
	for i, option := range q.Options {
		fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, option)
	}

	var choice string
	for {
		input, err := r.readAnswer("Your choice: ")
		if err != nil {
			return practice.Response{}, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && n >= 1 && n <= len(q.Options) {
			choice = q.Options[n-1]
			break
		}
		fmt.Fprintf(r.stdoutWriter, "Enter a number between 1 and %d.\n", len(q.Options))
	}

	if practice.GradeChoice(*q, choice) {
		r.printCorrect("Correct")
		return practice.Response{Correct: true, Input: choice}, nil
	}
	r.printIncorrect(fuzzy.Correction(q.Expected))
	return practice.Response{Correct: false, Input: choice}, nil
}

// finish saves the completed session and prints the score.
func (r *PracticeQuizCLI) finish(ctx context.Context) error {
	if r.recorder != nil {
		r.recorder.Wait()
		r.reportWriteErrors()
		if _, err := r.recorder.SaveSession(ctx, r.session); err != nil {
			r.yellow.Fprintf(r.stdoutWriter, "Warning: the session was not saved: %v\n", err)
		}
	}

	stats := r.session.Stats()
	r.bold.Fprintf(r.stdoutWriter, "Finished %s: %d%%\n", r.set.Name, stats.Percentage)
	fmt.Fprintf(r.stdoutWriter, "%d correct, %d incorrect out of %d\n", stats.Correct, stats.Incorrect, stats.Total)
	if r.session.Round() == practice.RoundRetry {
		r.italic.Fprintln(r.stdoutWriter, "Score of the first round; every missed word was retried until correct.")
	}

	again, err := r.askAgain()
	if err != nil {
		return err
	}
	if !again {
		return errEnd
	}
	r.session.Reset()
	r.lastRound = r.session.Round()
	fmt.Fprintln(r.stdoutWriter)
	return nil
}
