package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/reclamegraag/examiner/internal/language"
	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/speech"
	"github.com/reclamegraag/examiner/internal/wordset"
)

var errEnd = errors.New("end")

// InteractiveQuizCLI contains shared logic for interactive quiz CLIs
type InteractiveQuizCLI struct {
	set          wordset.WordSet
	languageA    language.Language
	languageB    language.Language
	speaker      speech.Speaker
	recorder     *practice.Recorder
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
	yellow       *color.Color
	now          func() time.Time
}

// NewInteractiveQuizCLI creates the base CLI for practicing set.
// A nil speaker disables pronunciation.
func NewInteractiveQuizCLI(
	set wordset.WordSet,
	speaker speech.Speaker,
	recorder *practice.Recorder,
) *InteractiveQuizCLI {
	if speaker == nil {
		speaker = speech.Silent{}
	}
	return &InteractiveQuizCLI{
		set:          set,
		languageA:    setLanguage(set.LanguageA),
		languageB:    setLanguage(set.LanguageB),
		speaker:      speaker,
		recorder:     recorder,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
		yellow:       color.New(color.FgYellow),
		now:          time.Now,
	}
}

func setLanguage(code string) language.Language {
	if l, ok := language.ByCode(code); ok {
		return l
	}
	return language.Language{Code: code, Name: code}
}

//go:generate mockgen -source=interactive_quiz_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(ctx context.Context) error
}

func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine reads one line from stdin without the trailing newline.
// A final line without a newline is returned before io.EOF.
func (cli *InteractiveQuizCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readAnswer reads lines until a non-blank one is entered.
func (cli *InteractiveQuizCLI) readAnswer(prompt string) (string, error) {
	for {
		cli.bold.Fprint(cli.stdoutWriter, prompt)
		line, err := cli.readLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

// readYesNo asks until the learner answers y or n.
func (cli *InteractiveQuizCLI) readYesNo(prompt string) (bool, error) {
	for {
		cli.bold.Fprintf(cli.stdoutWriter, "%s [y/n]: ", prompt)
		line, err := cli.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(cli.stdoutWriter, "Please answer y or n.")
	}
}

// askAgain offers to restart after a finished run. EOF counts as no.
func (cli *InteractiveQuizCLI) askAgain() (bool, error) {
	again, err := cli.readYesNo("Practice again?")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	return again, err
}

// endOnEOF turns the end of stdin into a normal end of the quiz.
func endOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return errEnd
	}
	return err
}

// showPrompt prints the side of the pair being asked and pronounces it.
func (cli *InteractiveQuizCLI) showPrompt(ctx context.Context, q *practice.Question) {
	lang := cli.languageA
	if q.Reversed {
		lang = cli.languageB
	}
	cli.italic.Fprintf(cli.stdoutWriter, "%s: ", lang.Name)
	cli.bold.Fprintln(cli.stdoutWriter, q.Prompt)
	cli.speak(ctx, q.Prompt, lang)
}

func (cli *InteractiveQuizCLI) speak(ctx context.Context, text string, lang language.Language) {
	if !cli.speaker.Available() {
		return
	}
	if err := cli.speaker.Speak(ctx, text, lang); err != nil {
		slog.Default().Debug("failed to speak", "text", text, "language", lang.Code, "error", err)
	}
}

func (cli *InteractiveQuizCLI) printCorrect(message string) {
	cli.green.Fprint(cli.stdoutWriter, "✅ ")
	cli.green.Fprintln(cli.stdoutWriter, message)
}

func (cli *InteractiveQuizCLI) printIncorrect(message string) {
	cli.red.Fprint(cli.stdoutWriter, "❌ ")
	cli.red.Fprintln(cli.stdoutWriter, message)
}

// reportWriteErrors prints background persistence failures without blocking.
func (cli *InteractiveQuizCLI) reportWriteErrors() {
	if cli.recorder == nil {
		return
	}
	for {
		select {
		case err := <-cli.recorder.Errors():
			cli.yellow.Fprintf(cli.stdoutWriter, "Warning: progress was not saved: %v\n", err)
		default:
			return
		}
	}
}
