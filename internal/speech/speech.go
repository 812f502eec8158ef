// Package speech reads terms aloud through a text-to-speech command.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/reclamegraag/examiner/internal/language"
)

// ErrUnavailable is returned when no speech command is installed.
var ErrUnavailable = errors.New("speech synthesis unavailable")

//go:generate mockgen -source=speech.go -destination=../mocks/speech/mock_speech.go -package=mock_speech

// Speaker speaks text in a language.
type Speaker interface {
	Speak(ctx context.Context, text string, lang language.Language) error
	Available() bool
}

type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// CommandSpeaker runs espeak, espeak-ng or say. Cancelling the context stops
// the running command.
type CommandSpeaker struct {
	command  string
	run      runFunc
	lookPath func(string) (string, error)
}

func NewCommandSpeaker(command string) *CommandSpeaker {
	return &CommandSpeaker{
		command:  command,
		run:      runCommand,
		lookPath: exec.LookPath,
	}
}

// Available reports whether the command can be found.
func (s *CommandSpeaker) Available() bool {
	if s.command == "" {
		return false
	}
	_, err := s.lookPath(s.command)
	return err == nil
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string, lang language.Language) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if !s.Available() {
		return fmt.Errorf("%s: %w", s.command, ErrUnavailable)
	}

	if err := s.run(ctx, s.command, s.args(text, lang)...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run() > %w", err)
	}
	return nil
}

func (s *CommandSpeaker) args(text string, lang language.Language) []string {
	switch filepath.Base(s.command) {
	case "say":
		// say picks a voice from the system language
		return []string{text}
	default:
		return []string{"-v", voice(lang), text}
	}
}

// voice converts a speech code such as "en-GB" into an espeak voice name.
func voice(lang language.Language) string {
	if lang.SpeechCode == "" {
		return lang.Code
	}
	return strings.ToLower(lang.SpeechCode)
}

// Silent never speaks. It is used when speech is disabled.
type Silent struct{}

func (Silent) Speak(context.Context, string, language.Language) error { return nil }
func (Silent) Available() bool                                        { return false }
