package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reclamegraag/examiner/internal/language"
	mock_cli "github.com/reclamegraag/examiner/internal/mocks/cli"
	mock_speech "github.com/reclamegraag/examiner/internal/mocks/speech"
	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/wordset"
)

var testSet = wordset.WordSet{ID: 1, Name: "Animals", LanguageA: "nl", LanguageB: "en"}

func newTestInteractiveQuizCLI(t *testing.T, input string, recorder *practice.Recorder) (*InteractiveQuizCLI, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	stdout := &bytes.Buffer{}
	cli := NewInteractiveQuizCLI(testSet, nil, recorder)
	cli.stdinReader = bufio.NewReader(strings.NewReader(input))
	cli.stdoutWriter = stdout
	fixed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cli.now = func() time.Time { return fixed }
	return cli, stdout
}

func TestInteractiveQuizCLI_Run(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mock_cli.MockSession)
		cancelAfter time.Duration
		wantErr     bool
	}{
		{
			name: "Session returns error",
			setupMock: func(mockSession *mock_cli.MockSession) {
				mockSession.EXPECT().
					Session(gomock.Any()).
					Return(errors.New("mock session error")).
					Times(1)
			},
			wantErr: true,
		},
		{
			name: "Session ends",
			setupMock: func(mockSession *mock_cli.MockSession) {
				gomock.InOrder(
					mockSession.EXPECT().Session(gomock.Any()).Return(nil),
					mockSession.EXPECT().Session(gomock.Any()).Return(errEnd),
				)
			},
			wantErr: false,
		},
		{
			name: "Context cancelled before first session",
			setupMock: func(mockSession *mock_cli.MockSession) {
				// May or may not be called depending on timing
				mockSession.EXPECT().
					Session(gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			cancelAfter: 1 * time.Millisecond,
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockSession := mock_cli.NewMockSession(ctrl)
			tt.setupMock(mockSession)

			cli, _ := newTestInteractiveQuizCLI(t, "", nil)

			ctx := context.Background()
			if tt.cancelAfter > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.cancelAfter)
				defer cancel()
			}

			err := cli.Run(ctx, mockSession)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInteractiveQuizCLI_readYesNo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr error
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "long no", input: "No\n", want: false},
		{name: "asks again on other input", input: "maybe\n\nyes\n", want: true},
		{name: "last line without newline", input: "n", want: false},
		{name: "end of input", input: "", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newTestInteractiveQuizCLI(t, tt.input, nil)

			got, err := cli.readYesNo("Did you know it?")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInteractiveQuizCLI_showPrompt(t *testing.T) {
	tests := []struct {
		name     string
		reversed bool
		wantLang string
	}{
		{name: "term A is spoken in language A", reversed: false, wantLang: "nl"},
		{name: "term B is spoken in language B", reversed: true, wantLang: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			speaker := mock_speech.NewMockSpeaker(ctrl)
			speaker.EXPECT().Available().Return(true)
			speaker.EXPECT().
				Speak(gomock.Any(), "kat", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, lang language.Language) error {
					assert.Equal(t, tt.wantLang, lang.Code)
					return errors.New("no voice")
				})

			cli, stdout := newTestInteractiveQuizCLI(t, "", nil)
			cli.speaker = speaker

			cli.showPrompt(context.Background(), &practice.Question{Prompt: "kat", Reversed: tt.reversed})
			assert.Contains(t, stdout.String(), "kat")
		})
	}
}

func TestInteractiveQuizCLI_showPrompt_SpeakerUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	speaker := mock_speech.NewMockSpeaker(ctrl)
	speaker.EXPECT().Available().Return(false)

	cli, stdout := newTestInteractiveQuizCLI(t, "", nil)
	cli.speaker = speaker

	cli.showPrompt(context.Background(), &practice.Question{Prompt: "hond"})
	assert.Equal(t, "Dutch: hond\n", stdout.String())
}
