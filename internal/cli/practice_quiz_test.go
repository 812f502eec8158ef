package cli

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reclamegraag/examiner/internal/fuzzy"
	mock_wordset "github.com/reclamegraag/examiner/internal/mocks/wordset"
	"github.com/reclamegraag/examiner/internal/practice"
	"github.com/reclamegraag/examiner/internal/wordset"
)

func newTestPair(id int64, termA, termB string) *wordset.WordPair {
	pair := wordset.NewWordPair(1, termA, termB, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	pair.ID = id
	return &pair
}

func newTestSession(mode wordset.PracticeMode, pairs ...*wordset.WordPair) *practice.Session {
	return practice.NewSession(1, pairs, practice.Config{
		Mode:      mode,
		Direction: practice.DirectionAToB,
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
}

// runSessions calls Session until it stops returning nil.
func runSessions(t *testing.T, quiz Session) error {
	t.Helper()
	for i := 0; i < 50; i++ {
		if err := quiz.Session(context.Background()); err != nil {
			return err
		}
	}
	t.Fatal("quiz did not end")
	return nil
}

func TestPracticeQuizCLI_Session(t *testing.T) {
	tests := []struct {
		name          string
		mode          wordset.PracticeMode
		retype        bool
		pairs         []*wordset.WordPair
		input         string
		wantWrites    int
		wantSaved     bool
		wantStdout    []string
		validate      func(t *testing.T, record *wordset.PracticeSession)
		validatePairs func(t *testing.T, pairs []*wordset.WordPair)
	}{
		{
			name:       "flashcard known",
			mode:       wordset.ModeFlashcard,
			pairs:      []*wordset.WordPair{newTestPair(1, "kat", "cat")},
			input:      "\ny\nn\n",
			wantWrites: 1,
			wantSaved:  true,
			wantStdout: []string{"1 / 1", "kat", "Answer: cat", "Finished Animals: 100%"},
			validate: func(t *testing.T, record *wordset.PracticeSession) {
				assert.Equal(t, wordset.ModeFlashcard, record.Mode)
				assert.Equal(t, 1, record.TotalQuestions)
				assert.Equal(t, 1, record.CorrectAnswers)
				require.Len(t, record.ReviewedPairs, 1)
				assert.True(t, record.ReviewedPairs[0].Correct)
				assert.NotNil(t, record.CompletedAt)
			},
			validatePairs: func(t *testing.T, pairs []*wordset.WordPair) {
				assert.Equal(t, 1, pairs[0].CorrectCount)
				assert.Equal(t, 1, pairs[0].Interval)
			},
		},
		{
			name:       "typing with accent hint",
			mode:       wordset.ModeTyping,
			pairs:      []*wordset.WordPair{newTestPair(1, "coffee", "café")},
			input:      "\ncafe\nn\n",
			wantWrites: 1,
			wantSaved:  true,
			wantStdout: []string{"Watch the accents", "100%"},
			validate: func(t *testing.T, record *wordset.PracticeSession) {
				require.Len(t, record.ReviewedPairs, 1)
				assert.Equal(t, "cafe", record.ReviewedPairs[0].UserAnswer)
				assert.True(t, record.ReviewedPairs[0].Correct)
			},
		},
		{
			name:       "typing mistake is retyped and retried",
			mode:       wordset.ModeTyping,
			retype:     true,
			pairs:      []*wordset.WordPair{newTestPair(1, "kat", "cat")},
			input:      "dog\ncatt\ncat\ncat\nn\n",
			wantWrites: 2,
			wantSaved:  true,
			wantStdout: []string{
				"Wrong. The correct answer is: cat",
				"Well done!",
				"↻ Let's retry the 1 word(s) you missed",
				"↻ 1 / 1",
				"Finished Animals: 0%",
				"Score of the first round",
			},
			validate: func(t *testing.T, record *wordset.PracticeSession) {
				assert.Equal(t, 1, record.TotalQuestions)
				assert.Equal(t, 0, record.CorrectAnswers)
				assert.Equal(t, 1, record.IncorrectAnswers)
				require.Len(t, record.ReviewedPairs, 2)
				assert.False(t, record.ReviewedPairs[0].Correct)
				assert.Equal(t, "dog", record.ReviewedPairs[0].UserAnswer)
				assert.True(t, record.ReviewedPairs[1].Correct)
			},
			validatePairs: func(t *testing.T, pairs []*wordset.WordPair) {
				assert.Equal(t, 1, pairs[0].CorrectCount)
				assert.Equal(t, 1, pairs[0].IncorrectCount)
			},
		},
		{
			name:       "typing near miss without retype",
			mode:       wordset.ModeTyping,
			pairs:      []*wordset.WordPair{newTestPair(1, "kat", "cat")},
			input:      "catt\ncat\nn\n",
			wantWrites: 2,
			wantSaved:  true,
			wantStdout: []string{"Almost! The answer is: cat"},
		},
		{
			name:       "end of input discards the session",
			mode:       wordset.ModeTyping,
			pairs:      []*wordset.WordPair{newTestPair(1, "kat", "cat")},
			input:      "\n",
			wantWrites: 0,
			wantSaved:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_wordset.NewMockRepository(ctrl)
			repo.EXPECT().
				UpdatePairProgress(gomock.Any(), int64(1), gomock.Any()).
				Return(nil).
				Times(tt.wantWrites)

			var saved *wordset.PracticeSession
			if tt.wantSaved {
				repo.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, session *wordset.PracticeSession) error {
						saved = session
						return nil
					})
			}

			recorder := practice.NewRecorder(repo, 0)
			base, stdout := newTestInteractiveQuizCLI(t, tt.input, recorder)
			quiz := NewPracticeQuizCLI(base, newTestSession(tt.mode, tt.pairs...), tt.retype)

			err := runSessions(t, quiz)
			recorder.Wait()
			assert.ErrorIs(t, err, errEnd)

			for _, want := range tt.wantStdout {
				assert.Contains(t, stdout.String(), want)
			}
			if tt.validate != nil {
				require.NotNil(t, saved)
				tt.validate(t, saved)
			}
			if tt.validatePairs != nil {
				tt.validatePairs(t, tt.pairs)
			}
		})
	}
}

func TestPracticeQuizCLI_MultipleChoice(t *testing.T) {
	pairs := []*wordset.WordPair{
		newTestPair(1, "kat", "cat"),
		newTestPair(2, "hond", "dog"),
		newTestPair(3, "paard", "horse"),
	}

	ctrl := gomock.NewController(t)
	repo := mock_wordset.NewMockRepository(ctrl)
	repo.EXPECT().UpdatePairProgress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

	recorder := practice.NewRecorder(repo, 0)
	base, stdout := newTestInteractiveQuizCLI(t, "", recorder)
	session := newTestSession(wordset.ModeMultipleChoice, pairs...)
	quiz := NewPracticeQuizCLI(base, session, false)

	for i := 0; i < len(pairs); i++ {
		q := session.CurrentQuestion()
		require.NotNil(t, q)
		require.Len(t, q.Options, 3)

		answer := 0
		for j, option := range q.Options {
			if option == q.Expected {
				answer = j + 1
			}
		}
		// An out of range choice is asked again.
		base.stdinReader.Reset(strings.NewReader("9\n" + strconv.Itoa(answer) + "\n"))
		require.NoError(t, quiz.Session(context.Background()))
	}

	base.stdinReader.Reset(strings.NewReader("n\n"))
	assert.ErrorIs(t, quiz.Session(context.Background()), errEnd)
	recorder.Wait()

	assert.Contains(t, stdout.String(), "Enter a number between 1 and 3.")
	assert.Contains(t, stdout.String(), "Finished Animals: 100%")
	assert.Equal(t, practice.Stats{Correct: 3, Total: 3, Percentage: 100}, session.Stats())
}

func TestPracticeQuizCLI_MultipleChoiceWrongPick(t *testing.T) {
	pairs := []*wordset.WordPair{
		newTestPair(1, "kat", "cat"),
		newTestPair(2, "hond", "dog"),
	}

	ctrl := gomock.NewController(t)
	repo := mock_wordset.NewMockRepository(ctrl)
	repo.EXPECT().UpdatePairProgress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	recorder := practice.NewRecorder(repo, 0)
	base, stdout := newTestInteractiveQuizCLI(t, "", recorder)
	session := newTestSession(wordset.ModeMultipleChoice, pairs...)
	quiz := NewPracticeQuizCLI(base, session, false)

	q := session.CurrentQuestion()
	require.NotNil(t, q)
	wrong := 1
	if q.Options[0] == q.Expected {
		wrong = 2
	}
	base.stdinReader.Reset(strings.NewReader(strconv.Itoa(wrong) + "\n"))
	require.NoError(t, quiz.Session(context.Background()))
	recorder.Wait()

	assert.Contains(t, stdout.String(), fuzzy.Correction(q.Expected))
	assert.Equal(t, practice.Stats{Incorrect: 1, Total: 1}, session.Stats())
}

func TestPracticeQuizCLI_PracticeAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_wordset.NewMockRepository(ctrl)
	repo.EXPECT().UpdatePairProgress(gomock.Any(), int64(1), gomock.Any()).Return(nil).Times(3)

	var uuids []string
	repo.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *wordset.PracticeSession) error {
			uuids = append(uuids, session.UUID)
			return nil
		}).
		Times(2)

	recorder := practice.NewRecorder(repo, 0)
	base, stdout := newTestInteractiveQuizCLI(t, "\ny\ny\n\nn\n\ny\nn\n", recorder)
	quiz := NewPracticeQuizCLI(base, newTestSession(wordset.ModeFlashcard, newTestPair(1, "kat", "cat")), false)

	assert.ErrorIs(t, runSessions(t, quiz), errEnd)
	recorder.Wait()

	require.Len(t, uuids, 2)
	assert.NotEqual(t, uuids[0], uuids[1])
	assert.Contains(t, stdout.String(), "Finished Animals: 0%")
}

func TestPracticeQuizCLI_SaveFailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_wordset.NewMockRepository(ctrl)
	repo.EXPECT().UpdatePairProgress(gomock.Any(), int64(1), gomock.Any()).Return(errors.New("disk full"))
	repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	recorder := practice.NewRecorder(repo, 0)
	base, stdout := newTestInteractiveQuizCLI(t, "\ny\nn\n", recorder)
	quiz := NewPracticeQuizCLI(base, newTestSession(wordset.ModeFlashcard, newTestPair(1, "kat", "cat")), false)

	assert.ErrorIs(t, runSessions(t, quiz), errEnd)
	assert.Contains(t, stdout.String(), "Warning: progress was not saved")
	assert.Contains(t, stdout.String(), "Warning: the session was not saved")
	assert.Contains(t, stdout.String(), "Finished Animals: 100%")
}
