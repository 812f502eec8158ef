package inference

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// ErrEmptyResponse is returned when a model answers without usable pairs.
var ErrEmptyResponse = errors.New("empty response")

// Generator suggests word pairs for a theme.
type Generator interface {
	GeneratePairs(ctx context.Context, request GenerateRequest) ([]Pair, error)
}

// Transcriber reads word pairs from a photographed vocabulary list.
type Transcriber interface {
	TranscribePairs(ctx context.Context, request TranscribeRequest) ([]Pair, error)
}

// Pair is a suggested pair of terms.
type Pair struct {
	TermA string `json:"termA"`
	TermB string `json:"termB"`
}

// Difficulty is the vocabulary level requested from a generator.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// ParseDifficulty converts a flag value into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Description explains the difficulty to the model.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyBeginner:
		return "beginner (simple, frequently used words)"
	case DifficultyAdvanced:
		return "advanced (complex, less common words)"
	default:
		return "intermediate (school level, everyday vocabulary)"
	}
}

// GenerateRequest holds the parameters of a generation.
type GenerateRequest struct {
	Theme      string     `validate:"required"`
	LanguageA  string     `validate:"required"`
	LanguageB  string     `validate:"required,nefield=LanguageA"`
	Count      int        `validate:"min=1,max=100"`
	Difficulty Difficulty `validate:"oneof=beginner intermediate advanced"`
}

// TranscribeRequest holds an image of a vocabulary list and the languages of its columns.
type TranscribeRequest struct {
	Image     []byte `validate:"required"`
	MIMEType  string `validate:"required"`
	LanguageA string `validate:"required"`
	LanguageB string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the request before any model is called.
func (r GenerateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validate.Struct() > %w", err)
	}
	return nil
}

// Validate checks the request before any model is called.
func (r TranscribeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validate.Struct() > %w", err)
	}
	return nil
}

const (
	DefaultMaxRetryAttempts = 3
	// TranscribedConfidence is the confidence given to pairs read by a model,
	// which reports none of its own.
	TranscribedConfidence = 95
)
