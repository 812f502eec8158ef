package ocr

import (
	"context"
	"errors"
)

// ErrUnsupportedLanguage is returned when no OCR model is installed for a language.
var ErrUnsupportedLanguage = errors.New("unsupported OCR language")

//go:generate mockgen -source=recognizer.go -destination=../mocks/ocr/mock_recognizer.go -package=mock_ocr

// Recognizer extracts text lines from an image.
type Recognizer interface {
	Recognize(ctx context.Context, image Image) (Result, error)
}

// Image is an encoded picture.
type Image struct {
	Data     []byte
	MIMEType string
}

// Line is one recognized line of text. Confidence ranges from 0 to 100.
type Line struct {
	Text       string
	Confidence float64
}

// Result is the text recognized in an image.
type Result struct {
	Text       string
	Confidence float64
	Lines      []Line
}

// Extraction is the outcome of reading pairs from an image.
type Extraction struct {
	Result        Result
	Pairs         []ParsedPair
	LowConfidence []ParsedPair
}

// Extract recognizes the image and parses the lines into pairs, holding back
// pairs below threshold.
func Extract(ctx context.Context, recognizer Recognizer, image Image, threshold float64) (Extraction, error) {
	result, err := recognizer.Recognize(ctx, image)
	if err != nil {
		return Extraction{}, err
	}
	valid, low := Partition(ParseLines(result.Lines), threshold)
	return Extraction{
		Result:        result,
		Pairs:         valid,
		LowConfidence: low,
	}, nil
}
