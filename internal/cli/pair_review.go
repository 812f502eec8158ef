package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/reclamegraag/examiner/internal/ocr"
)

// PairReviewer lets the learner check pairs read from an image before they
// are imported.
type PairReviewer struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	yellow       *color.Color
}

// NewPairReviewer creates a PairReviewer on stdin and stdout.
func NewPairReviewer() *PairReviewer {
	return &PairReviewer{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		yellow:       color.New(color.FgYellow),
	}
}

// Review lists the recognized pairs and asks about every low-confidence
// pair. It returns the pairs to import: all of valid plus the kept or edited
// low-confidence pairs. Low-confidence pairs are skipped once stdin ends.
func (r *PairReviewer) Review(valid, lowConfidence []ocr.ParsedPair) ([]ocr.ParsedPair, error) {
	r.bold.Fprintf(r.stdoutWriter, "Recognized %d pair(s)\n", len(valid))
	for _, p := range valid {
		fmt.Fprintf(r.stdoutWriter, "  %s — %s\n", p.TermA, p.TermB)
	}
	if len(lowConfidence) == 0 {
		return valid, nil
	}

	r.yellow.Fprintf(r.stdoutWriter, "%d pair(s) were hard to read, please check them\n", len(lowConfidence))
	accepted := append([]ocr.ParsedPair(nil), valid...)
	for _, p := range lowConfidence {
		reviewed, keep, err := r.reviewPair(p)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if keep {
			accepted = append(accepted, reviewed)
		}
	}
	return accepted, nil
}

func (r *PairReviewer) reviewPair(p ocr.ParsedPair) (ocr.ParsedPair, bool, error) {
	for {
		fmt.Fprintf(r.stdoutWriter, "  %s — %s (%.0f%%)\n", p.TermA, p.TermB, p.Confidence)
		r.bold.Fprint(r.stdoutWriter, "  [k]eep, [e]dit or [s]kip? ")
		line, err := r.readLine()
		if err != nil {
			return p, false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "k", "keep":
			return p, true, nil
		case "s", "skip", "":
			return p, false, nil
		case "e", "edit":
			if p.TermA, err = r.readTerm("Term A", p.TermA); err != nil {
				return p, false, err
			}
			if p.TermB, err = r.readTerm("Term B", p.TermB); err != nil {
				return p, false, err
			}
			return p, p.TermA != "" && p.TermB != "", nil
		}
	}
}

// readTerm asks for a replacement and keeps current on an empty line.
func (r *PairReviewer) readTerm(label, current string) (string, error) {
	fmt.Fprintf(r.stdoutWriter, "  %s [%s]: ", label, current)
	line, err := r.readLine()
	if err != nil {
		return "", err
	}
	if value := strings.TrimSpace(line); value != "" {
		return value, nil
	}
	return current, nil
}

func (r *PairReviewer) readLine() (string, error) {
	line, err := r.stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
