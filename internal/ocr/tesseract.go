package ocr

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// runFunc runs a command with stdin and returns its stdout.
type runFunc func(ctx context.Context, name string, args []string, stdin []byte) ([]byte, error)

func runCommand(ctx context.Context, name string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// Tesseract recognizes text with the tesseract command line tool for one
// language (or a "+" joined set of languages). Runs are serialized.
type Tesseract struct {
	command  string
	language string
	run      runFunc

	mu sync.Mutex
}

// NewTesseract creates a recognizer for language using the given command.
func NewTesseract(command, language string) *Tesseract {
	if command == "" {
		command = "tesseract"
	}
	return &Tesseract{command: command, language: language, run: runCommand}
}

// Language returns the language the recognizer was created for.
func (t *Tesseract) Language() string {
	return t.language
}

// Recognize implements Recognizer.
func (t *Tesseract) Recognize(ctx context.Context, image Image) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slog.Default().Debug("running tesseract", "language", t.language, "bytes", len(image.Data))
	out, err := t.run(ctx, t.command, []string{"stdin", "stdout", "-l", t.language, "tsv"}, image.Data)
	if err != nil {
		return Result{}, fmt.Errorf("tesseract.run() > %w", err)
	}
	result, err := parseTSV(out)
	if err != nil {
		return Result{}, fmt.Errorf("parseTSV() > %w", err)
	}
	return result, nil
}

type lineKey struct {
	page, block, paragraph, line int
}

type lineWords struct {
	words      []string
	confidence float64
	scored     int
}

// parseTSV groups the word rows of tesseract's TSV output into lines. The
// confidence of a line is the mean confidence of its words.
func parseTSV(data []byte) (Result, error) {
	var (
		order []lineKey
		lines = make(map[lineKey]*lineWords)
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 12 || fields[0] != "5" {
			continue
		}
		text := strings.TrimSpace(fields[11])
		if text == "" {
			continue
		}

		var key lineKey
		for i, dst := range []*int{&key.page, &key.block, &key.paragraph, &key.line} {
			n, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return Result{}, fmt.Errorf("strconv.Atoi(%q) > %w", fields[i+1], err)
			}
			*dst = n
		}
		conf, err := strconv.ParseFloat(fields[10], 64)
		if err != nil {
			return Result{}, fmt.Errorf("strconv.ParseFloat(%q) > %w", fields[10], err)
		}

		lw, ok := lines[key]
		if !ok {
			lw = &lineWords{}
			lines[key] = lw
			order = append(order, key)
		}
		lw.words = append(lw.words, text)
		if conf >= 0 {
			lw.confidence += conf
			lw.scored++
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("scanner.Err() > %w", err)
	}

	var result Result
	var texts []string
	var total float64
	for _, key := range order {
		lw := lines[key]
		line := Line{Text: strings.Join(lw.words, " ")}
		if lw.scored > 0 {
			line.Confidence = lw.confidence / float64(lw.scored)
		}
		result.Lines = append(result.Lines, line)
		texts = append(texts, line.Text)
		total += line.Confidence
	}
	result.Text = strings.Join(texts, "\n")
	if len(result.Lines) > 0 {
		result.Confidence = total / float64(len(result.Lines))
	}
	return result, nil
}

// Pool keeps one recognizer per language so repeated imports reuse them.
type Pool struct {
	command string
	run     runFunc

	mu        sync.Mutex
	installed map[string]struct{}
	workers   map[string]*Tesseract
}

// NewPool creates a pool of tesseract recognizers.
func NewPool(command string) *Pool {
	if command == "" {
		command = "tesseract"
	}
	return &Pool{
		command: command,
		run:     runCommand,
		workers: make(map[string]*Tesseract),
	}
}

// Acquire returns the recognizer for language, creating it on first use.
// language may join several codes with "+".
func (p *Pool) Acquire(ctx context.Context, language string) (*Tesseract, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.workers[language]; ok {
		return w, nil
	}

	if p.installed == nil {
		installed, err := p.listLanguages(ctx)
		if err != nil {
			return nil, fmt.Errorf("listLanguages() > %w", err)
		}
		p.installed = installed
	}
	if language == "" {
		return nil, fmt.Errorf("%w: empty language", ErrUnsupportedLanguage)
	}
	for _, code := range strings.Split(language, "+") {
		if _, ok := p.installed[code]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
		}
	}

	w := &Tesseract{command: p.command, language: language, run: p.run}
	p.workers[language] = w
	slog.Default().Debug("created tesseract worker", "language", language, "workers", len(p.workers))
	return w, nil
}

// ReleaseAll forgets every recognizer.
func (p *Pool) ReleaseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.workers = make(map[string]*Tesseract)
}

// Size returns the number of recognizers in the pool.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

func (p *Pool) listLanguages(ctx context.Context) (map[string]struct{}, error) {
	out, err := p.run(ctx, p.command, []string{"--list-langs"}, nil)
	if err != nil {
		return nil, err
	}
	installed := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "List of available languages") {
			continue
		}
		installed[line] = struct{}{}
	}
	return installed, scanner.Err()
}
