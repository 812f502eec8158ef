package datasync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadSetFile decodes a set file. Unknown keys are rejected.
func ReadSetFile(r io.Reader) (*SetFile, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file SetFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoder.Decode() > %w", err)
	}
	return &file, nil
}

// WriteSetFile encodes a set file.
func WriteSetFile(w io.Writer, file *SetFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("enc.Encode() > %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("enc.Close() > %w", err)
	}
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// FileName returns a file name derived from the set name.
func FileName(name string) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "set"
	}
	return slug + ".yml"
}

// WriteSetFileTo writes the set file into outputDir and returns its path.
func WriteSetFileTo(outputDir string, file *SetFile) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outputDir, FileName(file.Name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteSetFile(f, file); err != nil {
		return "", fmt.Errorf("WriteSetFile(%s) > %w", path, err)
	}
	return path, nil
}
