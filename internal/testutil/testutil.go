// Package testutil provides shared test helpers for creating config files and word set fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reclamegraag/examiner/internal/config"
	"github.com/reclamegraag/examiner/internal/database"
	"github.com/reclamegraag/examiner/internal/datasync"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// SetupTestConfig creates a config file backed by a SQLite database and the
// output directories inside tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"pdf", "sets"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
outputs:
  pdf_directory: %s
  export_directory: %s
`,
		filepath.Join(tmpDir, "examiner.db"),
		filepath.Join(tmpDir, "pdf"),
		filepath.Join(tmpDir, "sets"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with fake model API keys for
// tests that require API key validation to pass.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\ngemini:\n  api_key: fake-key-for-testing\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// SetupBrokenConfigFile creates a config file with invalid YAML.
func SetupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// RequireSQLite skips the test when the sqlite3 driver was built without cgo.
func RequireSQLite(t *testing.T, tmpDir string) {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite, Path: filepath.Join(tmpDir, "probe.db")})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	if err := db.Ping(); err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite3 requires cgo")
	}
}

// CreateSetFile writes an exported set file with the given pairs into dir and
// returns its path.
func CreateSetFile(t *testing.T, dir string, set wordset.WordSet, pairs ...[2]string) string {
	t.Helper()

	file := &datasync.SetFile{WordSet: set}
	for _, p := range pairs {
		file.Pairs = append(file.Pairs, wordset.WordPair{TermA: p[0], TermB: p[1]})
	}
	path, err := datasync.WriteSetFileTo(dir, file)
	require.NoError(t, err)
	return path
}
