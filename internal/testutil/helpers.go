// Package testutil provides shared helpers and stubs for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDataset writes a dataset file with the given lines and returns
// its path
func WriteDataset(t *testing.T, dir, name string, lines []string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write dataset %s: %v", path, err)
	}

	return path
}

// ReadDataset reads a dataset file back as lines
func ReadDataset(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read dataset %s: %v", path, err)
	}

	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
