package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines reads a dataset file and returns its lines. A trailing
// newline does not produce a phantom empty line, and Windows line
// endings are tolerated. A file holding only a newline is one blank
// line, not an empty dataset.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	if len(content) == 0 {
		return nil, nil
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n"), nil
}

// ReadExisting reads a partial output file for resume bookkeeping. A
// missing file means a fresh run, not an error.
func ReadExisting(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return lines, nil
}

// Chunk splits lines into order-preserving chunks of at most size lines.
// The last chunk may be short.
func Chunk(lines []string, size int) [][]string {
	if size < 1 || len(lines) == 0 {
		return nil
	}

	var chunks [][]string
	for start := 0; start < len(lines); start += size {
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}

// WriteLines rewrites the whole output file with the given lines and a
// trailing newline, creating parent directories as needed.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}

	return nil
}

// AllBlank reports whether every line is empty or whitespace-only.
func AllBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
