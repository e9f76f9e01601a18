package testutil

import (
	"context"
	"strings"
)

// StubTranslator is a deterministic Translator for tests. Each line is
// translated by prefixing it, and every batch is recorded.
type StubTranslator struct {
	Prefix  string
	Batches [][]string
	Errors  []error // consumed one per call, nil entries succeed
}

// TranslateBatch records the batch and returns prefixed lines
func (s *StubTranslator) TranslateBatch(ctx context.Context, lines []string) ([]string, error) {
	batch := make([]string, len(lines))
	copy(batch, lines)
	s.Batches = append(s.Batches, batch)

	if len(s.Errors) > 0 {
		err := s.Errors[0]
		s.Errors = s.Errors[1:]
		if err != nil {
			return nil, err
		}
	}

	prefix := s.Prefix
	if prefix == "" {
		prefix = "vi: "
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		out[i] = prefix + line
	}
	return out, nil
}

// Name returns the provider name
func (s *StubTranslator) Name() string { return "stub" }

// IsAvailable always succeeds
func (s *StubTranslator) IsAvailable() error { return nil }

// Calls returns the number of API batches the stub has served
func (s *StubTranslator) Calls() int { return len(s.Batches) }
