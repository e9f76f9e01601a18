package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// systemPrompt instructs the model to behave as a technical translator
// for software requirements.
const systemPrompt = "You are a professional technical translator for Software Requirements (FR/NFR). " +
	"Translate English software/system requirements into natural, fluent Vietnamese. " +
	"Avoid word-for-word translation; keep scientific/technical accuracy. " +
	"Do NOT add explanations, do NOT add numbering/bullets. " +
	"Preserve meaning, units, constraints, and parentheses. " +
	"Each input line must produce exactly one Vietnamese line."

const userPromptTemplate = `Translate the following requirement lines to Vietnamese.

Rules:
- Return exactly N Vietnamese lines for N input lines (same order).
- Do not merge lines. Do not split a line into multiple lines.
- No numbering, no bullets, no extra commentary.
- If an input line has spelling/grammar issues, correct it before translating.
- Keep each translation as a single line.

Input lines (JSON array of strings):
%s
`

// Translator translates batches of English requirement lines to
// Vietnamese. Implementations must return exactly one output line per
// input line, in order.
type Translator interface {
	TranslateBatch(ctx context.Context, lines []string) ([]string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Config holds common configuration for translation providers
type Config struct {
	Provider       string // Provider name: "openai" or "gemini"
	Model          string
	RequestTimeout time.Duration
	Temperature    float32

	OpenAIKey string
	GeminiKey string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:       "openai",
		Model:          "gpt-4o-mini",
		RequestTimeout: 120 * time.Second,
		Temperature:    0.2,
	}
}

// NewTranslator creates the appropriate translation provider based on
// configuration
func NewTranslator(config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAITranslator(config)

	case "gemini":
		return NewGeminiTranslator(config)

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// BatchSizeMismatchError reports a model response whose line count does
// not match the input batch. The batch is retried, not silently padded.
type BatchSizeMismatchError struct {
	In  int
	Out int
}

func (e *BatchSizeMismatchError) Error() string {
	return fmt.Sprintf("batch size mismatch: in=%d out=%d", e.In, e.Out)
}

// batchResponse matches the JSON shape both providers are asked to emit.
type batchResponse struct {
	Translations []string `json:"translations"`
}

// buildUserPrompt embeds the batch as a JSON array so quoting and unicode
// survive the round trip.
func buildUserPrompt(lines []string) (string, error) {
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("failed to encode batch: %w", err)
	}
	return fmt.Sprintf(userPromptTemplate, string(linesJSON)), nil
}

// parseBatchResponse decodes a provider response and enforces the
// one-line-per-input invariant.
func parseBatchResponse(raw string, want int) ([]string, error) {
	var resp batchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode translation response: %w", err)
	}

	if len(resp.Translations) != want {
		return nil, &BatchSizeMismatchError{In: want, Out: len(resp.Translations)}
	}

	out := make([]string, len(resp.Translations))
	for i, t := range resp.Translations {
		// Models occasionally wrap long requirements; flatten so the
		// output file stays line-aligned with the input
		out[i] = strings.TrimSpace(strings.ReplaceAll(t, "\n", " "))
	}
	return out, nil
}
