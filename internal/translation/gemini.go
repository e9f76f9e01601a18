package translation

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiTranslator implements Translator using Google's Gemini API with
// a JSON response schema.
type GeminiTranslator struct {
	client *genai.Client
	config *Config
}

// NewGeminiTranslator creates a new Gemini translation provider
func NewGeminiTranslator(config *Config) (*GeminiTranslator, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.GeminiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{
		client: client,
		config: config,
	}, nil
}

// TranslateBatch translates one batch of requirement lines in a single
// GenerateContent call.
func (t *GeminiTranslator) TranslateBatch(ctx context.Context, lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	userPrompt, err := buildUserPrompt(lines)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, t.config.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(t.config.Temperature),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"translations": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"translations"},
		},
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.config.Model, genai.Text(userPrompt), genConfig)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("no translation returned")
	}

	return parseBatchResponse(raw, len(lines))
}

// Name returns the provider name
func (t *GeminiTranslator) Name() string {
	return "gemini"
}

// IsAvailable checks if the Gemini API is accessible
func (t *GeminiTranslator) IsAvailable() error {
	if t.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
