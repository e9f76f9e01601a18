package translation

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// OpenAITranslator implements Translator using OpenAI chat completion
// with a strict JSON schema response format.
type OpenAITranslator struct {
	client *openai.Client
	config *Config
}

// NewOpenAITranslator creates a new OpenAI translation provider
func NewOpenAITranslator(config *Config) (*OpenAITranslator, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAITranslator{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// TranslateBatch translates one batch of requirement lines in a single
// chat completion call.
func (t *OpenAITranslator) TranslateBatch(ctx context.Context, lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	userPrompt, err := buildUserPrompt(lines)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, t.config.RequestTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: t.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: t.config.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name: "translation_batch",
				Schema: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"translations": {
							Type:  jsonschema.Array,
							Items: &jsonschema.Definition{Type: jsonschema.String},
						},
					},
					Required:             []string{"translations"},
					AdditionalProperties: false,
				},
				Strict: true,
			},
		},
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no translation returned")
	}

	return parseBatchResponse(resp.Choices[0].Message.Content, len(lines))
}

// Name returns the provider name
func (t *OpenAITranslator) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (t *OpenAITranslator) IsAvailable() error {
	if t.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// A test API call would use credits; having a key is enough here
	return nil
}
