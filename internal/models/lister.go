package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListChatModels lists chat models usable for translation with the
// current API key
func (l *Lister) ListChatModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .translate-requirements.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := filterChatModels(models.Models)
	sort.Strings(chatModels)

	fmt.Println("Chat models available for translation:")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		fmt.Printf("  %s\n", model)
	}

	return nil
}

func filterChatModels(models []openai.Model) []string {
	var chat []string
	for _, model := range models {
		id := model.ID
		// TTS, embedding, image and audio models cannot translate text
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "embedding") || strings.Contains(id, "dall-e") ||
			strings.Contains(id, "whisper") {
			continue
		}
		if strings.Contains(id, "gpt") || strings.Contains(id, "chat") || strings.HasPrefix(id, "o1") {
			chat = append(chat, id)
		}
	}
	return chat
}
