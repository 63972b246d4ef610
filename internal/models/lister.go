// Package models lists the OpenAI models usable as the remote translation
// backend.
package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister queries the OpenAI API for available models.
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister.
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListTranslationModels prints the chat completion models the current API key
// can use for the remote translation fallback.
func (l *Lister) ListTranslationModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY or configure openai.api_key in .lugha.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	var chatModels []string
	for _, model := range models.Models {
		id := model.ID
		if strings.Contains(id, "gpt") && !strings.Contains(id, "tts") && !strings.Contains(id, "audio") {
			chatModels = append(chatModels, id)
		}
	}
	sort.Strings(chatModels)

	fmt.Println("Models usable for remote translation (openai.model):")
	for _, id := range chatModels {
		marker := "  "
		if id == openai.GPT4oMini {
			marker = "* " // default
		}
		fmt.Printf("%s%s\n", marker, id)
	}
	return nil
}
