package translation

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements Backend on top of the OpenAI chat completion API.
type OpenAIBackend struct {
	apiKey string
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a backend using apiKey. An empty model selects
// GPT4oMini.
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIBackend{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Translate performs one chat completion call asking for a bare translation.
func (b *OpenAIBackend) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	if b.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the word '%s' from the language with ISO code '%s' to the language with ISO code '%s'. Respond with only the translation, nothing else.",
					text, sourceCode, targetCode),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return resp.Choices[0].Message.Content, nil
}
