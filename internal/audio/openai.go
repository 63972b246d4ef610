package audio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAITranscriber implements Transcriber on top of the OpenAI Whisper API.
// Calls run through a circuit breaker: unlike the translation client, the
// transcription path has no retry policy of its own, so the breaker sheds
// load quickly when the API is down.
type OpenAITranscriber struct {
	client  *openai.Client
	config  *Config
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAITranscriber creates a Whisper-backed transcriber.
func NewOpenAITranscriber(config *Config) *OpenAITranscriber {
	return &OpenAITranscriber{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-transcription",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Transcribe sends the uploaded audio to the Whisper API.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	result, err := t.breaker.Execute(func() (interface{}, error) {
		resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    t.config.OpenAIModel,
			Reader:   audio,
			FilePath: filename,
			Language: t.config.Language,
		})
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		return resp.Text, nil
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(result.(string))
	if text == "" {
		return "", fmt.Errorf("no speech recognized")
	}
	return text, nil
}

// Name returns the provider name.
func (t *OpenAITranscriber) Name() string {
	return "openai"
}
