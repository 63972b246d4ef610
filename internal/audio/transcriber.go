// Package audio provides speech-to-text transcription for the /transcribe
// endpoint.
package audio

import (
	"context"
	"fmt"
	"io"
)

// Transcriber defines the interface for speech-to-text providers.
type Transcriber interface {
	// Transcribe converts recorded audio into text. filename carries the
	// original upload name so providers can derive the container format.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)

	// Name returns the provider name.
	Name() string
}

// Config holds common configuration for transcription providers.
type Config struct {
	Provider string // provider name: "openai"
	Language string // spoken language hint, e.g. "en"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // "whisper-1"
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		Language:    "en",
		OpenAIModel: "whisper-1",
	}
}

// NewTranscriber creates the appropriate transcription provider based on
// configuration.
func NewTranscriber(config *Config) (Transcriber, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAITranscriber(config), nil

	default:
		return nil, fmt.Errorf("unknown transcription provider: %s", config.Provider)
	}
}
