package audio

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got %q", config.Provider)
	}
	if config.OpenAIModel != "whisper-1" {
		t.Errorf("Expected model 'whisper-1', got %q", config.OpenAIModel)
	}
	if config.Language != "en" {
		t.Errorf("Expected language 'en', got %q", config.Language)
	}
}

func TestNewTranscriber_OpenAI(t *testing.T) {
	config := DefaultConfig()
	config.OpenAIKey = "test-key"

	transcriber, err := NewTranscriber(config)
	if err != nil {
		t.Fatalf("NewTranscriber failed: %v", err)
	}
	if transcriber.Name() != "openai" {
		t.Errorf("Expected provider name 'openai', got %q", transcriber.Name())
	}
}

func TestNewTranscriber_MissingKey(t *testing.T) {
	if _, err := NewTranscriber(DefaultConfig()); err == nil {
		t.Error("Expected an error without an API key")
	}
}

func TestNewTranscriber_UnknownProvider(t *testing.T) {
	config := &Config{Provider: "whisperx"}

	if _, err := NewTranscriber(config); err == nil {
		t.Error("Expected an error for an unknown provider")
	}
}
