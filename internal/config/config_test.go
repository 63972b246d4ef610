package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()

	if cfg.Listen != ":8000" {
		t.Errorf("Listen = %q, want :8000", cfg.Listen)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if len(cfg.DictionaryFiles) != 2 {
		t.Errorf("Expected 2 dictionary candidates, got %v", cfg.DictionaryFiles)
	}
	if cfg.HistoryPath != "lugha_history.db" {
		t.Errorf("HistoryPath = %q, want lugha_history.db", cfg.HistoryPath)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelayMin != 1*time.Second || cfg.RetryDelayMax != 3*time.Second {
		t.Errorf("Retry delays = %v/%v, want 1s/3s", cfg.RetryDelayMin, cfg.RetryDelayMax)
	}
	if cfg.RateLimitDelay != 5*time.Second {
		t.Errorf("RateLimitDelay = %v, want 5s", cfg.RateLimitDelay)
	}
	if cfg.TranscribeLanguage != "en" {
		t.Errorf("TranscribeLanguage = %q, want en", cfg.TranscribeLanguage)
	}
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("server.listen", ":9000")
	viper.Set("remote.max_retries", 5)

	cfg := Load()

	if cfg.Listen != ":9000" {
		t.Errorf("Listen = %q, want :9000", cfg.Listen)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
}

func TestOpenAIKey_FromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("OPENAI_API_KEY", "env-key")
	if got := OpenAIKey(); got != "env-key" {
		t.Errorf("OpenAIKey() = %q, want env-key", got)
	}

	t.Setenv("OPENAI_API_KEY", "")
	viper.Set("openai.api_key", "config-key")
	if got := OpenAIKey(); got != "config-key" {
		t.Errorf("OpenAIKey() = %q, want config-key", got)
	}
}
