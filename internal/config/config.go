// Package config holds the viper-backed application configuration.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration. Defaults mirror the
// behavior of the service without any config file present.
type Config struct {
	// Server settings
	Listen          string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	StaticDir       string

	// Logging
	LogLevel string

	// Dictionary CSV candidates, first existing file wins.
	DictionaryFiles []string

	// Translation history database path, ":memory:" for ephemeral.
	HistoryPath string

	// Remote translation retry policy
	MaxRetries     int
	RetryDelayMin  time.Duration
	RetryDelayMax  time.Duration
	RateLimitDelay time.Duration

	// OpenAI settings
	OpenAIModel string

	// Transcription
	TranscribeLanguage string
}

// setDefaults registers every configuration default with viper.
func setDefaults() {
	viper.SetDefault("server.listen", ":8000")
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.static_dir", "static")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("dictionary.files", []string{
		"english_to_haya_sukuma_nyakyusa 2.csv",
		"english_to_haya_sukuma_nyakyusa.csv",
	})
	viper.SetDefault("history.path", "lugha_history.db")
	viper.SetDefault("remote.max_retries", 3)
	viper.SetDefault("remote.retry_delay_min", 1*time.Second)
	viper.SetDefault("remote.retry_delay_max", 3*time.Second)
	viper.SetDefault("remote.rate_limit_delay", 5*time.Second)
	viper.SetDefault("openai.model", "")
	viper.SetDefault("transcribe.language", "en")
}

// Load resolves the configuration from viper (config file, environment and
// defaults).
func Load() *Config {
	setDefaults()
	return &Config{
		Listen:             viper.GetString("server.listen"),
		ReadTimeout:        viper.GetDuration("server.read_timeout"),
		WriteTimeout:       viper.GetDuration("server.write_timeout"),
		ShutdownTimeout:    viper.GetDuration("server.shutdown_timeout"),
		StaticDir:          viper.GetString("server.static_dir"),
		LogLevel:           viper.GetString("log.level"),
		DictionaryFiles:    viper.GetStringSlice("dictionary.files"),
		HistoryPath:        viper.GetString("history.path"),
		MaxRetries:         viper.GetInt("remote.max_retries"),
		RetryDelayMin:      viper.GetDuration("remote.retry_delay_min"),
		RetryDelayMax:      viper.GetDuration("remote.retry_delay_max"),
		RateLimitDelay:     viper.GetDuration("remote.rate_limit_delay"),
		OpenAIModel:        viper.GetString("openai.model"),
		TranscribeLanguage: viper.GetString("transcribe.language"),
	}
}

// OpenAIKey retrieves the OpenAI API key from the environment or the config
// file.
func OpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("openai.api_key")
}
