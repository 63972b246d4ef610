package observability

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := NewLogger(tt.level, true)
			ctx := context.Background()
			if !log.Enabled(ctx, tt.enabled) {
				t.Errorf("Level %v should be enabled for %q", tt.enabled, tt.level)
			}
			if log.Enabled(ctx, tt.muted) {
				t.Errorf("Level %v should be muted for %q", tt.muted, tt.level)
			}
		})
	}
}

func TestNewLogger_ConsoleHandler(t *testing.T) {
	if log := NewLogger("info", false); log == nil {
		t.Fatal("NewLogger returned nil")
	}
}
