package cli

import "testing"

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"TargetLanguage", flags.TargetLanguage, "swahili"},
		{"ReportFile", flags.ReportFile, "batch_report.csv"},
		{"Listen", flags.Listen, ":8000"},
		{"LogLevel", flags.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	boolTests := []struct {
		name  string
		value bool
	}{
		{"ListLanguages", flags.ListLanguages},
		{"ListModels", flags.ListModels},
		{"ArchiveHistory", flags.ArchiveHistory},
		{"NoRemote", flags.NoRemote},
		{"Serve", flags.Serve},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = true, want false", tt.name)
			}
		})
	}
}
