package dictionary

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/lugha/internal/language"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write CSV fixture: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCSV(t, "dict.csv",
		"English,Swahili,Haya,Sukuma\n"+
			"Cat ,paka, akajangwa ,\n"+
			"dog,mbwa,embwa,mbwa\n"+
			",skipped,skipped,skipped\n")

	table, err := LoadFile(path, discardLogger())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", table.Len())
	}
	for _, l := range language.Targets() {
		if !table.HasLanguage(l) {
			t.Errorf("Expected column for %q", l)
		}
	}

	first := table.Rows()[0]
	if first.SourceWord != "cat" {
		t.Errorf("Expected normalized source 'cat', got %q", first.SourceWord)
	}
	if got := first.Translation(language.Haya); got != "akajangwa" {
		t.Errorf("Expected trimmed translation 'akajangwa', got %q", got)
	}
	if got := first.Translation(language.Sukuma); got != "" {
		t.Errorf("Expected blank Sukuma cell, got %q", got)
	}
}

func TestLoadFile_Windows1252(t *testing.T) {
	// 0xE9 is "é" in windows-1252 and invalid UTF-8 on its own.
	content := append([]byte("english,swahili\ncaf"), 0xE9)
	content = append(content, []byte(",mkahawa\n")...)

	path := filepath.Join(t.TempDir(), "legacy.csv")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	table, err := LoadFile(path, discardLogger())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", table.Len())
	}
	if got := table.Rows()[0].SourceWord; got != "café" {
		t.Errorf("Expected decoded source 'café', got %q", got)
	}
}

func TestLoadFile_MissingSourceColumn(t *testing.T) {
	path := writeCSV(t, "bad.csv", "word,swahili\ncat,paka\n")

	if _, err := LoadFile(path, discardLogger()); err == nil {
		t.Error("Expected an error for a missing english column")
	}
}

func TestLoadFile_UnknownColumnsIgnored(t *testing.T) {
	path := writeCSV(t, "extra.csv",
		"english,swahili,notes\ncat,paka,common pet\n")

	table, err := LoadFile(path, discardLogger())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", table.Len())
	}
	if !table.HasLanguage(language.Swahili) {
		t.Error("Expected Swahili column")
	}
}

func TestLoad_FirstExistingFileWins(t *testing.T) {
	first := writeCSV(t, "first.csv", "english,swahili\ncat,paka\n")
	second := writeCSV(t, "second.csv", "english,swahili\ndog,mbwa\n")

	table, err := Load([]string{"missing.csv", first, second}, discardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 1 || table.Rows()[0].SourceWord != "cat" {
		t.Error("Expected the first existing candidate to be loaded")
	}
}

func TestLoad_NoCandidateExists(t *testing.T) {
	table, err := Load([]string{"missing-a.csv", "missing-b.csv"}, discardLogger())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Expected an empty table, got %d entries", table.Len())
	}
}
