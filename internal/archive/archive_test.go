package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveHistory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lugha_history.db")
	if err := os.WriteFile(dbPath, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if err := ArchiveHistory(dbPath); err != nil {
		t.Fatalf("ArchiveHistory failed: %v", err)
	}

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Error("Expected the database to be moved away")
	}

	entries, err := os.ReadDir(filepath.Join(dir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 archived file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "history-") || !strings.HasSuffix(name, ".db") {
		t.Errorf("Unexpected archive name: %s", name)
	}
}

func TestArchiveHistory_MissingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")

	if err := ArchiveHistory(dbPath); err == nil {
		t.Error("Expected an error for a missing database")
	}
}
