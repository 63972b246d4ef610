// Package archive rotates the translation history database out of the way.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveHistory moves the history database at dbPath into an archive/
// directory next to it, named with a timestamp. Used before starting a fresh
// statistics period.
func ArchiveHistory(dbPath string) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("history database does not exist: %s", dbPath)
	}

	archiveDir := filepath.Join(filepath.Dir(dbPath), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("history-%s.db", timestamp))
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("history-%s.db", timestamp))
	}

	if err := os.Rename(dbPath, archivePath); err != nil {
		return fmt.Errorf("failed to archive history database: %w", err)
	}
	return nil
}
