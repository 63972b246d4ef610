package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/lugha/internal/dictionary"
	"codeberg.org/snonux/lugha/internal/language"
)

// TableRow is a dictionary row in fixture form: the English source word plus
// its per-language translations.
type TableRow struct {
	Source       string
	Translations map[language.Language]string
}

// BuildTable builds a dictionary table from fixture rows, preserving order.
// The table carries all three target language columns.
func BuildTable(t *testing.T, rows []TableRow) *dictionary.Table {
	t.Helper()

	entries := make([]dictionary.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, dictionary.Entry{
			SourceWord:   row.Source,
			Translations: row.Translations,
		})
	}
	return dictionary.NewTable(entries, language.Targets())
}

// SwahiliTable builds a single-column table mapping English words to Swahili.
func SwahiliTable(t *testing.T, words map[string]string, order []string) *dictionary.Table {
	t.Helper()

	rows := make([]TableRow, 0, len(order))
	for _, source := range order {
		rows = append(rows, TableRow{
			Source:       source,
			Translations: map[language.Language]string{language.Swahili: words[source]},
		})
	}
	return BuildTable(t, rows)
}

// WriteCSV writes a CSV fixture file into a temp directory and returns its
// path.
func WriteCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write CSV fixture %s: %v", path, err)
	}
	return path
}
