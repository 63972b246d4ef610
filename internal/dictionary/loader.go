package dictionary

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/normalize"
)

// sourceColumn is the CSV column holding the English source word.
const sourceColumn = "english"

// csvEncodings are tried in order when a dictionary file is not valid UTF-8.
// Legacy exports from spreadsheet tools commonly arrive as windows-1252.
var csvEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"windows-1252", charmap.Windows1252},
	{"latin-1", charmap.ISO8859_1},
}

// Load discovers the first existing file from paths and loads it. It returns
// an empty table when none of the candidates exist, so the service can still
// run on the fallback dictionary alone.
func Load(paths []string, log *slog.Logger) (*Table, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path, log)
	}
	log.Warn("no dictionary file found", "candidates", paths)
	return NewTable(nil, nil), nil
}

// LoadFile loads and cleans a single dictionary CSV file.
func LoadFile(path string, log *slog.Logger) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	text, encodingName, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return NewTable(nil, nil), nil
	}

	sourceIdx, langCols := mapColumns(records[0])
	if sourceIdx < 0 {
		return nil, fmt.Errorf("dictionary file %s has no %q column", path, sourceColumn)
	}

	languages := make([]language.Language, 0, len(langCols))
	for l := range langCols {
		languages = append(languages, l)
	}

	entries := make([]Entry, 0, len(records)-1)
	for _, rec := range records[1:] {
		if sourceIdx >= len(rec) {
			continue
		}
		source := normalize.Word(rec[sourceIdx])
		if source == "" {
			continue
		}
		translations := make(map[language.Language]string, len(langCols))
		for l, idx := range langCols {
			if idx < len(rec) {
				translations[l] = strings.TrimSpace(rec[idx])
			}
		}
		entries = append(entries, Entry{SourceWord: source, Translations: translations})
	}

	table := NewTable(entries, languages)
	log.Info("dictionary loaded",
		"path", path,
		"encoding", encodingName,
		"entries", table.Len(),
		"languages", len(languages),
	)
	return table, nil
}

// decode converts raw file bytes to UTF-8 text, trying the configured
// encodings in order.
func decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}
	for _, e := range csvEncodings {
		decoded, err := e.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), e.name, nil
	}
	return "", "", fmt.Errorf("no usable encoding")
}

// mapColumns resolves the header row into the source column index and a
// mapping from supported target language to column index. Header names are
// case-insensitive and trimmed.
func mapColumns(header []string) (int, map[language.Language]int) {
	sourceIdx := -1
	langCols := make(map[language.Language]int)
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == sourceColumn {
			if sourceIdx < 0 {
				sourceIdx = i
			}
			continue
		}
		if l, err := language.Parse(name); err == nil {
			langCols[l] = i
		}
	}
	return sourceIdx, langCols
}
