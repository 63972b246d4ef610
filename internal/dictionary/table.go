// Package dictionary holds the in-memory lookup table loaded from CSV data
// and the built-in fallback dictionary.
package dictionary

import (
	"strings"

	"codeberg.org/snonux/lugha/internal/language"
)

// Entry is a single dictionary row: one English source word and its
// translations per target language. Blank translations mean "no translation
// for this row and language".
type Entry struct {
	SourceWord   string
	Translations map[language.Language]string
}

// Translation returns the trimmed translation of e for target, or "" if the
// row has none.
func (e Entry) Translation(target language.Language) string {
	return strings.TrimSpace(e.Translations[target])
}

// Table is an ordered, read-only sequence of dictionary entries. It is built
// once at startup and never mutated afterwards, so it may be shared between
// goroutines without synchronization.
type Table struct {
	entries   []Entry
	languages map[language.Language]bool
}

// NewTable builds a table from entries. Entries with an empty source word are
// excluded; duplicates are preserved in order. languages lists the target
// language columns present in the source data.
func NewTable(entries []Entry, languages []language.Language) *Table {
	langs := make(map[language.Language]bool, len(languages))
	for _, l := range languages {
		langs[l] = true
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.SourceWord == "" {
			continue
		}
		kept = append(kept, e)
	}
	return &Table{entries: kept, languages: langs}
}

// Rows returns the entries in load order. Callers must not mutate the
// returned slice.
func (t *Table) Rows() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// HasLanguage reports whether the table carries a column for l.
func (t *Table) HasLanguage(l language.Language) bool {
	if t == nil {
		return false
	}
	return t.languages[l]
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// CountForLanguage returns how many entries carry a non-blank translation
// for l.
func (t *Table) CountForLanguage(l language.Language) int {
	if t == nil {
		return 0
	}
	n := 0
	for _, e := range t.entries {
		if e.Translation(l) != "" {
			n++
		}
	}
	return n
}
