package dictionary

import (
	"testing"

	"codeberg.org/snonux/lugha/internal/language"
)

func TestNewTable_DropsEmptySourceWords(t *testing.T) {
	table := NewTable([]Entry{
		{SourceWord: "cat", Translations: map[language.Language]string{language.Swahili: "paka"}},
		{SourceWord: ""},
		{SourceWord: "dog", Translations: map[language.Language]string{language.Swahili: "mbwa"}},
	}, []language.Language{language.Swahili})

	if table.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", table.Len())
	}
	if table.Rows()[0].SourceWord != "cat" || table.Rows()[1].SourceWord != "dog" {
		t.Error("Load order not preserved")
	}
}

func TestTable_HasLanguage(t *testing.T) {
	table := NewTable(nil, []language.Language{language.Haya})

	if !table.HasLanguage(language.Haya) {
		t.Error("Expected Haya column to be present")
	}
	if table.HasLanguage(language.Sukuma) {
		t.Error("Expected Sukuma column to be absent")
	}
}

func TestTable_CountForLanguage(t *testing.T) {
	table := NewTable([]Entry{
		{SourceWord: "cat", Translations: map[language.Language]string{language.Swahili: "paka", language.Haya: ""}},
		{SourceWord: "dog", Translations: map[language.Language]string{language.Swahili: "  "}},
	}, []language.Language{language.Swahili, language.Haya})

	if got := table.CountForLanguage(language.Swahili); got != 1 {
		t.Errorf("CountForLanguage(Swahili) = %d, want 1", got)
	}
	if got := table.CountForLanguage(language.Haya); got != 0 {
		t.Errorf("CountForLanguage(Haya) = %d, want 0", got)
	}
}

func TestTable_NilReceiver(t *testing.T) {
	var table *Table

	if table.Len() != 0 || table.Rows() != nil || table.HasLanguage(language.Swahili) {
		t.Error("Nil table must behave as empty")
	}
}

func TestEntry_TranslationTrims(t *testing.T) {
	e := Entry{Translations: map[language.Language]string{language.Swahili: "  paka "}}

	if got := e.Translation(language.Swahili); got != "paka" {
		t.Errorf("Translation() = %q, want paka", got)
	}
	if got := e.Translation(language.Haya); got != "" {
		t.Errorf("Translation() = %q, want empty for missing language", got)
	}
}
