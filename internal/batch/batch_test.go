package batch

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/resolver"
)

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "water\n\n# common greetings\nhello\n  book  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write word file: %v", err)
	}

	words, err := ReadWordFile(path)
	if err != nil {
		t.Fatalf("ReadWordFile failed: %v", err)
	}

	want := []string{"water", "hello", "book"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("ReadWordFile() = %v, want %v", words, want)
	}
}

func TestReadWordFile_Missing(t *testing.T) {
	if _, err := ReadWordFile("nonexistent.txt"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	results := []resolver.Result{
		{Input: "water", Translation: "maji", TargetLanguage: language.Swahili, Method: resolver.MethodExact, Success: true},
		{Input: "xylophone", TargetLanguage: language.Swahili, Method: resolver.MethodNotFound, Success: false, Error: "no swahili translation found for 'xylophone'"},
	}

	if err := WriteReport(path, results); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open report: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse report: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	wantHeader := []string{"english", "translation", "target_language", "method", "success", "error"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Errorf("Header = %v, want %v", records[0], wantHeader)
	}
	if records[1][0] != "water" || records[1][4] != "true" {
		t.Errorf("Unexpected first row: %v", records[1])
	}
	if records[2][3] != "not_found" || records[2][5] == "" {
		t.Errorf("Unexpected second row: %v", records[2])
	}
}
