// Package batch reads word list files and writes CSV reports of their
// resolutions.
package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/lugha/internal/resolver"
)

// ReadWordFile reads English words from a file, one per line. Blank lines
// and lines starting with '#' are skipped.
func ReadWordFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}

// WriteReport writes the resolution results as a CSV file with a header row.
func WriteReport(path string, results []resolver.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"english", "translation", "target_language", "method", "success", "error"}); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, res := range results {
		record := []string{
			res.Input,
			res.Translation,
			res.TargetLanguage.String(),
			string(res.Method),
			fmt.Sprintf("%t", res.Success),
			res.Error,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
