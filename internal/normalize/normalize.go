// Package normalize canonicalizes words into their dictionary lookup keys.
package normalize

import (
	"regexp"
	"strings"
)

// dropRunes matches everything that does not survive normalization. Letters,
// digits, whitespace, hyphens and apostrophes are kept.
var dropRunes = regexp.MustCompile(`[^\p{L}\p{N}\s'-]`)

// Word canonicalizes a word into its lookup key: trimmed, lower-cased,
// punctuation stripped except hyphens and apostrophes, internal whitespace
// collapsed to single spaces. Word is idempotent and may return "" (the
// caller decides whether an empty key is an error).
func Word(word string) string {
	cleaned := dropRunes.ReplaceAllString(strings.ToLower(word), "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Tokens splits a normalized word into its whitespace-separated token set,
// used by the fuzzy matching tier.
func Tokens(word string) map[string]struct{} {
	fields := strings.Fields(word)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
