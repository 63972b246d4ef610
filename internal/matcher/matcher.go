package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/lugha/internal/dictionary"
	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/normalize"
)

// Tier identifies the matching strategy that produced a result.
type Tier string

const (
	TierExact           Tier = "exact"
	TierCaseInsensitive Tier = "case_insensitive"
	TierPartial         Tier = "partial"
	TierFuzzy           Tier = "fuzzy"
)

// fuzzyThreshold is the minimum Jaccard token similarity a row must score to
// be considered a fuzzy match.
const fuzzyThreshold = 0.5

// Resolve runs the matching cascade for word against table and returns the
// first non-empty translation together with the tier that found it. The tiers
// run strictly in order; absence of a match is not an error.
func Resolve(word string, target language.Language, table *dictionary.Table) (string, Tier, bool) {
	if table.Len() == 0 || !table.HasLanguage(target) {
		return "", "", false
	}
	key := normalize.Word(word)
	if key == "" {
		return "", "", false
	}

	// Normalization already lower-cases both sides, so a separate
	// case-insensitive scan could never match after the exact pass. The two
	// tiers are merged into one scan; TierCaseInsensitive survives only as a
	// method name.
	if translation, ok := exactMatch(key, target, table); ok {
		return translation, TierExact, true
	}
	if translation, ok := partialMatch(key, target, table); ok {
		return translation, TierPartial, true
	}
	if translation, ok := fuzzyMatch(key, target, table); ok {
		return translation, TierFuzzy, true
	}
	return "", "", false
}

// exactMatch returns the first row (in load order) whose source word equals
// key and whose translation for target is non-blank.
func exactMatch(key string, target language.Language, table *dictionary.Table) (string, bool) {
	for _, row := range table.Rows() {
		if row.SourceWord != key {
			continue
		}
		if translation := row.Translation(target); translation != "" {
			return translation, true
		}
	}
	return "", false
}

// partialMatch collects rows whose source word contains key or is contained
// in key, orders them by ascending source word length (shortest is most
// specific) and returns the first with a usable translation.
func partialMatch(key string, target language.Language, table *dictionary.Table) (string, bool) {
	var candidates []dictionary.Entry
	for _, row := range table.Rows() {
		if strings.Contains(row.SourceWord, key) || strings.Contains(key, row.SourceWord) {
			candidates = append(candidates, row)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	// Length is counted in runes so accented source words sort by their
	// visible length. Stable sort keeps load order between equal lengths.
	sort.SliceStable(candidates, func(i, j int) bool {
		return utf8.RuneCountInString(candidates[i].SourceWord) < utf8.RuneCountInString(candidates[j].SourceWord)
	})
	for _, row := range candidates {
		if translation := row.Translation(target); translation != "" {
			return translation, true
		}
	}
	return "", false
}

// fuzzyMatch scores every row by Jaccard similarity between the token sets of
// the row's source word and key. The best row at or above the threshold wins;
// on a tie the earlier row is kept.
func fuzzyMatch(key string, target language.Language, table *dictionary.Table) (string, bool) {
	keyTokens := normalize.Tokens(key)

	best := ""
	bestScore := 0.0
	for _, row := range table.Rows() {
		score := jaccard(keyTokens, normalize.Tokens(row.SourceWord))
		if score < fuzzyThreshold || score <= bestScore {
			continue
		}
		if translation := row.Translation(target); translation != "" {
			best = translation
			bestScore = score
		}
	}
	return best, best != ""
}

// jaccard computes |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
