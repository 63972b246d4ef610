package resolver

import (
	"time"

	"codeberg.org/snonux/lugha/internal/language"
)

// Method names the resolution strategy that produced a Result.
type Method string

const (
	MethodExact              Method = "exact"
	MethodCaseInsensitive    Method = "case_insensitive"
	MethodPartial            Method = "partial"
	MethodFuzzy              Method = "fuzzy"
	MethodFallbackDictionary Method = "fallback_dictionary"
	MethodRemote             Method = "remote"
	MethodNotFound           Method = "not_found"
	MethodFailed             Method = "failed"
)

// Result is the outcome of one word resolution. It is created fresh per
// request and never stored by the resolver itself.
type Result struct {
	Input          string            `json:"input"`
	TargetLanguage language.Language `json:"target_language"`
	LanguageName   string            `json:"language_name"`
	Translation    string            `json:"translation"`
	Method         Method            `json:"method"`
	Success        bool              `json:"success"`
	Timestamp      time.Time         `json:"timestamp"`
	Error          string            `json:"error,omitempty"`
}
