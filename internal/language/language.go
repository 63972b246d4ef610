// Package language defines the closed set of target languages the translator
// supports and their external service codes.
package language

import (
	"fmt"
	"strings"
)

// Language identifies a supported target language.
type Language string

const (
	Swahili Language = "swahili"
	Haya    Language = "haya"
	Sukuma  Language = "sukuma"

	// English is the source language of every lookup. It is not a valid
	// translation target.
	English Language = "english"
)

// supported maps each target language to its display name.
var supported = map[Language]string{
	Swahili: "Swahili",
	Haya:    "Haya",
	Sukuma:  "Sukuma",
}

// remoteCodes holds the short codes used by the remote translation service.
// Only languages listed here may fall back to a network translation.
var remoteCodes = map[Language]string{
	English: "en",
	Swahili: "sw",
}

// Targets returns all supported target languages in a stable order.
func Targets() []Language {
	return []Language{Swahili, Haya, Sukuma}
}

// Parse validates a raw language identifier and returns the Language.
func Parse(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := supported[l]; !ok {
		return "", fmt.Errorf("unsupported target language: %q", s)
	}
	return l, nil
}

// IsSupported reports whether l is a valid translation target.
func IsSupported(l Language) bool {
	_, ok := supported[l]
	return ok
}

// IsRemoteEligible reports whether the remote translation fallback may be
// used for l.
func IsRemoteEligible(l Language) bool {
	_, ok := remoteCodes[l]
	return ok && l != English
}

// RemoteCode returns the short code the remote service expects for l, or ""
// if l has no remote mapping.
func RemoteCode(l Language) string {
	return remoteCodes[l]
}

// DisplayName returns the human-readable name of l.
func (l Language) DisplayName() string {
	if name, ok := supported[l]; ok {
		return name
	}
	if l == "" {
		return ""
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (l Language) String() string {
	return string(l)
}
