package resolver

import (
	"fmt"
	"regexp"
	"strings"
)

// maxWordLength bounds the accepted input size.
const maxWordLength = 100

// validWord accepts letters, spaces, hyphens and apostrophes.
var validWord = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

// ValidateWord rejects malformed input before the cascade ever runs.
func ValidateWord(word string) error {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return fmt.Errorf("please enter a valid English word")
	}
	if len(trimmed) > maxWordLength {
		return fmt.Errorf("word is too long (max %d characters)", maxWordLength)
	}
	if !validWord.MatchString(trimmed) {
		return fmt.Errorf("word contains invalid characters")
	}
	return nil
}
