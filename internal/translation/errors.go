package translation

import (
	"fmt"
	"strings"
)

// NetworkError reports that every attempt failed with a transient network
// error (timeout, handshake, connection reset and the like).
type NetworkError struct {
	Attempts int
	Last     error
}

func (e *NetworkError) Error() string {
	return "network timeout - please check your internet connection"
}

func (e *NetworkError) Unwrap() error { return e.Last }

// RateLimitError reports that the remote service kept rate limiting us until
// the attempts ran out.
type RateLimitError struct {
	Attempts int
	Last     error
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded - please try again later"
}

func (e *RateLimitError) Unwrap() error { return e.Last }

// ServiceError reports an unclassified remote failure. It is returned
// immediately, without further retries.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("translation service error: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// EmptyResultError reports that the remote call succeeded but returned an
// empty translation. Empty results are never retried.
type EmptyResultError struct {
	Word string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("empty translation result for %q", e.Word)
}

// failureKind classifies a remote failure for the retry loop.
type failureKind int

const (
	failureOther failureKind = iota
	failureTransient
	failureRateLimited
)

// classifiers map message substrings to failure kinds. The remote service
// only distinguishes failures by message content, so classification is
// string matching over the lower-cased error text, evaluated in priority
// order.
var classifiers = []struct {
	kind     failureKind
	keywords []string
}{
	{failureTransient, []string{"timeout", "handshake", "ssl", "connection"}},
	{failureRateLimited, []string{"rate limit", "429"}},
}

// classify maps err to a failureKind by its message content.
func classify(err error) failureKind {
	msg := strings.ToLower(err.Error())
	for _, c := range classifiers {
		for _, kw := range c.keywords {
			if strings.Contains(msg, kw) {
				return c.kind
			}
		}
	}
	return failureOther
}
