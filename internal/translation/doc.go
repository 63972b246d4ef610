// Package translation provides the remote translation fallback used when the
// dictionary has no match. It wraps a single remote call with a bounded retry
// loop, keyword-based error classification and a process-wide result cache.
package translation
