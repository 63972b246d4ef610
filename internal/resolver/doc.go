// Package resolver orchestrates the full word resolution pipeline: the
// dictionary match cascade, the built-in fallback dictionary and - for
// remote-eligible target languages - the remote translation client. Every
// resolution produces a tagged Result; remote failures are folded into the
// Result rather than propagated.
package resolver
