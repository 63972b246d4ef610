// Package matcher implements the four-tier matching cascade against the
// loaded dictionary: exact, case-insensitive, partial (substring in either
// direction) and fuzzy (Jaccard token similarity). Earlier tiers always win
// over later ones.
package matcher
