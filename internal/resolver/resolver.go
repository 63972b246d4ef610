package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"codeberg.org/snonux/lugha/internal/dictionary"
	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/matcher"
)

// Remote is the remote translation fallback. Implemented by
// translation.Client; mocked in tests.
type Remote interface {
	Translate(ctx context.Context, word string, source, target language.Language) (string, error)
}

// Resolver runs the resolution pipeline. Locally curated data always wins
// over the network fallback, both for latency and for determinism.
type Resolver struct {
	table    *dictionary.Table
	fallback *dictionary.Fallback
	remote   Remote
	log      *slog.Logger
}

// New creates a resolver. remote may be nil when no remote fallback is
// configured.
func New(table *dictionary.Table, fallback *dictionary.Fallback, remote Remote, log *slog.Logger) *Resolver {
	if fallback == nil {
		fallback = dictionary.DefaultFallback()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{table: table, fallback: fallback, remote: remote, log: log}
}

// ResolveWord resolves word into target. The returned error is non-nil only
// for contract violations (an unsupported target language); every resolution
// outcome, including remote failures, is reported through the Result.
func (r *Resolver) ResolveWord(ctx context.Context, word string, target language.Language) (Result, error) {
	if !language.IsSupported(target) {
		return Result{}, fmt.Errorf("unsupported target language: %q", target)
	}

	word = strings.TrimSpace(word)
	result := Result{
		Input:          word,
		TargetLanguage: target,
		LanguageName:   target.DisplayName(),
		Timestamp:      time.Now(),
	}

	if translation, tier, ok := matcher.Resolve(word, target, r.table); ok {
		result.Translation = translation
		result.Method = Method(tier)
		result.Success = true
		r.log.Info("dictionary match", "word", word, "translation", translation, "method", string(result.Method))
		return result, nil
	}

	if translation, ok := r.fallback.Lookup(word, target); ok {
		result.Translation = translation
		result.Method = MethodFallbackDictionary
		result.Success = true
		r.log.Info("fallback dictionary match", "word", word, "translation", translation)
		return result, nil
	}

	if r.remote != nil && language.IsRemoteEligible(target) {
		translation, err := r.remote.Translate(ctx, word, language.English, target)
		if err != nil {
			r.log.Error("remote translation failed", "word", word, "error", err)
			result.Method = MethodFailed
			result.Error = err.Error()
			return result, nil
		}
		result.Translation = translation
		result.Method = MethodRemote
		result.Success = true
		return result, nil
	}

	result.Method = MethodNotFound
	result.Error = fmt.Sprintf("no %s translation found for '%s'", target, word)
	return result, nil
}
