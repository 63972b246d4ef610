package translation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/normalize"
)

// Backend performs one remote translation call. sourceCode and targetCode are
// the short language codes the remote service expects. Failures are only
// distinguishable by message content.
type Backend interface {
	Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error)
}

// Options configures the retry behavior of the client.
type Options struct {
	MaxRetries     int           // total attempts per call
	RetryDelayMin  time.Duration // lower bound of the random inter-retry delay
	RetryDelayMax  time.Duration // upper bound of the random inter-retry delay
	RateLimitDelay time.Duration // fixed cooldown after a rate limit response
}

// DefaultOptions returns the stock retry configuration: three attempts, a
// random one to three second delay between them and a five second rate limit
// cooldown.
func DefaultOptions() Options {
	return Options{
		MaxRetries:     3,
		RetryDelayMin:  1 * time.Second,
		RetryDelayMax:  3 * time.Second,
		RateLimitDelay: 5 * time.Second,
	}
}

// Client resolves words through the remote translation backend, caching every
// successful result.
type Client struct {
	backend Backend
	cache   *Cache
	opts    Options
	log     *slog.Logger

	// sleep and randFloat are swapped out in tests.
	sleep     func(time.Duration)
	randFloat func() float64
}

// NewClient creates a client around backend. The cache is injected so that
// callers control its lifecycle (one per process in normal operation, one per
// test for isolation).
func NewClient(backend Backend, cache *Cache, opts Options, log *slog.Logger) *Client {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultOptions().MaxRetries
	}
	if cache == nil {
		cache = NewCache()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		backend:   backend,
		cache:     cache,
		opts:      opts,
		log:       log,
		sleep:     time.Sleep,
		randFloat: rand.Float64,
	}
}

// Translate resolves word from source to target through the remote service.
// Cached results are returned without a network attempt. Otherwise the call
// is retried up to MaxRetries times; failures are classified by message
// content and surface as NetworkError, RateLimitError, ServiceError or
// EmptyResultError. The cache is only written on success.
func (c *Client) Translate(ctx context.Context, word string, source, target language.Language) (string, error) {
	if !language.IsRemoteEligible(target) {
		return "", fmt.Errorf("language %q is not remote eligible", target)
	}

	key := Key{Source: source, Target: target, Word: normalize.Word(word)}
	if cached, ok := c.cache.Get(key); ok {
		c.log.Debug("using cached translation", "word", word, "target", target.String())
		return cached, nil
	}

	text := strings.TrimSpace(word)
	sourceCode := language.RemoteCode(source)
	targetCode := language.RemoteCode(target)

	var lastErr error
	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(c.retryDelay())
		}

		result, err := c.backend.Translate(ctx, text, sourceCode, targetCode)
		if err == nil {
			translated := strings.TrimSpace(result)
			if translated == "" {
				// An empty result is a failure, but not one a retry can fix.
				return "", &EmptyResultError{Word: word}
			}
			c.cache.Put(key, translated)
			c.log.Info("translated via remote service",
				"word", word, "translation", translated, "target", target.String())
			return translated, nil
		}

		lastErr = err
		switch classify(err) {
		case failureTransient:
			if attempt == c.opts.MaxRetries-1 {
				return "", &NetworkError{Attempts: c.opts.MaxRetries, Last: err}
			}
			c.log.Warn("network error, retrying", "attempt", attempt+1, "error", err)
		case failureRateLimited:
			if attempt == c.opts.MaxRetries-1 {
				return "", &RateLimitError{Attempts: c.opts.MaxRetries, Last: err}
			}
			c.log.Warn("rate limit hit, backing off", "attempt", attempt+1)
			c.sleep(c.opts.RateLimitDelay)
		default:
			return "", &ServiceError{Err: err}
		}
	}

	// Unreachable while the classification above is exhaustive; kept so the
	// compiler has a terminal return.
	return "", &ServiceError{Err: lastErr}
}

// CacheSize reports how many translations are memoized.
func (c *Client) CacheSize() int {
	return c.cache.Len()
}

// retryDelay draws a random duration from the configured interval.
func (c *Client) retryDelay() time.Duration {
	min, max := c.opts.RetryDelayMin, c.opts.RetryDelayMax
	if max <= min {
		return min
	}
	return min + time.Duration(c.randFloat()*float64(max-min))
}
