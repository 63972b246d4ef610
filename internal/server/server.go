// Package server exposes the resolution pipeline over HTTP: translation,
// transcription, language listing, health, stats and metrics endpoints plus
// the static frontend.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codeberg.org/snonux/lugha/internal/audio"
	"codeberg.org/snonux/lugha/internal/dictionary"
	"codeberg.org/snonux/lugha/internal/history"
	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/observability"
	"codeberg.org/snonux/lugha/internal/resolver"
)

// WordResolver resolves one word into a target language. Implemented by
// resolver.Resolver; mocked in handler tests.
type WordResolver interface {
	ResolveWord(ctx context.Context, word string, target language.Language) (resolver.Result, error)
}

// Server carries the handler dependencies.
type Server struct {
	resolver    WordResolver
	table       *dictionary.Table
	store       *history.Store   // optional
	transcriber audio.Transcriber // optional
	staticDir   string
	log         *slog.Logger
	validate    *validator.Validate
}

// New creates a server. store and transcriber may be nil; the corresponding
// endpoints then report unavailability.
func New(res WordResolver, table *dictionary.Table, store *history.Store, transcriber audio.Transcriber, staticDir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		resolver:    res,
		table:       table,
		store:       store,
		transcriber: transcriber,
		staticDir:   staticDir,
		log:         log,
		validate:    validator.New(),
	}
}

// Handler builds the chi router with the full middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Post("/translate", s.handleTranslate)
	r.Post("/transcribe", s.handleTranscribe)
	r.Get("/available-languages", s.handleLanguages)
	r.Get("/health", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/", s.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))

	return r
}

// logRequests emits one structured log line per request and feeds the
// request counter.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		observability.HTTPRequestsTotal.
			WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).Inc()
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote", r.RemoteAddr,
		)
	})
}

// ListenAndServe runs the HTTP server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, listen string, readTimeout, writeTimeout, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         listen,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
