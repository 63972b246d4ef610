package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/lugha/internal"
	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/observability"
	"codeberg.org/snonux/lugha/internal/resolver"
)

// translateRequest is the /translate request body.
type translateRequest struct {
	Word           string `json:"english_word" validate:"required,max=100"`
	TargetLanguage string `json:"target_language" validate:"required,oneof=swahili haya sukuma"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status             string   `json:"status"`
	Message            string   `json:"message"`
	Version            string   `json:"version"`
	CSVLoaded          bool     `json:"csv_loaded"`
	CSVEntries         int      `json:"csv_entries"`
	SupportedLanguages []string `json:"supported_languages"`
}

type languageInfo struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Available    bool   `json:"available"`
	EntriesCount int    `json:"entries_count"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid translation request: " + err.Error()})
		return
	}
	if err := resolver.ValidateWord(req.Word); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	target, err := language.Parse(req.TargetLanguage)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	result, err := s.resolver.ResolveWord(r.Context(), req.Word, target)
	if err != nil {
		// Only contract violations end up here; the resolver folds remote
		// failures into the result.
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	observability.ResolveDuration.Observe(time.Since(start).Seconds())
	observability.TranslationsTotal.
		WithLabelValues(string(result.Method), target.String(), boolLabel(result.Success)).Inc()

	if s.store != nil {
		if err := s.store.Record(result); err != nil {
			s.log.Warn("failed to record translation", "error", err)
		}
	}

	// Failed resolutions are still normal responses carrying an explanatory
	// message, not HTTP errors.
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if s.transcriber == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "transcription is not configured"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing audio file"})
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "audio/") {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid audio file"})
		return
	}

	text, err := s.transcriber.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, transcribeResponse{Text: text})
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	languages := make([]languageInfo, 0, len(language.Targets()))
	for _, l := range language.Targets() {
		languages = append(languages, languageInfo{
			Code:         l.String(),
			Name:         l.DisplayName(),
			Available:    true,
			EntriesCount: s.table.CountForLanguage(l),
		})
	}
	writeJSON(w, http.StatusOK, languages)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	codes := make([]string, 0, len(language.Targets()))
	for _, l := range language.Targets() {
		codes = append(codes, l.String())
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:             "healthy",
		Message:            "English to local languages translator is running",
		Version:            internal.Version,
		CSVLoaded:          s.table.Len() > 0,
		CSVEntries:         s.table.Len(),
		SupportedLanguages: codes,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "history is not configured"})
		return
	}
	stats, err := s.store.Stats()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleIndex serves the frontend page, falling back to a minimal inline
// page when no static index.html is deployed.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	index := filepath.Join(s.staticDir, "index.html")
	if data, err := os.ReadFile(index); err == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>English to Local Languages Translator</title></head>
<body>
<h1>English to Local Languages Translator</h1>
<p>The API is running. Endpoints: POST /translate, POST /transcribe,
GET /available-languages, GET /health, GET /stats, GET /metrics.</p>
</body>
</html>
`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
