// Package testutil provides hand-written mocks and fixtures shared by the
// package tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"codeberg.org/snonux/lugha/internal/language"
)

// MockBackend mocks the remote translation backend. Each call first consumes
// ErrorQueue (one entry per call, nil meaning success), so retry sequences
// like "timeout, timeout, ok" can be scripted.
type MockBackend struct {
	mu           sync.Mutex
	Translations map[string]string
	Errors       map[string]error
	ErrorQueue   []error
	Calls        []string
}

// Translate mocks one remote translation call.
func (m *MockBackend) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (%s->%s)", text, sourceCode, targetCode))

	if len(m.ErrorQueue) > 0 {
		err := m.ErrorQueue[0]
		m.ErrorQueue = m.ErrorQueue[1:]
		if err != nil {
			return "", err
		}
	} else if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// CallCount reports how many times Translate was invoked.
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockRemote mocks the resolver's remote translation fallback.
type MockRemote struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// Translate mocks resolving a word through the remote service.
func (m *MockRemote) Translate(ctx context.Context, word string, source, target language.Language) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (%s->%s)", word, source, target))

	if err, ok := m.Errors[word]; ok {
		return "", err
	}

	if translation, ok := m.Translations[word]; ok {
		return translation, nil
	}

	return fmt.Sprintf("mock translation of %s", word), nil
}

// MockTranscriber mocks audio transcription.
type MockTranscriber struct {
	Text  string
	Err   error
	Calls []string
}

// Transcribe mocks transcribing an audio stream.
func (m *MockTranscriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Transcribe: %s", filename))

	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// Name identifies the mock provider.
func (m *MockTranscriber) Name() string {
	return "mock"
}
