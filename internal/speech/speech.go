// Package speech defines the pluggable audio codec seams. Synthesis and
// recognition are external side effects relative to session state: the
// engine never blocks on them except the single wait for a recognition
// result before it can seed the answer draft.
package speech

import (
	"context"
	"sync"
)

// Synthesizer reads a question aloud. Implementations wrap a TTS
// backend; errors are advisory and never block session progress.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Transcriber captures one spoken utterance and returns its text.
type Transcriber interface {
	Transcribe(ctx context.Context) (string, error)
}

// Recognizer runs a Transcriber asynchronously. Start launches one
// capture; Consume hands the result over exactly once. Only one capture
// is in-flight at a time — a new Start replaces a pending result.
type Recognizer struct {
	transcriber Transcriber

	mu      sync.Mutex
	pending string
	err     error
	ready   bool
}

func NewRecognizer(t Transcriber) *Recognizer {
	return &Recognizer{transcriber: t}
}

// Start begins a capture in the background.
func (r *Recognizer) Start(ctx context.Context) {
	go func() {
		text, err := r.transcriber.Transcribe(ctx)
		r.mu.Lock()
		defer r.mu.Unlock()
		r.pending = text
		r.err = err
		r.ready = true
	}()
}

// Consume returns the captured text if a capture has finished.
// Returns ("", false) while capture is still running or after the
// result was already consumed. A failed capture consumes as empty text.
func (r *Recognizer) Consume() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready {
		return "", false
	}
	text, err := r.pending, r.err
	r.pending = ""
	r.err = nil
	r.ready = false
	if err != nil {
		return "", true
	}
	return text, true
}

// NoopSynthesizer satisfies Synthesizer without producing audio. Used
// when no TTS backend is configured.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Speak(context.Context, string) error { return nil }

// StaticTranscriber returns fixed utterances in order. Useful for tests
// and scripted runs; returns empty text once exhausted.
type StaticTranscriber struct {
	mu         sync.Mutex
	utterances []string
}

func NewStaticTranscriber(utterances ...string) *StaticTranscriber {
	return &StaticTranscriber{utterances: utterances}
}

func (s *StaticTranscriber) Transcribe(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.utterances) == 0 {
		return "", nil
	}
	text := s.utterances[0]
	s.utterances = s.utterances[1:]
	return text, nil
}
