package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/intervu/internal/llm"
)

func TestParseLabeledComplete(t *testing.T) {
	raw := `Score: 8
Feedback: Well-structured answer with good examples.
Suggested Answer: A strong answer would also mention measurable impact.`

	ev, err := parseLabeled(raw)
	if err != nil {
		t.Fatalf("parseLabeled: %v", err)
	}
	if ev.Score != 8 {
		t.Errorf("score = %d", ev.Score)
	}
	if ev.Feedback != "Well-structured answer with good examples." {
		t.Errorf("feedback = %q", ev.Feedback)
	}
	if ev.SuggestedAnswer != "A strong answer would also mention measurable impact." {
		t.Errorf("suggested = %q", ev.SuggestedAnswer)
	}
}

func TestParseLabeledMultilineFeedback(t *testing.T) {
	raw := "Score: 6\nFeedback: Good start.\nCould use more depth.\nSuggested Answer: Try the STAR format."

	ev, err := parseLabeled(raw)
	if err != nil {
		t.Fatalf("parseLabeled: %v", err)
	}
	if ev.Feedback != "Good start.\nCould use more depth." {
		t.Errorf("feedback = %q", ev.Feedback)
	}
}

func TestParseLabeledMissingSuggestedAnswer(t *testing.T) {
	ev, err := parseLabeled("Score: 7\nFeedback: Decent answer.")
	if err != nil {
		t.Fatalf("parseLabeled: %v", err)
	}
	if ev.SuggestedAnswer != "" {
		t.Errorf("suggested = %q, want empty", ev.SuggestedAnswer)
	}
}

func TestParseLabeledFailures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing score", "Feedback: ok\nSuggested Answer: x"},
		{"missing feedback", "Score: 5\nSuggested Answer: x"},
		{"score too high", "Score: 42\nFeedback: ok"},
		{"score zero", "Score: 0\nFeedback: ok"},
		{"empty response", ""},
		{"unrelated prose", "I cannot evaluate this answer."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLabeled(tc.raw)
			var se *ScoringError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want *ScoringError", err)
			}
		})
	}
}

func TestEvaluateLabeled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Score: 9\nFeedback: Excellent.\nSuggested Answer: n/a"),
	})
	e := New(mock, zap.NewNop())

	ev, err := e.Evaluate(context.Background(), "Tell me about yourself.", "I am an engineer.")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Score != 9 {
		t.Errorf("score = %d", ev.Score)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Tell me about yourself.") || !strings.Contains(prompt, "I am an engineer.") {
		t.Errorf("prompt missing question or answer:\n%s", prompt)
	}
}

func TestEvaluateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	e := New(mock, zap.NewNop())

	_, err := e.Evaluate(context.Background(), "q", "a")
	var se *ScoringError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *ScoringError", err)
	}

	ev := SafeDefault(err)
	if ev.Score != 0 {
		t.Errorf("safe default score = %d, want 0", ev.Score)
	}
	if !strings.Contains(ev.Feedback, "rate limited") {
		t.Errorf("safe default feedback = %q, want cause documented", ev.Feedback)
	}
}

func TestEvaluateStructured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":7,"feedback":"Relevant and clear.","suggested_answer":"Add an example."}`),
	})
	e := NewStructured(mock, zap.NewNop())

	ev, err := e.Evaluate(context.Background(), "q", "a")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Score != 7 || ev.Feedback != "Relevant and clear." || ev.SuggestedAnswer != "Add an example." {
		t.Errorf("ev = %+v", ev)
	}

	if mock.Calls[0].Schema == nil {
		t.Error("structured mode did not set request schema")
	}
}

func TestEvaluateStructuredOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":0,"feedback":"x"}`),
	})
	e := NewStructured(mock, zap.NewNop())

	if _, err := e.Evaluate(context.Background(), "q", "a"); err == nil {
		t.Fatal("expected error for out-of-range score")
	}
}

func TestSkippedEvaluation(t *testing.T) {
	ev := Skipped()
	if ev.Score != 0 {
		t.Errorf("score = %d, want 0", ev.Score)
	}
	if ev.Feedback == "" {
		t.Error("skipped feedback empty")
	}
}
