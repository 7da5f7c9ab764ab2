package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/questions"
	"github.com/abhisek/intervu/internal/store"
)

// memResults captures saved rows without a real database.
type memResults struct {
	rows []store.ResultRow
}

func (m *memResults) SaveResults(_ context.Context, rows []store.ResultRow) error {
	m.rows = append(m.rows, rows...)
	return nil
}

func (m *memResults) ListSessions(context.Context, int) ([]store.SessionSummaryRow, error) {
	return nil, nil
}

func (m *memResults) SessionResults(context.Context, string) ([]store.ResultRow, error) {
	return nil, nil
}

func labeledResponse(score int) llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(fmt.Sprintf("Score: %d\nFeedback: Fine.\nSuggested Answer: n/a", score)),
	}
}

func TestRunHRMode(t *testing.T) {
	// 3 questions: answer, skip, empty-then-answer.
	input := "first answer\n/skip\n\nthird answer\n"
	var out strings.Builder

	mock := llm.NewMockProvider(labeledResponse(8), labeledResponse(6))
	results := &memResults{}
	a := New(Config{Mode: interview.ModeHR, Count: 3, Seed: 1},
		mock, results, strings.NewReader(input), &out, zap.NewNop())

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Two real answers evaluated, the skip bypassed the service.
	if n := mock.CallCount(); n != 2 {
		t.Errorf("provider calls = %d, want 2", n)
	}
	if len(results.rows) != 3 {
		t.Fatalf("saved rows = %d, want 3", len(results.rows))
	}
	if results.rows[1].Answer != interview.SkippedAnswer {
		t.Errorf("row 1 answer = %q, want skip sentinel", results.rows[1].Answer)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "Please answer the question or type /skip.") {
		t.Error("empty answer warning not rendered")
	}
	if !strings.Contains(rendered, "Interview Report") {
		t.Error("report not rendered")
	}
	if !strings.Contains(rendered, "Round average:") {
		t.Error("round average not rendered")
	}
}

func TestRunCompleteModeRoundPlan(t *testing.T) {
	a := New(Config{Mode: interview.ModeComplete},
		llm.NewMockProvider(), nil, strings.NewReader(""), &strings.Builder{}, zap.NewNop())

	rounds, err := a.provisionRounds(context.Background())
	if err != nil {
		t.Fatalf("provisionRounds: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("rounds = %d, want 3", len(rounds))
	}

	want := []struct {
		name  string
		count int
	}{
		{"HR Round", 10},
		{"Domain Round", 10},
		{"Resume Round", 5},
	}
	for i, w := range want {
		if rounds[i].Name != w.name || len(rounds[i].Questions) != w.count {
			t.Errorf("round %d = %q (%d questions), want %q (%d)",
				i, rounds[i].Name, len(rounds[i].Questions), w.name, w.count)
		}
	}
}

func TestCompleteModeShufflesBanks(t *testing.T) {
	newRounds := func(seed int64) []interview.Round {
		a := New(Config{Mode: interview.ModeComplete, Seed: seed},
			llm.NewMockProvider(), nil, strings.NewReader(""), &strings.Builder{}, zap.NewNop())
		rounds, err := a.provisionRounds(context.Background())
		if err != nil {
			t.Fatalf("provisionRounds: %v", err)
		}
		return rounds
	}

	r1 := newRounds(7)
	r2 := newRounds(7)

	// HR and domain rounds draw the whole bank in shuffled order.
	for i, bank := range [][]string{questions.HR, questions.GeneralDomain} {
		got := r1[i].Questions
		if len(got) != len(bank) {
			t.Fatalf("round %d questions = %d, want %d", i, len(got), len(bank))
		}
		seen := make(map[string]bool, len(got))
		for _, q := range got {
			seen[q] = true
		}
		for _, q := range bank {
			if !seen[q] {
				t.Errorf("round %d missing bank question %q", i, q)
			}
		}
	}

	// Same seed, same draw.
	for i := range r1[0].Questions {
		if r1[0].Questions[i] != r2[0].Questions[i] {
			t.Fatalf("seeded complete-mode draw not deterministic at %d", i)
		}
	}

	// Resume prompts stay in their written order.
	for i, q := range questions.ResumePrompts {
		if r1[2].Questions[i] != q {
			t.Errorf("resume prompt %d = %q, want %q", i, r1[2].Questions[i], q)
		}
	}
}

func TestProvisionDomainModeSeeded(t *testing.T) {
	newApp := func() *App {
		return New(Config{Mode: interview.ModeDomain, Count: 4, Seed: 99},
			llm.NewMockProvider(), nil, strings.NewReader(""), &strings.Builder{}, zap.NewNop())
	}

	r1, err := newApp().provisionRounds(context.Background())
	if err != nil {
		t.Fatalf("provisionRounds: %v", err)
	}
	r2, _ := newApp().provisionRounds(context.Background())

	if len(r1[0].Questions) != 4 {
		t.Fatalf("questions = %d, want 4", len(r1[0].Questions))
	}
	for i := range r1[0].Questions {
		if r1[0].Questions[i] != r2[0].Questions[i] {
			t.Errorf("seeded sampling not deterministic at %d", i)
		}
	}
}

func TestProvisionResumeModeMissingFile(t *testing.T) {
	a := New(Config{Mode: interview.ModeResume, ResumePath: "/does/not/exist.txt"},
		llm.NewMockProvider(), nil, strings.NewReader(""), &strings.Builder{}, zap.NewNop())

	if _, err := a.provisionRounds(context.Background()); err == nil {
		t.Fatal("expected error for missing resume file")
	}
}
