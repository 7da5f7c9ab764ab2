package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "evaluation",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    250,
		Success:      true,
		RequestBody:  "[user]\nQ/A pair",
		ResponseBody: "Score: 7",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "generation",
		Success:      false,
		ErrorMessage: "provider unavailable",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Equal(t, "generation", events[0].Purpose)

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "evaluation"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "evaluation", filtered[0].Purpose)

	full, err := repo.GetLLMEvent(ctx, filtered[0].ID)
	require.NoError(t, err)
	require.NotNil(t, full)
	assert.Equal(t, "Score: 7", full.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "m1", Purpose: "evaluation",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true,
		}))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 1)
	assert.Equal(t, 3, byPurpose[0].Calls)
	assert.Equal(t, 300, byPurpose[0].InputTokens)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, "m1", byModel[0].Model)
}

func TestResultRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	rows := []ResultRow{
		{SessionID: "s1", Mode: "complete", RoundName: "HR Round",
			Question: "Tell me about yourself.", Answer: "I am a developer.",
			Score: 7, Feedback: "Decent."},
		{SessionID: "s1", Mode: "complete", RoundName: "Domain Round",
			Question: "What is your approach to problem-solving?", Answer: "(Skipped)",
			Score: 0, Feedback: "Question was skipped."},
	}
	require.NoError(t, repo.SaveResults(ctx, rows))

	sessions, err := repo.ListSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 2, sessions[0].Questions)
	assert.Equal(t, 3.5, sessions[0].AvgScore)

	got, err := repo.SessionResults(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Insertion order preserved.
	assert.Equal(t, "HR Round", got[0].RoundName)
	assert.Equal(t, "(Skipped)", got[1].Answer)
}

func TestResultTimestampPersisted(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	ts := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.SaveResults(ctx, []ResultRow{{
		SessionID: "s-ts", Timestamp: ts, Mode: "hr", RoundName: "HR Round",
		Question: "Why this role?", Answer: "Growth.", Score: 6,
	}}))

	got, err := repo.SessionResults(ctx, "s-ts")
	require.NoError(t, err)
	require.Len(t, got, 1)
	// The caller's timestamp is stored, not the insert time.
	assert.WithinDuration(t, ts, got[0].Timestamp, time.Second)
}

func TestSaveResultsEmpty(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.ResultRepo().SaveResults(context.Background(), nil))
}
