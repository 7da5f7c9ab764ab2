package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = default 50)
	Purpose string // filter by purpose label ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates token usage for one purpose or model.
type UsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]UsageStat, error)
}

// ResultRow is one scored question/answer pair from a finished interview.
type ResultRow struct {
	SessionID       string
	Timestamp       time.Time
	Mode            string
	RoundName       string
	Question        string
	Answer          string
	Score           int
	Feedback        string
	SuggestedAnswer string
}

// SessionSummaryRow aggregates one past session for listing.
type SessionSummaryRow struct {
	SessionID string
	Timestamp time.Time
	Mode      string
	Questions int
	AvgScore  float64
}

// ResultRepo persists completed interview results for later review.
type ResultRepo interface {
	// SaveResults stores all rows of a finished session in one transaction.
	SaveResults(ctx context.Context, rows []ResultRow) error

	// ListSessions returns summaries of past sessions, newest first.
	ListSessions(ctx context.Context, limit int) ([]SessionSummaryRow, error)

	// SessionResults returns all rows for one session in insertion order.
	SessionResults(ctx context.Context, sessionID string) ([]ResultRow, error)
}
