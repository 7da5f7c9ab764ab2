// Package evaluate scores interview answers through an LLM provider.
// The provider is a black box: its output is parsed strictly and any
// failure degrades to a safe zero-score evaluation so a round of
// scoring always completes.
package evaluate

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/logger"
)

// Evaluation is the scored outcome for one answer. Score 0 is reserved
// for skipped or unevaluable answers; a valid service response scores
// in 1-10.
type Evaluation struct {
	Score           int    `json:"score"`
	Feedback        string `json:"feedback"`
	SuggestedAnswer string `json:"suggested_answer"`
}

// ScoringError reports a failed or unusable scoring call. Its message
// becomes the feedback text of the safe-default evaluation.
type ScoringError struct {
	Cause string
	Err   error
}

func (e *ScoringError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scoring failed: %s: %v", e.Cause, e.Err)
	}
	return fmt.Sprintf("scoring failed: %s", e.Cause)
}

func (e *ScoringError) Unwrap() error { return e.Err }

// SafeDefault converts a scoring failure into the evaluation recorded
// in its place. The batch never aborts on one bad call.
func SafeDefault(err error) Evaluation {
	return Evaluation{Score: 0, Feedback: err.Error()}
}

// Skipped is the pre-filled evaluation for a skipped question. No
// service call is made for it.
func Skipped() Evaluation {
	return Evaluation{Score: 0, Feedback: "Question was skipped."}
}

const labeledPrompt = `Interview Question: %s
Candidate Answer: %s

Please provide:
1. A score from 1-10 (just the number)
2. Detailed feedback on what was good and what could be improved
3. A suggested better answer

Format your response as:
Score: [number]
Feedback: [text]
Suggested Answer: [text]`

const structuredSystem = `You are an expert interview evaluator. Given an interview question and the candidate's answer, analyze it thoroughly.

Focus on:
- Relevance to the question
- Clarity and structure
- Use of real examples or evidence
- Depth of insight and reflection`

// evaluationSchema constrains structured-mode responses. Providers
// validate the response body against it before it is trusted.
var evaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Score and feedback for one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 10,
			},
			"feedback": map[string]any{
				"type": "string",
			},
			"suggested_answer": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}

// Evaluator scores answers via an llm.Provider. Structured mode asks
// the provider for schema-constrained JSON; the default mode parses the
// labeled-text wire format.
type Evaluator struct {
	provider   llm.Provider
	structured bool
	log        *zap.Logger
}

func New(provider llm.Provider, log *zap.Logger) *Evaluator {
	return &Evaluator{provider: provider, log: log}
}

// NewStructured returns an evaluator that requests schema-validated
// JSON instead of labeled text.
func NewStructured(provider llm.Provider, log *zap.Logger) *Evaluator {
	return &Evaluator{provider: provider, structured: true, log: log}
}

// Evaluate scores one answer. A non-nil error is always a
// *ScoringError; callers convert it with SafeDefault and continue.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer string) (Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(labeledPrompt, question, answer)},
		},
		Temperature: 0.5,
	}
	if e.structured {
		req.System = structuredSystem
		req.Schema = evaluationSchema
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return Evaluation{}, &ScoringError{Cause: "service call failed", Err: err}
	}

	var ev Evaluation
	if e.structured {
		ev, err = parseStructured(resp.Content)
	} else {
		ev, err = parseLabeled(resp.Text())
	}
	if err != nil {
		e.log.Warn("scoring response unusable",
			zap.String("question", logger.Truncate(question, 80)),
			zap.Error(err))
		return Evaluation{}, err
	}
	return ev, nil
}

// parseStructured decodes a schema-validated JSON response. The
// provider already rejected non-conforming bodies, so failures here
// mean the provider contract broke.
func parseStructured(raw json.RawMessage) (Evaluation, error) {
	var ev Evaluation
	if err := json.Unmarshal(raw, &ev); err != nil {
		return Evaluation{}, &ScoringError{Cause: "malformed structured response", Err: err}
	}
	if ev.Score < 1 || ev.Score > 10 {
		return Evaluation{}, &ScoringError{Cause: fmt.Sprintf("score %d out of range", ev.Score)}
	}
	if ev.Feedback == "" {
		return Evaluation{}, &ScoringError{Cause: "missing feedback"}
	}
	return ev, nil
}
