// Package interview holds the session state machine: round and question
// progression, answer capture, batch scoring at round boundaries, and
// result aggregation. A Session is single-owner mutable state — one
// action runs to completion before the next is accepted, and nothing
// here persists across process restarts.
package interview

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/intervu/internal/evaluate"
)

// Stage is the session's position in the state machine.
type Stage int

const (
	StageIntro Stage = iota
	StageAnswering
	StageScoring
	StageResults
)

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageAnswering:
		return "answering"
	case StageScoring:
		return "scoring"
	case StageResults:
		return "results"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Mode labels the interview composition.
type Mode string

const (
	ModeDomain   Mode = "domain"
	ModeHR       Mode = "hr"
	ModeResume   Mode = "resume"
	ModeComplete Mode = "complete"
)

// SkippedAnswer is the sentinel recorded for a skipped question.
const SkippedAnswer = "(Skipped)"

var (
	// ErrEmptyAnswer rejects a Submit whose final answer is empty.
	// Session state is left unchanged.
	ErrEmptyAnswer = errors.New("answer is empty")

	// ErrNotAnswering rejects Submit/Skip outside the Answering stage.
	ErrNotAnswering = errors.New("no question is active")

	// ErrNotIntro rejects Start outside the Intro stage.
	ErrNotIntro = errors.New("session already started")

	// ErrNoRounds rejects Start with an empty round plan.
	ErrNoRounds = errors.New("no rounds provisioned")
)

// Evaluator scores one answer. A returned error is converted to the
// safe default evaluation; it never aborts a round.
type Evaluator interface {
	Evaluate(ctx context.Context, question, answer string) (evaluate.Evaluation, error)
}

// AnsweredItem is one completed question/answer pair. Question and
// Answer are immutable once recorded; Evaluation is nil until the
// round's scoring pass sets it, then immutable.
type AnsweredItem struct {
	Question   string
	Answer     string
	Evaluation *evaluate.Evaluation
}

// Round is one named block of questions. Questions are fixed once
// provisioned; Answered grows by one per Submit or Skip.
type Round struct {
	Name      string
	Questions []string
	Answered  []AnsweredItem
}

// scoringParallelism bounds concurrent evaluation calls per round.
const scoringParallelism = 4

// Session drives one interview from Intro to Results.
type Session struct {
	ID   uuid.UUID
	Mode Mode

	stage       Stage
	rounds      []Round
	roundIdx    int
	questionIdx int
	draft       Draft

	evaluator Evaluator
	log       *zap.Logger
}

func NewSession(mode Mode, evaluator Evaluator, log *zap.Logger) *Session {
	return &Session{Mode: mode, evaluator: evaluator, log: log}
}

// Start provisions the session's rounds and moves to the first
// question. All rounds are fixed up front; nothing re-samples mid-run.
func (s *Session) Start(rounds []Round) error {
	if s.stage != StageIntro {
		return ErrNotIntro
	}
	if len(rounds) == 0 {
		return ErrNoRounds
	}
	for _, r := range rounds {
		if len(r.Questions) == 0 {
			return fmt.Errorf("round %q: %w", r.Name, ErrNoRounds)
		}
	}

	s.ID = uuid.New()
	s.rounds = rounds
	s.roundIdx = 0
	s.questionIdx = 0
	s.draft.Reset()
	s.stage = StageAnswering

	s.log.Info("session started",
		zap.String("session_id", s.ID.String()),
		zap.String("mode", string(s.Mode)),
		zap.Int("rounds", len(rounds)))
	return nil
}

// Stage reports the current state machine position.
func (s *Session) Stage() Stage { return s.stage }

// Draft returns the active question's capture buffer.
func (s *Session) Draft() *Draft { return &s.draft }

// Rounds returns the session's rounds, valid after Start.
func (s *Session) Rounds() []Round { return s.rounds }

// CurrentRound returns the active round name and index.
func (s *Session) CurrentRound() (string, int) {
	if s.stage != StageAnswering && s.stage != StageScoring {
		return "", -1
	}
	return s.rounds[s.roundIdx].Name, s.roundIdx
}

// CurrentQuestion returns the active question text and its zero-based
// index within the round. ok is false outside the Answering stage.
func (s *Session) CurrentQuestion() (text string, index int, ok bool) {
	if s.stage != StageAnswering {
		return "", 0, false
	}
	return s.rounds[s.roundIdx].Questions[s.questionIdx], s.questionIdx, true
}

// Submit records the draft's final answer for the current question and
// advances. An empty final answer is rejected with ErrEmptyAnswer and
// no state changes. Crossing a round boundary triggers the round's
// scoring pass before the next question becomes active.
func (s *Session) Submit(ctx context.Context) error {
	if s.stage != StageAnswering {
		return ErrNotAnswering
	}

	answer := s.draft.FinalAnswer()
	if answer == "" {
		return ErrEmptyAnswer
	}

	round := &s.rounds[s.roundIdx]
	round.Answered = append(round.Answered, AnsweredItem{
		Question: round.Questions[s.questionIdx],
		Answer:   answer,
	})
	s.advance(ctx)
	return nil
}

// Skip records the skip sentinel with a pre-filled zero-score
// evaluation and advances. The scoring service is never called for a
// skipped question.
func (s *Session) Skip(ctx context.Context) error {
	if s.stage != StageAnswering {
		return ErrNotAnswering
	}

	ev := evaluate.Skipped()
	round := &s.rounds[s.roundIdx]
	round.Answered = append(round.Answered, AnsweredItem{
		Question:   round.Questions[s.questionIdx],
		Answer:     SkippedAnswer,
		Evaluation: &ev,
	})
	s.advance(ctx)
	return nil
}

// Restart clears all session entities and returns to Intro.
func (s *Session) Restart() {
	s.log.Info("session restarted", zap.String("session_id", s.ID.String()))
	*s = Session{Mode: s.Mode, evaluator: s.evaluator, log: s.log}
}

// advance moves the question cursor forward by exactly one, resetting
// the draft. Reaching the end of a round scores it, then either opens
// the next round or ends at Results.
func (s *Session) advance(ctx context.Context) {
	s.questionIdx++
	s.draft.Reset()

	if s.questionIdx < len(s.rounds[s.roundIdx].Questions) {
		return
	}

	s.stage = StageScoring
	s.scoreRound(ctx)

	if s.roundIdx+1 < len(s.rounds) {
		s.roundIdx++
		s.questionIdx = 0
		s.stage = StageAnswering
		return
	}
	s.stage = StageResults
}

// scoreRound evaluates every unevaluated item in the active round.
// Calls run in parallel; results land back in question order and a
// failure on one item never blocks the others.
func (s *Session) scoreRound(ctx context.Context) {
	round := &s.rounds[s.roundIdx]

	var g errgroup.Group
	g.SetLimit(scoringParallelism)

	for i := range round.Answered {
		if round.Answered[i].Evaluation != nil {
			continue
		}
		item := &round.Answered[i]
		g.Go(func() error {
			ev, err := s.evaluator.Evaluate(ctx, item.Question, item.Answer)
			if err != nil {
				s.log.Warn("evaluation failed, recording safe default",
					zap.String("session_id", s.ID.String()),
					zap.String("round", round.Name),
					zap.Error(err))
				ev = evaluate.SafeDefault(err)
			}
			item.Evaluation = &ev
			return nil
		})
	}
	g.Wait()

	s.log.Info("round scored",
		zap.String("session_id", s.ID.String()),
		zap.String("round", round.Name),
		zap.Int("items", len(round.Answered)))
}
