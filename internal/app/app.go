// Package app wires the interview engine to its collaborators: question
// provisioning, answer capture, scoring, speech, persistence. It drives
// one session per invocation over a line-based terminal loop.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/intervu/internal/evaluate"
	"github.com/abhisek/intervu/internal/interview"
	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/questions"
	"github.com/abhisek/intervu/internal/resume"
	"github.com/abhisek/intervu/internal/speech"
	"github.com/abhisek/intervu/internal/store"
)

// Config selects the interview composition for one run.
type Config struct {
	Mode       interview.Mode
	Domain     string // bank category for domain mode
	Count      int    // questions per single-round mode; 0 = mode default
	BankPath   string // Domain,Questions CSV; built-in bank when empty
	HRBankPath string // Question CSV; built-in bank when empty
	ResumePath string // required for resume mode
	Seed       int64  // 0 = time-seeded sampling
	Structured bool   // schema-validated JSON scoring instead of labeled text
}

// App owns the collaborators of one interview run.
type App struct {
	cfg       Config
	provider  llm.Provider
	evaluator *interviewEvaluator
	generator *questions.Generator
	loader    *resume.Loader
	synth     speech.Synthesizer
	results   store.ResultRepo
	log       *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

// interviewEvaluator adapts evaluate.Evaluator to the engine's
// interface without re-exporting the concrete type.
type interviewEvaluator struct {
	inner *evaluate.Evaluator
}

func (e *interviewEvaluator) Evaluate(ctx context.Context, question, answer string) (evaluate.Evaluation, error) {
	return e.inner.Evaluate(ctx, question, answer)
}

func New(cfg Config, provider llm.Provider, results store.ResultRepo, in io.Reader, out io.Writer, log *zap.Logger) *App {
	ev := evaluate.New(provider, log)
	if cfg.Structured {
		ev = evaluate.NewStructured(provider, log)
	}
	return &App{
		cfg:       cfg,
		provider:  provider,
		evaluator: &interviewEvaluator{inner: ev},
		generator: questions.NewGenerator(provider, log),
		loader:    resume.NewLoader(),
		synth:     speech.NoopSynthesizer{},
		results:   results,
		log:       log,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// SetSynthesizer replaces the no-op question reader with a real TTS
// backend.
func (a *App) SetSynthesizer(s speech.Synthesizer) {
	a.synth = s
}

// Run conducts one full interview: provision rounds, collect answers,
// score at round boundaries, render the report, persist the results.
func (a *App) Run(ctx context.Context) error {
	rounds, err := a.provisionRounds(ctx)
	if err != nil {
		return err
	}

	session := interview.NewSession(a.cfg.Mode, a.evaluator, a.log)
	if err := session.Start(rounds); err != nil {
		return err
	}

	if err := a.answerLoop(ctx, session); err != nil {
		return err
	}

	report := session.Report()
	a.renderReport(report)

	if err := a.saveResults(ctx, session); err != nil {
		// Persistence is best-effort; the report already rendered.
		a.log.Warn("saving results failed", zap.Error(err))
	}
	return nil
}

// answerLoop reads one line per question. "/skip" skips, anything else
// submits; empty submissions are rejected and the question repeats.
func (a *App) answerLoop(ctx context.Context, session *interview.Session) error {
	for session.Stage() == interview.StageAnswering {
		question, idx, ok := session.CurrentQuestion()
		if !ok {
			break
		}
		name, _ := session.CurrentRound()
		fmt.Fprintf(a.out, "\n[%s] Q%d: %s\n", name, idx+1, question)
		if err := a.synth.Speak(ctx, question); err != nil {
			a.log.Debug("speech synthesis failed", zap.Error(err))
		}

		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return fmt.Errorf("input closed mid-interview: %w", a.in.Err())
		}
		line := strings.TrimSpace(a.in.Text())

		if line == "/skip" {
			if err := session.Skip(ctx); err != nil {
				return err
			}
			continue
		}

		session.Draft().SetText(line)
		if err := session.Submit(ctx); err != nil {
			if err == interview.ErrEmptyAnswer {
				fmt.Fprintln(a.out, "Please answer the question or type /skip.")
				continue
			}
			return err
		}
	}
	return nil
}

// provisionRounds builds the round plan for the configured mode. All
// rounds are fixed before the first question is shown.
func (a *App) provisionRounds(ctx context.Context) ([]interview.Round, error) {
	rng := rand.New(rand.NewSource(a.cfg.Seed))
	if a.cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch a.cfg.Mode {
	case interview.ModeDomain:
		pool, err := a.domainPool()
		if err != nil {
			return nil, err
		}
		return []interview.Round{
			{Name: "Domain Round", Questions: questions.Sample(pool, a.count(10), rng)},
		}, nil

	case interview.ModeHR:
		pool, err := a.hrPool()
		if err != nil {
			return nil, err
		}
		return []interview.Round{
			{Name: "HR Round", Questions: questions.Sample(pool, a.count(5), rng)},
		}, nil

	case interview.ModeResume:
		facts, err := a.loader.LoadFacts(a.cfg.ResumePath)
		if err != nil {
			return nil, fmt.Errorf("resume mode: %w", err)
		}
		return []interview.Round{
			{Name: "Resume Round", Questions: a.generator.FromResume(ctx, facts)},
		}, nil

	case interview.ModeComplete:
		// HR and domain rounds are shuffled draws from the built-in
		// banks; the resume prompts keep their fixed order.
		return []interview.Round{
			{Name: "HR Round", Questions: questions.Sample(questions.HR, len(questions.HR), rng)},
			{Name: "Domain Round", Questions: questions.Sample(questions.GeneralDomain, len(questions.GeneralDomain), rng)},
			{Name: "Resume Round", Questions: append([]string(nil), questions.ResumePrompts...)},
		}, nil
	}
	return nil, fmt.Errorf("unknown interview mode %q", a.cfg.Mode)
}

func (a *App) count(def int) int {
	if a.cfg.Count > 0 {
		return a.cfg.Count
	}
	return def
}

func (a *App) domainPool() ([]string, error) {
	if a.cfg.BankPath == "" {
		return questions.GeneralDomain, nil
	}
	bank, err := questions.LoadDomainBank(a.cfg.BankPath)
	if err != nil {
		return nil, err
	}
	pool := bank.Questions(a.cfg.Domain)
	if len(pool) == 0 {
		return nil, fmt.Errorf("no questions for domain %q in %s", a.cfg.Domain, a.cfg.BankPath)
	}
	return pool, nil
}

func (a *App) hrPool() ([]string, error) {
	if a.cfg.HRBankPath == "" {
		return questions.HR, nil
	}
	return questions.LoadHRBank(a.cfg.HRBankPath)
}

func (a *App) renderReport(report interview.Report) {
	fmt.Fprintln(a.out, "\n================ Interview Report ================")
	for _, rr := range report.Rounds {
		fmt.Fprintf(a.out, "\n-- %s --\n", rr.Name)
		for i, item := range rr.Items {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, item.Question)
			fmt.Fprintf(a.out, "   Answer: %s\n", item.Answer)
			if item.Evaluation != nil {
				fmt.Fprintf(a.out, "   Score: %d/10\n", item.Evaluation.Score)
				fmt.Fprintf(a.out, "   Feedback: %s\n", item.Evaluation.Feedback)
				if item.Evaluation.SuggestedAnswer != "" {
					fmt.Fprintf(a.out, "   Suggested: %s\n", item.Evaluation.SuggestedAnswer)
				}
			}
		}
		if rr.HasAverage {
			fmt.Fprintf(a.out, "Round average: %.1f/10\n", rr.Average)
		}
	}
	if report.HasOverall {
		fmt.Fprintf(a.out, "\nOverall score: %.1f/10\n", report.Overall)
	}
	if report.WeakestRound != "" {
		fmt.Fprintf(a.out, "Focus area: %s\n", report.WeakestRound)
	}
}

func (a *App) saveResults(ctx context.Context, session *interview.Session) error {
	if a.results == nil {
		return nil
	}

	now := time.Now()
	var rows []store.ResultRow
	for _, round := range session.Rounds() {
		for _, item := range round.Answered {
			row := store.ResultRow{
				SessionID: session.ID.String(),
				Timestamp: now,
				Mode:      string(session.Mode),
				RoundName: round.Name,
				Question:  item.Question,
				Answer:    item.Answer,
			}
			if item.Evaluation != nil {
				row.Score = item.Evaluation.Score
				row.Feedback = item.Evaluation.Feedback
				row.SuggestedAnswer = item.Evaluation.SuggestedAnswer
			}
			rows = append(rows, row)
		}
	}
	return a.results.SaveResults(ctx, rows)
}
