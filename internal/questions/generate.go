package questions

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/resume"
)

// generationPrompt asks for eleven numbered lines. Models tend to lead
// with a preamble line even when told not to; requesting one extra and
// discarding index zero absorbs it. See parseGenerated.
const generationPrompt = `You are a technical interview coach. Analyze this resume data and generate exactly 11 technical and behavioral interview questions that would be specifically relevant to this candidate. Just provide the questions without any general commentary.

Resume Summary:
%s

Requirements:
1. Generate exactly 11 questions
2. Questions must be specifically relevant to the resume content
3. Include both technical and behavioral questions
4. For technical roles, focus on their specific skills and tools
5. For each experience item, generate a follow-up question
6. Make questions realistic like a real technical interview

Return ONLY the questions as a numbered list (1-11), nothing else.`

// GenerationError reports an unusable generated question list. It is
// always recovered by the fallback list, never surfaced to the session.
type GenerationError struct {
	Cause string
}

func (e *GenerationError) Error() string {
	return "question generation failed: " + e.Cause
}

// Generator produces resume-tailored question lists from the scoring
// service, with a deterministic fallback so question provisioning never
// blocks session progress.
type Generator struct {
	provider llm.Provider
	log      *zap.Logger
}

func NewGenerator(provider llm.Provider, log *zap.Logger) *Generator {
	return &Generator{provider: provider, log: log}
}

// FromResume returns exactly ten non-empty questions tailored to the
// facts. Any failure (provider error, malformed list, short list) is
// recovered by the templated fallback list and never returned as an
// error to the session.
func (g *Generator) FromResume(ctx context.Context, facts resume.Facts) []string {
	ctx = llm.WithPurpose(ctx, "generation")

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(generationPrompt, facts.Summary())},
		},
		MaxTokens:   800,
		Temperature: 0.7,
	})
	if err != nil {
		g.log.Warn("question generation failed, using fallback", zap.Error(err))
		return Fallback(facts)
	}

	qs, err := parseGenerated(resp.Text())
	if err != nil {
		g.log.Warn("generated question list malformed, using fallback", zap.Error(err))
		return Fallback(facts)
	}
	return qs
}

// parseGenerated splits the raw response into questions: one per
// non-empty line, "N. " numbering stripped, first line discarded as
// preamble, lines 1-10 kept. Fewer than eleven usable lines means the
// model ignored the contract and the caller falls back.
func parseGenerated(raw string) ([]string, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, rest, found := strings.Cut(line, ". "); found {
			line = rest
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 11 {
		return nil, &GenerationError{Cause: fmt.Sprintf("expected 11 questions, got %d lines", len(lines))}
	}
	return lines[1:11], nil
}
