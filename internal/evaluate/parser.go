package evaluate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	scoreRe     = regexp.MustCompile(`Score:\s*(\d+)`)
	feedbackRe  = regexp.MustCompile(`(?s)Feedback:\s*(.+?)(?:\nSuggested Answer:|$)`)
	suggestedRe = regexp.MustCompile(`(?s)Suggested Answer:\s*(.+)`)
)

// parseLabeled extracts the three labeled fields from a free-text
// scoring response. Score and Feedback are required; a missing
// Suggested Answer yields an empty string, not a failure. The text is
// never structurally trusted beyond these three extractions.
func parseLabeled(raw string) (Evaluation, error) {
	m := scoreRe.FindStringSubmatch(raw)
	if m == nil {
		return Evaluation{}, &ScoringError{Cause: "response missing Score field"}
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return Evaluation{}, &ScoringError{Cause: "unparsable score", Err: err}
	}
	if score < 1 || score > 10 {
		return Evaluation{}, &ScoringError{Cause: fmt.Sprintf("score %d out of range", score)}
	}

	m = feedbackRe.FindStringSubmatch(raw)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return Evaluation{}, &ScoringError{Cause: "response missing Feedback field"}
	}
	feedback := strings.TrimSpace(m[1])

	suggested := ""
	if m = suggestedRe.FindStringSubmatch(raw); m != nil {
		suggested = strings.TrimSpace(m[1])
	}

	return Evaluation{
		Score:           score,
		Feedback:        feedback,
		SuggestedAnswer: suggested,
	}, nil
}
