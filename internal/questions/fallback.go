package questions

import (
	"fmt"
	"strings"

	"github.com/abhisek/intervu/internal/resume"
)

// fallbackFillers pads the templated fallback list up to the full ten
// questions when the resume has few usable categories.
var fallbackFillers = []string{
	"What technical challenge are you most proud of solving?",
	"Describe a time you had to learn a new technology quickly for a project",
	"How do you stay updated with the latest developments in your field?",
	"Describe a situation where you had to explain a technical concept to a non-technical person",
	"What's your approach to debugging complex issues?",
	"How do you balance quality with deadlines in your work?",
	"Describe your ideal technical stack for a new project",
	"What metrics do you use to measure the success of your technical work?",
	"How do you approach code reviews, both giving and receiving them?",
	"What would you do in your first month in this role?",
}

// Fallback builds the deterministic ten-question list used when
// generation fails. Templated questions come first, one per populated
// resume category, then fillers until the list has exactly ten entries.
func Fallback(f resume.Facts) []string {
	var out []string

	if len(f.Skills) > 0 {
		out = append(out, fmt.Sprintf("Can you walk us through your experience with %s?", f.Skills[0]))
		if len(f.Skills) > 1 {
			out = append(out, fmt.Sprintf(
				"How would you compare %s and %s in terms of performance and use cases?",
				f.Skills[0], f.Skills[1]))
		}
	}

	if len(f.Experience) > 0 {
		out = append(out, fmt.Sprintf("Tell me about your experience at %s", companyOf(f.Experience[0])))
	}

	if len(f.Projects) > 0 {
		out = append(out, fmt.Sprintf(
			"Describe your project '%s' and what technologies you used", projectNameOf(f.Projects[0])))
	}

	if len(f.Certifications) > 0 {
		out = append(out, fmt.Sprintf(
			"How has your %s certification helped you in practical situations?", f.Certifications[0]))
	}

	for _, filler := range fallbackFillers {
		if len(out) == 10 {
			break
		}
		out = append(out, filler)
	}
	return out
}

// companyOf pulls the employer out of an "Engineer at Acme from 2020"
// style experience line, falling back to the whole line.
func companyOf(entry string) string {
	if idx := strings.Index(entry, " at "); idx >= 0 {
		rest := entry[idx+len(" at "):]
		if from := strings.Index(rest, " from "); from >= 0 {
			rest = rest[:from]
		}
		return rest
	}
	return entry
}

// projectNameOf takes the title before a colon, if any.
func projectNameOf(entry string) string {
	if idx := strings.Index(entry, ":"); idx >= 0 {
		return entry[:idx]
	}
	return entry
}
