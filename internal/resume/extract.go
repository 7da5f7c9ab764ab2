package resume

import (
	"regexp"
	"sort"
	"strings"
)

// headerLines is how many leading lines are scanned for the candidate name.
const headerLines = 10

var (
	emailRe    = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phoneRe    = regexp.MustCompile(`\b\d{10}\b`)
	githubRe   = regexp.MustCompile(`https://github\.com/[^\s]+`)
	linkedinRe = regexp.MustCompile(`https://www\.linkedin\.com/[^\s]+`)

	// skillDelims splits a skills line into individual tokens.
	// Comma, pipe, bullet, hyphen.
	skillDelims = regexp.MustCompile(`[,|\x{2022}•\-]`)

	nameWordRe = regexp.MustCompile(`^[A-Z][A-Za-z.'-]*$`)
)

// section pairs a bucket name with the keywords that activate it.
// Order matters: a line matching keywords from several sections switches
// to the LAST matching section in this slice. The order is fixed so the
// tie-break is deterministic.
type section struct {
	name     string
	keywords []string
}

var sections = []section{
	{"education", []string{"education", "degree", "university", "college"}},
	{"experience", []string{"experience", "work", "employment", "professional"}},
	{"projects", []string{"project", "portfolio"}},
	{"certifications", []string{"certified", "certification", "nptel", "udemy", "coursera"}},
	{"internships", []string{"intern", "internship", "training"}},
	{"achievements", []string{"achievement", "hackathon", "award", "honor"}},
	{"skills", []string{"skills", "technical", "technologies", "programming", "languages"}},
}

// Extract parses unstructured resume text into Facts. The algorithm is
// fully deterministic: repeated calls on the same text yield identical
// output. Text with no recognizable section headers produces empty list
// fields (a documented limitation, not an error).
func Extract(text string) Facts {
	f := Facts{
		Name:     extractName(text),
		Email:    firstMatch(emailRe, text),
		Phone:    firstMatch(phoneRe, text),
		GitHub:   firstMatch(githubRe, text),
		LinkedIn: firstMatch(linkedinRe, text),
	}

	buckets := map[string][]string{}
	current := ""

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		for _, sec := range sections {
			for _, kw := range sec.keywords {
				if strings.Contains(lower, kw) {
					current = sec.name
					break
				}
			}
		}

		trimmed := strings.TrimSpace(line)
		if current == "" || trimmed == "" {
			continue
		}

		if current == "skills" {
			for _, tok := range skillDelims.Split(trimmed, -1) {
				if tok = strings.TrimSpace(tok); tok != "" {
					buckets[current] = append(buckets[current], tok)
				}
			}
		} else {
			buckets[current] = append(buckets[current], trimmed)
		}
	}

	f.Education = normalize(buckets["education"])
	f.Skills = normalize(buckets["skills"])
	f.Experience = normalize(buckets["experience"])
	f.Projects = normalize(buckets["projects"])
	f.Certifications = normalize(buckets["certifications"])
	f.Internships = normalize(buckets["internships"])
	f.Achievements = normalize(buckets["achievements"])

	return f
}

func firstMatch(re *regexp.Regexp, text string) string {
	return re.FindString(text)
}

// extractName scans the document header for the first line that looks
// like a person name: 2-4 capitalized words, no digits, no contact
// markers, and no section keyword. This is a deterministic heuristic in
// place of a full NER pass.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}

	for _, line := range lines {
		candidate := strings.TrimSpace(line)
		if candidate == "" || strings.ContainsAny(candidate, "@:/0123456789") {
			continue
		}
		if isSectionHeader(candidate) {
			continue
		}

		words := strings.Fields(candidate)
		if len(words) < 2 || len(words) > 4 {
			continue
		}

		ok := true
		for _, w := range words {
			if !nameWordRe.MatchString(w) {
				ok = false
				break
			}
		}
		if ok {
			return candidate
		}
	}
	return ""
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, sec := range sections {
		for _, kw := range sec.keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// normalize deduplicates, drops empties, and sorts for determinism.
func normalize(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}
