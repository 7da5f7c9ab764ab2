package questions

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// Bank is a categorized question store loaded from a CSV file.
type Bank struct {
	byDomain map[string][]string
	domains  []string
}

// LoadDomainBank reads a two-column CSV (Domain, Questions) into a Bank.
// Rows with an empty question cell are excluded. Column order is taken
// from the header row.
func LoadDomainBank(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("question bank %s: empty file", path)
	}

	domainCol, questionCol := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case "Domain":
			domainCol = i
		case "Questions":
			questionCol = i
		}
	}
	if domainCol < 0 || questionCol < 0 {
		return nil, fmt.Errorf("question bank %s: missing Domain/Questions columns", path)
	}

	b := &Bank{byDomain: map[string][]string{}}
	for _, row := range rows[1:] {
		if len(row) <= domainCol || len(row) <= questionCol {
			continue
		}
		domain := strings.TrimSpace(row[domainCol])
		question := strings.TrimSpace(row[questionCol])
		if domain == "" || question == "" {
			continue
		}
		if _, seen := b.byDomain[domain]; !seen {
			b.domains = append(b.domains, domain)
		}
		b.byDomain[domain] = append(b.byDomain[domain], question)
	}
	return b, nil
}

// LoadHRBank reads a single-column CSV (Question) into a flat list,
// excluding empty rows.
func LoadHRBank(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hr bank: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse hr bank: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("hr bank %s: empty file", path)
	}

	col := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == "Question" {
			col = i
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("hr bank %s: missing Question column", path)
	}

	var out []string
	for _, row := range rows[1:] {
		if len(row) <= col {
			continue
		}
		if q := strings.TrimSpace(row[col]); q != "" {
			out = append(out, q)
		}
	}
	return out, nil
}

// Domains returns the category labels in file order.
func (b *Bank) Domains() []string {
	return append([]string(nil), b.domains...)
}

// Questions returns all questions for one domain.
func (b *Bank) Questions(domain string) []string {
	return append([]string(nil), b.byDomain[domain]...)
}

// Sample draws up to n questions from a pool without replacement. The
// draw is deterministic for a given seeded source, which is what the
// engine injects. Fewer than n pool entries yields the whole pool in
// shuffled order.
func Sample(pool []string, n int, rng *rand.Rand) []string {
	if n > len(pool) {
		n = len(pool)
	}
	perm := rng.Perm(len(pool))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}
