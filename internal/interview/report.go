package interview

// RoundReport is the per-round slice of the results view.
type RoundReport struct {
	Name    string
	Items   []AnsweredItem
	Average float64
	// HasAverage is false for a round with zero answered items; no
	// average is computed for it.
	HasAverage bool
}

// Report is the aggregation view produced at Results: per-round item
// lists and averages, an overall average, and the weakest round label.
type Report struct {
	Rounds     []RoundReport
	Overall    float64
	HasOverall bool
	// WeakestRound is the name of the round with the minimum average
	// among rounds with at least one item, first in round order on
	// ties. Empty when no round has items.
	WeakestRound string
}

// Report builds the aggregation view from the session's current state.
// Scores are already on a 0-10 scale, so every aggregate is a plain
// average; empty rounds contribute nothing and never divide by zero.
func (s *Session) Report() Report {
	var rep Report

	totalScore, totalItems := 0, 0
	weakestIdx := -1

	for _, round := range s.rounds {
		rr := RoundReport{Name: round.Name, Items: round.Answered}

		sum := 0
		for _, item := range round.Answered {
			if item.Evaluation != nil {
				sum += item.Evaluation.Score
			}
		}
		if n := len(round.Answered); n > 0 {
			rr.Average = float64(sum) / float64(n)
			rr.HasAverage = true
			totalScore += sum
			totalItems += n

			if weakestIdx < 0 || rr.Average < rep.Rounds[weakestIdx].Average {
				weakestIdx = len(rep.Rounds)
			}
		}
		rep.Rounds = append(rep.Rounds, rr)
	}

	if totalItems > 0 {
		rep.Overall = float64(totalScore) / float64(totalItems)
		rep.HasOverall = true
	}
	if weakestIdx >= 0 {
		rep.WeakestRound = rep.Rounds[weakestIdx].Name
	}
	return rep
}
