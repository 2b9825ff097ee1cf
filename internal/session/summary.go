package session

// Summary is the final result shown when a session ends.
type Summary struct {
	Score int
	Total int
}

// BuildSummary creates a Summary from the session's current state.
func BuildSummary(s *Session) Summary {
	return Summary{
		Score: s.Score(),
		Total: s.Len(),
	}
}

// Percent returns the score as a whole percentage, 0 for an empty session.
func (sum Summary) Percent() int {
	if sum.Total == 0 {
		return 0
	}
	return sum.Score * 100 / sum.Total
}

// Perfect reports whether every question was answered correctly.
func (sum Summary) Perfect() bool {
	return sum.Total > 0 && sum.Score == sum.Total
}
