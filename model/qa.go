package model

// QAEntry is one row of the FAQ table: a standard question and its answer.
// Entries are immutable once loaded and have no identity beyond their position
// in the source list; duplicate entries are scored independently.
type QAEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ScoredMatch is a candidate entry together with its similarity to the query.
type ScoredMatch struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"` // In [0.0, 1.0]
}

// QueryResult is the outcome of ranking one query against a candidate set.
// Matches is sorted by Score descending, ties keeping candidate order.
// ExactMatch is nil when no entry in Matches equals the raw query.
type QueryResult struct {
	Matches    []ScoredMatch `json:"matches"`
	ExactMatch *ScoredMatch  `json:"exact_match,omitempty"`
}

// HasMatches reports whether the result carries at least one match.
func (r QueryResult) HasMatches() bool {
	return len(r.Matches) > 0
}
