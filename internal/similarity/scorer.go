// Package similarity scores how closely a query resembles a candidate question
// using a character-set Jaccard index plus a literal-containment bonus.
package similarity

import (
	"fmt"
	"strings"
)

const (
	// ContainmentBonus is added when the query occurs verbatim inside the candidate.
	ContainmentBonus = 0.5
	// MaxScore is the upper bound of every score.
	MaxScore = 1.0
)

// Score returns the similarity of candidate to query in [0.0, 1.0].
// Both strings are treated as sets of runes; case folding is the caller's job.
// An empty query always scores 0.0.
func Score(query, candidate string) float64 {
	if query == "" {
		return 0.0
	}

	queryChars := charSet(query)
	candidateChars := charSet(candidate)

	intersection := 0
	for r := range queryChars {
		if _, ok := candidateChars[r]; ok {
			intersection++
		}
	}
	// |A ∪ B| = |A| + |B| - |A ∩ B|; never zero because query is non-empty
	union := len(queryChars) + len(candidateChars) - intersection

	score := float64(intersection) / float64(union)
	if strings.Contains(candidate, query) {
		score += ContainmentBonus
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Text returns the string form a candidate value is scored by. Strings pass
// through, nil becomes "" and anything else is formatted with fmt.Sprint.
// Loaders apply it to non-string cells so Score only ever sees strings.
func Text(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

func charSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
