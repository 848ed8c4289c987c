// Package ranking turns a query and a candidate set into a bounded, ordered
// list of matches plus exact-match detection.
package ranking

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/internal/similarity"
	"github.com/gcbaptista/go-faq-matcher/model"
)

// ScoreFunc computes the similarity between an already case-folded query and candidate.
type ScoreFunc func(query, candidate string) float64

// Ranker ranks candidates against a query. It holds no mutable state and is
// safe for concurrent use.
type Ranker struct {
	score ScoreFunc
}

// Option configures a Ranker
type Option func(*Ranker)

// WithScoreFunc replaces the default character-set similarity.
func WithScoreFunc(fn ScoreFunc) Option {
	return func(r *Ranker) {
		if fn != nil {
			r.score = fn
		}
	}
}

// NewRanker creates a Ranker using similarity.Score unless overridden.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{score: similarity.Score}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRanker = NewRanker()

// Rank ranks candidates with the default Ranker.
func Rank(query string, candidates []model.QAEntry, topN int) (model.QueryResult, error) {
	return defaultRanker.Rank(query, candidates, topN)
}

// Rank scores every candidate against query, drops non-matches, sorts by score
// descending (stable on ties) and keeps the first topN entries.
//
// ExactMatch is searched for only inside the truncated list: an entry whose
// trimmed question equals the raw query is not reported when it falls outside
// the top-N window.
func (r *Ranker) Rank(query string, candidates []model.QAEntry, topN int) (model.QueryResult, error) {
	if topN < 1 {
		return model.QueryResult{}, errors.NewInvalidArgumentError("topN", topN, "must be >= 1")
	}

	result := model.QueryResult{Matches: []model.ScoredMatch{}}
	if query == "" || len(candidates) == 0 {
		return result, nil
	}

	// Casers carry state, so each call gets its own
	lower := cases.Lower(language.Und)
	normalizedQuery := lower.String(query)

	scored := make([]model.ScoredMatch, 0, len(candidates))
	for _, candidate := range candidates {
		score := r.score(normalizedQuery, lower.String(candidate.Question))
		if score <= 0 {
			continue
		}
		scored = append(scored, model.ScoredMatch{
			Question: candidate.Question,
			Answer:   candidate.Answer,
			Score:    score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	result.Matches = scored
	result.ExactMatch = findExactMatch(query, scored)
	return result, nil
}

// findExactMatch returns the first match whose trimmed question equals the raw query.
func findExactMatch(query string, matches []model.ScoredMatch) *model.ScoredMatch {
	for _, m := range matches {
		if strings.TrimSpace(m.Question) == query {
			exact := m
			return &exact
		}
	}
	return nil
}

// ClampTopN bounds a requested result count to [1, max]. A max below 1 leaves
// the upper end unbounded.
func ClampTopN(n, max int) int {
	if n < 1 {
		return 1
	}
	if max >= 1 && n > max {
		return max
	}
	return n
}
