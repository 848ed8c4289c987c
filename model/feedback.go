package model

import "time"

// FeedbackEvent records that a user was satisfied with the answer to a question.
// QueryID ties the acknowledgment to the search response it was given for, so
// repeated clicks on the same result row are idempotent.
type FeedbackEvent struct {
	ID        string    `json:"id"`
	QueryID   string    `json:"query_id"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackSummary aggregates acknowledgments per question.
type FeedbackSummary struct {
	Question       string    `json:"question"`
	SatisfiedCount int       `json:"satisfied_count"`
	LastSatisfied  time.Time `json:"last_satisfied"`
}
