package model

import "time"

// QueryEvent describes a single ranking call for analytics tracking.
// It carries no query text.
type QueryEvent struct {
	MatchCount   int           `json:"match_count"`
	ExactMatch   bool          `json:"exact_match"`
	TopN         int           `json:"top_n"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// QueryStats represents aggregated counters over all tracked queries
type QueryStats struct {
	TotalQueries       int       `json:"total_queries"`
	ZeroResultQueries  int       `json:"zero_result_queries"`
	ExactMatchQueries  int       `json:"exact_match_queries"`
	AvgResponseTimeUs  int64     `json:"avg_response_time_us"`
	ZeroResultPercent  float64   `json:"zero_result_percent"`
	ExactMatchPercent  float64   `json:"exact_match_percent"`
	AvgMatchesReturned float64   `json:"avg_matches_returned"`
	Since              time.Time `json:"since"`
}
