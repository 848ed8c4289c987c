package services

import (
	"context"
	"time"

	"github.com/gcbaptista/go-faq-matcher/model"
)

// SnapshotInfo describes the loaded FAQ table without exposing its entries.
type SnapshotInfo struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	EntryCount int       `json:"entry_count"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// SearchResponse wraps a ranking result for transport to the presentation layer.
type SearchResponse struct {
	model.QueryResult
	Query      string `json:"query"`
	TopN       int    `json:"top_n"`
	Took       int64  `json:"took"`        // microseconds
	QueryID    string `json:"query_id"`    // unique UUID for this search query
	SnapshotID string `json:"snapshot_id"` // snapshot the query was ranked against
}

// EntryProvider supplies the ordered, null-filtered FAQ table.
type EntryProvider interface {
	Load(ctx context.Context) ([]model.QAEntry, error)
}

// Matcher ranks queries against the currently loaded FAQ table.
type Matcher interface {
	// Query ranks query against one snapshot and reports which one.
	Query(query string, topN int) (model.QueryResult, SnapshotInfo, error)
	Entries() ([]model.QAEntry, error)
	Reload(ctx context.Context) (SnapshotInfo, error)
	SnapshotInfo() (SnapshotInfo, bool)
}

// FeedbackRecorder stores "this answer helped" acknowledgments.
type FeedbackRecorder interface {
	RecordSatisfied(queryID, question string) (model.FeedbackEvent, bool, error)
	Summary(question string) (model.FeedbackSummary, error)
	ListSummaries() ([]model.FeedbackSummary, error)
}

// QueryTracker aggregates per-query counters.
type QueryTracker interface {
	TrackQuery(event model.QueryEvent)
	Stats() model.QueryStats
}
