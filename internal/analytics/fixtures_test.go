package analytics

import (
	"time"

	"github.com/gcbaptista/go-faq-matcher/model"
)

// QueryEventFixture builds a query event for tests
func QueryEventFixture(matches int, exact bool, took time.Duration) model.QueryEvent {
	return model.QueryEvent{
		MatchCount:   matches,
		ExactMatch:   exact,
		TopN:         5,
		ResponseTime: took,
	}
}
