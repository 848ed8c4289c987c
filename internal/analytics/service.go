// Package analytics keeps in-memory counters over ranking calls. Query text
// is never retained.
package analytics

import (
	"sync"
	"time"

	"github.com/gcbaptista/go-faq-matcher/model"
)

// maxEventsToKeep bounds the window used for averages.
const maxEventsToKeep = 10000

// Service implements services.QueryTracker
type Service struct {
	mutex             sync.RWMutex
	events            []model.QueryEvent
	totalQueries      int
	zeroResultQueries int
	exactMatchQueries int
	since             time.Time
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.QueryEvent, 0),
		since:  time.Now(),
	}
}

// TrackQuery records a ranking call
func (s *Service) TrackQuery(event model.QueryEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.totalQueries++
	if event.MatchCount == 0 {
		s.zeroResultQueries++
	}
	if event.ExactMatch {
		s.exactMatchQueries++
	}

	s.events = append(s.events, event)
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// Stats returns aggregated counters. Averages cover the most recent events only.
func (s *Service) Stats() model.QueryStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stats := model.QueryStats{
		TotalQueries:      s.totalQueries,
		ZeroResultQueries: s.zeroResultQueries,
		ExactMatchQueries: s.exactMatchQueries,
		Since:             s.since,
	}
	if s.totalQueries > 0 {
		stats.ZeroResultPercent = percent(s.zeroResultQueries, s.totalQueries)
		stats.ExactMatchPercent = percent(s.exactMatchQueries, s.totalQueries)
	}
	if len(s.events) == 0 {
		return stats
	}

	var totalTime time.Duration
	totalMatches := 0
	for _, e := range s.events {
		totalTime += e.ResponseTime
		totalMatches += e.MatchCount
	}
	stats.AvgResponseTimeUs = (totalTime / time.Duration(len(s.events))).Microseconds()
	stats.AvgMatchesReturned = float64(totalMatches) / float64(len(s.events))
	return stats
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100.0
}
