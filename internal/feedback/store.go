// Package feedback records per-answer satisfaction acknowledgments in a bbolt
// database. The ranking core never reads this data.
package feedback

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/model"
)

var (
	bucketEvents    = []byte("feedback_events")
	bucketSummaries = []byte("feedback_summaries")
)

// Store is a bbolt-backed FeedbackRecorder.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the feedback database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open feedback db %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketEvents, bucketSummaries} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

func eventKey(queryID, question string) []byte {
	return []byte(queryID + "\x00" + question)
}

// RecordSatisfied acknowledges that the answer to question helped for the
// search identified by queryID. Repeating the same (queryID, question) pair
// returns the original event and created=false.
func (s *Store) RecordSatisfied(queryID, question string) (model.FeedbackEvent, bool, error) {
	if strings.TrimSpace(queryID) == "" {
		return model.FeedbackEvent{}, false, errors.NewValidationError("query_id", "query ID is required")
	}
	if question == "" {
		return model.FeedbackEvent{}, false, errors.NewValidationError("question", "question is required")
	}

	var (
		event   model.FeedbackEvent
		created bool
	)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		events := tx.Bucket(bucketEvents)
		key := eventKey(queryID, question)

		if existing := events.Get(key); existing != nil {
			return json.Unmarshal(existing, &event)
		}

		event = model.FeedbackEvent{
			ID:        uuid.New().String(),
			QueryID:   queryID,
			Question:  question,
			CreatedAt: time.Now().UTC(),
		}
		data, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if err := events.Put(key, data); err != nil {
			return err
		}

		summaries := tx.Bucket(bucketSummaries)
		summary := model.FeedbackSummary{Question: question}
		if raw := summaries.Get([]byte(question)); raw != nil {
			if err := json.Unmarshal(raw, &summary); err != nil {
				return fmt.Errorf("corrupt summary for %q: %w", question, err)
			}
		}
		summary.SatisfiedCount++
		summary.LastSatisfied = event.CreatedAt
		data, err = json.Marshal(summary)
		if err != nil {
			return err
		}
		created = true
		return summaries.Put([]byte(question), data)
	})
	if err != nil {
		return model.FeedbackEvent{}, false, fmt.Errorf("failed to record feedback: %w", err)
	}
	return event, created, nil
}

// Summary returns the aggregated acknowledgments for question.
func (s *Store) Summary(question string) (model.FeedbackSummary, error) {
	var summary model.FeedbackSummary
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketSummaries).Get([]byte(question))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, &summary)
	})
	if err != nil {
		return model.FeedbackSummary{}, fmt.Errorf("failed to read feedback summary: %w", err)
	}
	if !found {
		return model.FeedbackSummary{}, errors.NewFeedbackNotFoundError(question)
	}
	return summary, nil
}

// ListSummaries returns every summary, most acknowledged first.
func (s *Store) ListSummaries() ([]model.FeedbackSummary, error) {
	summaries := make([]model.FeedbackSummary, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSummaries).ForEach(func(_, v []byte) error {
			var summary model.FeedbackSummary
			if err := json.Unmarshal(v, &summary); err != nil {
				return err
			}
			summaries = append(summaries, summary)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback summaries: %w", err)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].SatisfiedCount != summaries[j].SatisfiedCount {
			return summaries[i].SatisfiedCount > summaries[j].SatisfiedCount
		}
		return summaries[i].Question < summaries[j].Question
	})
	return summaries, nil
}
