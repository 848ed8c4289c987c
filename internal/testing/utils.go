// Package testing provides fixtures and helpers for testing the FAQ matcher.
package testing

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-faq-matcher/config"
	"github.com/gcbaptista/go-faq-matcher/internal/snapshot"
	"github.com/gcbaptista/go-faq-matcher/model"
)

// SampleEntries returns a small admissions FAQ table.
func SampleEntries() []model.QAEntry {
	return []model.QAEntry{
		{Question: "学费是多少", Answer: "每年5000元"},
		{Question: "宿舍条件怎么样", Answer: "四人间"},
		{Question: "如何申请奖学金", Answer: "开学后提交申请"},
	}
}

// StaticProvider serves a fixed table, or Err when set. It is safe to
// change between reloads.
type StaticProvider struct {
	mu      sync.Mutex
	entries []model.QAEntry
	err     error
}

// NewStaticProvider creates a provider serving entries.
func NewStaticProvider(entries []model.QAEntry) *StaticProvider {
	return &StaticProvider{entries: entries}
}

// Load implements services.EntryProvider.
func (p *StaticProvider) Load(ctx context.Context) ([]model.QAEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.entries, nil
}

// SetEntries replaces the table served by the next Load.
func (p *StaticProvider) SetEntries(entries []model.QAEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = entries
	p.err = nil
}

// SetError makes the next Load fail with err.
func (p *StaticProvider) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// CreateTestMatcher creates a snapshot service over provider. When start is
// true the first snapshot is loaded before returning.
func CreateTestMatcher(t *testing.T, provider *StaticProvider, start bool) *snapshot.Service {
	t.Helper()
	matcher, err := snapshot.NewService(provider, snapshot.WithMaxTopN(config.DefaultMaxTopN))
	require.NoError(t, err, "Failed to create snapshot service")
	if start {
		require.NoError(t, matcher.Start(context.Background()), "Failed to load first snapshot")
	}
	return matcher
}

// WriteCSV writes entries under the default headers to dir and returns the file path.
func WriteCSV(t *testing.T, dir string, entries []model.QAEntry) string {
	t.Helper()
	path := filepath.Join(dir, "faq.csv")
	file, err := os.Create(path)
	require.NoError(t, err, "Failed to create CSV fixture")
	defer file.Close()

	w := csv.NewWriter(file)
	require.NoError(t, w.Write([]string{config.DefaultQuestionColumn, config.DefaultAnswerColumn}))
	for _, e := range entries {
		require.NoError(t, w.Write([]string{e.Question, e.Answer}))
	}
	w.Flush()
	require.NoError(t, w.Error(), "Failed to write CSV fixture")
	return path
}

// AssertMatchOrder verifies the questions of matches, in order.
func AssertMatchOrder(t *testing.T, matches []model.ScoredMatch, questions ...string) {
	t.Helper()
	got := make([]string, len(matches))
	for i, m := range matches {
		got[i] = m.Question
	}
	assert.Equal(t, questions, got, "Match order should be as expected")
}
