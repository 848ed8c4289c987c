package feedback

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-faq-matcher/internal/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data", "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestRecordSatisfied(t *testing.T) {
	store := openTestStore(t)

	event, created, err := store.RecordSatisfied("query-1", "学费是多少")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "query-1", event.QueryID)
	assert.Equal(t, "学费是多少", event.Question)
	assert.False(t, event.CreatedAt.IsZero())

	summary, err := store.Summary("学费是多少")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SatisfiedCount)
}

func TestRecordSatisfied_Idempotent(t *testing.T) {
	store := openTestStore(t)

	first, created, err := store.RecordSatisfied("query-1", "学费是多少")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := store.RecordSatisfied("query-1", "学费是多少")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	summary, err := store.Summary("学费是多少")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SatisfiedCount, "repeated clicks on one result row count once")

	_, created, err = store.RecordSatisfied("query-2", "学费是多少")
	require.NoError(t, err)
	assert.True(t, created)

	summary, err = store.Summary("学费是多少")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.SatisfiedCount)
}

func TestRecordSatisfied_Validation(t *testing.T) {
	store := openTestStore(t)

	_, _, err := store.RecordSatisfied("", "学费是多少")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, _, err = store.RecordSatisfied("query-1", "")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestSummary_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Summary("无人问津")
	assert.ErrorIs(t, err, errors.ErrFeedbackNotFound)
}

func TestListSummaries(t *testing.T) {
	store := openTestStore(t)

	summaries, err := store.ListSummaries()
	require.NoError(t, err)
	assert.Empty(t, summaries)

	for _, q := range []string{"q1", "q2", "q3"} {
		_, _, err := store.RecordSatisfied(q, "住宿条件")
		require.NoError(t, err)
	}
	_, _, err = store.RecordSatisfied("q1", "学费是多少")
	require.NoError(t, err)
	_, _, err = store.RecordSatisfied("q1", "奖学金")
	require.NoError(t, err)

	summaries, err = store.ListSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "住宿条件", summaries[0].Question)
	assert.Equal(t, 3, summaries[0].SatisfiedCount)
	// Ties are ordered by question text
	assert.Equal(t, "奖学金", summaries[1].Question)
	assert.Equal(t, "学费是多少", summaries[2].Question)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, _, err = store.RecordSatisfied("query-1", "学费是多少")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	summary, err := reopened.Summary("学费是多少")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SatisfiedCount)
}
