package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTopN(t *testing.T) {
	tests := []struct {
		name      string
		requested *int
		expected  int
	}{
		{"default when omitted", nil, 5},
		{"within range", intPtr(3), 3},
		{"clamped to maximum", intPtr(99), 10},
		{"clamped to one", intPtr(-4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveTopN(tt.requested, 5, 10))
		})
	}
}

func TestValidatePagination(t *testing.T) {
	page, size, result := ValidatePagination(0, 0)
	assert.False(t, result.HasErrors())
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	_, size, result = ValidatePagination(2, 500)
	assert.False(t, result.HasErrors())
	assert.Equal(t, 100, size)

	_, _, result = ValidatePagination(-1, -1)
	assert.True(t, result.HasErrors())
	assert.Len(t, result.Errors, 2)
}

func TestValidateFeedbackRequest(t *testing.T) {
	assert.False(t, ValidateFeedbackRequest(&FeedbackRequest{QueryID: "q", Question: "学费是多少"}).HasErrors())

	result := ValidateFeedbackRequest(&FeedbackRequest{QueryID: "  "})
	assert.True(t, result.HasErrors())
	assert.Len(t, result.Errors, 2)
}

func TestPageBounds(t *testing.T) {
	const maxInt = int(^uint(0) >> 1)

	tests := []struct {
		name              string
		page, size, total int
		expStart, expEnd  int
	}{
		{"first page", 1, 2, 3, 0, 2},
		{"partial last page", 2, 2, 3, 2, 3},
		{"past the end", 3, 2, 3, 3, 3},
		{"empty table", 1, 20, 0, 0, 0},
		{"page number near overflow", maxInt, 100, 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pageBounds(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.expStart, start)
			assert.Equal(t, tt.expEnd, end)
		})
	}
}
