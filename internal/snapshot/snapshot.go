// Package snapshot owns the loaded FAQ table. A snapshot is immutable once
// built; refreshing the table swaps in a whole new snapshot.
package snapshot

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-faq-matcher/model"
	"github.com/gcbaptista/go-faq-matcher/services"
)

// Snapshot is an immutable, ordered set of FAQ entries.
type Snapshot struct {
	ID       string
	Entries  []model.QAEntry
	Source   string
	LoadedAt time.Time
}

// New builds a snapshot from a private copy of entries.
func New(entries []model.QAEntry, source string) *Snapshot {
	copied := make([]model.QAEntry, len(entries))
	copy(copied, entries)
	return &Snapshot{
		ID:       uuid.New().String(),
		Entries:  copied,
		Source:   source,
		LoadedAt: time.Now(),
	}
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

func (s *Snapshot) info() services.SnapshotInfo {
	return services.SnapshotInfo{
		ID:         s.ID,
		Source:     s.Source,
		EntryCount: s.Len(),
		LoadedAt:   s.LoadedAt,
	}
}

// Holder publishes the current snapshot to concurrent readers.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// Current returns the active snapshot, or nil before the first load.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Swap installs next and returns the snapshot it replaced.
func (h *Holder) Swap(next *Snapshot) *Snapshot {
	return h.current.Swap(next)
}
