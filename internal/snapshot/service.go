package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	internalErrors "github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/internal/persistence"
	"github.com/gcbaptista/go-faq-matcher/internal/ranking"
	"github.com/gcbaptista/go-faq-matcher/model"
	"github.com/gcbaptista/go-faq-matcher/services"
)

// Service loads snapshots from a provider and answers queries against the
// current one. It implements services.Matcher.
type Service struct {
	holder    Holder
	reloadMu  sync.Mutex
	provider  services.EntryProvider
	ranker    *ranking.Ranker
	source    string
	cachePath string
	maxTopN   int
}

// Option configures a Service
type Option func(*Service)

// WithCachePath enables saving the last good snapshot to path.
func WithCachePath(path string) Option {
	return func(s *Service) { s.cachePath = path }
}

// WithMaxTopN bounds the number of matches a query may request.
func WithMaxTopN(n int) Option {
	return func(s *Service) { s.maxTopN = n }
}

// WithSourceName sets the label recorded on loaded snapshots.
func WithSourceName(name string) Option {
	return func(s *Service) { s.source = name }
}

// NewService creates a snapshot service. No data is loaded until Start or Reload.
func NewService(provider services.EntryProvider, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, internalErrors.NewValidationError("provider", "entry provider is required")
	}
	s := &Service{
		provider: provider,
		ranker:   ranking.NewRanker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start performs the initial load. When the source cannot be loaded but a
// cached snapshot exists, the cache is served instead.
func (s *Service) Start(ctx context.Context) error {
	_, err := s.Reload(ctx)
	if err == nil {
		return nil
	}
	if s.cachePath == "" {
		return err
	}

	cached := &Snapshot{}
	if cacheErr := persistence.LoadGob(s.cachePath, cached); cacheErr != nil {
		if !errors.Is(cacheErr, os.ErrNotExist) {
			log.Printf("Warning: Failed to read snapshot cache %s: %v", s.cachePath, cacheErr)
		}
		return err
	}
	s.holder.Swap(cached)
	log.Printf("Warning: Serving cached snapshot %s (%d entries, loaded %s) because the source failed: %v",
		cached.ID, cached.Len(), cached.LoadedAt.Format("2006-01-02 15:04:05"), err)
	return nil
}

// Reload loads a fresh snapshot and swaps it in. On failure the previous
// snapshot stays active and the error is returned.
func (s *Service) Reload(ctx context.Context) (services.SnapshotInfo, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	entries, err := s.provider.Load(ctx)
	if err != nil {
		log.Printf("Warning: Failed to load FAQ entries: %v", err)
		return services.SnapshotInfo{}, fmt.Errorf("failed to reload snapshot: %w", err)
	}

	next := New(entries, s.source)
	previous := s.holder.Swap(next)
	if previous != nil {
		log.Printf("Info: Snapshot %s replaced by %s (%d -> %d entries)", previous.ID, next.ID, previous.Len(), next.Len())
	} else {
		log.Printf("Info: Snapshot %s loaded with %d entries", next.ID, next.Len())
	}

	if s.cachePath != "" {
		if err := persistence.SaveGob(s.cachePath, next); err != nil {
			log.Printf("Warning: Failed to save snapshot cache %s: %v", s.cachePath, err)
		}
	}
	return next.info(), nil
}

// Current returns the active snapshot, or nil when nothing has been loaded.
func (s *Service) Current() *Snapshot {
	return s.holder.Current()
}

// Entries returns the active snapshot's entries.
func (s *Service) Entries() ([]model.QAEntry, error) {
	snap := s.holder.Current()
	if snap == nil {
		return nil, internalErrors.ErrNoData
	}
	return snap.Entries, nil
}

// Query ranks the active snapshot against query and describes that snapshot,
// so callers never pair a result with a table swapped in afterwards. topN is
// clamped to [1, max top-N]; ErrNoData is returned when no snapshot is loaded.
func (s *Service) Query(query string, topN int) (model.QueryResult, services.SnapshotInfo, error) {
	snap := s.holder.Current()
	if snap == nil {
		return model.QueryResult{}, services.SnapshotInfo{}, internalErrors.ErrNoData
	}
	result, err := s.ranker.Rank(query, snap.Entries, ranking.ClampTopN(topN, s.maxTopN))
	if err != nil {
		return model.QueryResult{}, services.SnapshotInfo{}, err
	}
	return result, snap.info(), nil
}

// SnapshotInfo describes the active snapshot without exposing its entries.
func (s *Service) SnapshotInfo() (services.SnapshotInfo, bool) {
	snap := s.holder.Current()
	if snap == nil {
		return services.SnapshotInfo{}, false
	}
	return snap.info(), true
}
