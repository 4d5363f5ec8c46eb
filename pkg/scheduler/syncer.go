package scheduler

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/devpulse/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/adapter.go -pkg mocks -skip-ensure -fmt goimports . Adapter

// Store is the persistence contract for sync cycles
type Store interface {
	CreateItem(ctx context.Context, item *domain.ExternalItem) (bool, error)
	ItemExists(ctx context.Context, title string, source domain.Source) (bool, error)
	DeleteOlderThan(ctx context.Context, source domain.Source, cutoff time.Time) (int64, error)
}

// Adapter fetches normalized items from one external provider
type Adapter interface {
	Name() domain.Source
	Fetch(ctx context.Context, limit int) []domain.ExternalItem
}

// Syncer runs deduplicating fetch-and-upsert cycles. Each cycle is
// stateless: no sync cursor is persisted, overlap with already-seen items
// is expected and rejected by the (title, source) existence check. Two
// concurrent cycles for the same source are safe because the store's
// uniqueness constraint makes the duplicate insert a no-op.
type Syncer struct {
	store Store
	now   func() time.Time
}

// NewSyncer creates a syncer; nowFn may be nil to use wall clock
func NewSyncer(store Store, nowFn func() time.Time) *Syncer {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Syncer{store: store, now: nowFn}
}

// Sync runs one fetch-and-upsert cycle for the adapter's source and returns
// the count of newly inserted items. It never fails: upstream failures
// yield an empty fetch, per-item store failures are logged and skipped.
func (s *Syncer) Sync(ctx context.Context, adapter Adapter, fetchLimit int, retention time.Duration) int {
	src := adapter.Name()

	// prune first so retention holds even when the fetch returns nothing
	cutoff := s.now().Add(-retention)
	if deleted, err := s.store.DeleteOlderThan(ctx, src, cutoff); err != nil {
		lgr.Printf("[WARN] %s: retention pruning failed: %v", src, err)
	} else if deleted > 0 {
		lgr.Printf("[INFO] %s: pruned %d items older than %v", src, deleted, retention)
	}

	items := adapter.Fetch(ctx, fetchLimit)

	inserted := 0
	for i := range items {
		item := &items[i]

		exists, err := s.store.ItemExists(ctx, item.Title, src)
		if err != nil {
			lgr.Printf("[WARN] %s: existence check failed for %q: %v", src, item.Title, err)
			continue
		}
		if exists {
			continue
		}

		item.IngestedAt = s.now().UTC()
		ok, err := s.store.CreateItem(ctx, item)
		if err != nil {
			lgr.Printf("[WARN] %s: insert failed for %q: %v", src, item.Title, err)
			continue
		}
		if ok {
			inserted++
		}
		// a lost race with a concurrent cycle lands here with ok == false,
		// the uniqueness constraint already absorbed the duplicate
	}

	if inserted > 0 {
		lgr.Printf("[INFO] %s: sync added %d new items", src, inserted)
	}
	return inserted
}
