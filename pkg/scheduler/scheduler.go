// Package scheduler runs each source adapter's fetch-and-upsert cycle on
// its own timer. Sources are independent: there is no shared lock, cycles
// for different sources run concurrently with each other and with live
// feed reads, and a manual trigger may interleave with a scheduled cycle
// for the same source.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/devpulse/pkg/domain"
)

// Job describes one source's sync schedule
type Job struct {
	Adapter    Adapter
	Interval   time.Duration
	FetchLimit int
	Retention  time.Duration
	Enabled    bool
}

// Scheduler owns the per-source sync timers
type Scheduler struct {
	syncer *Syncer
	jobs   []Job
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler over the given jobs
func NewScheduler(syncer *Syncer, jobs []Job) *Scheduler {
	return &Scheduler{syncer: syncer, jobs: jobs}
}

// Start launches one worker per enabled source. Each worker runs an
// unconditional initial sync, then repeats on its fixed interval.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	started := 0
	for _, job := range s.jobs {
		if !job.Enabled {
			lgr.Printf("[INFO] scheduler: source %s disabled, skipping", job.Adapter.Name())
			continue
		}
		s.wg.Add(1)
		go s.worker(ctx, job)
		started++
	}

	lgr.Printf("[INFO] scheduler started with %d sources", started)
}

// Stop gracefully stops all source workers
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// worker runs one source's periodic sync loop
func (s *Scheduler) worker(ctx context.Context, job Job) {
	defer s.wg.Done()

	lgr.Printf("[INFO] scheduler: source %s syncing every %v", job.Adapter.Name(), job.Interval)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// run immediately on start
	s.syncer.Sync(ctx, job.Adapter, job.FetchLimit, job.Retention)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncer.Sync(ctx, job.Adapter, job.FetchLimit, job.Retention)
		}
	}
}

// SyncNow triggers an immediate sync cycle for one source and returns the
// count of newly inserted items. Safe to call while a scheduled cycle for
// the same source is running.
func (s *Scheduler) SyncNow(ctx context.Context, src domain.Source) (int, error) {
	for _, job := range s.jobs {
		if job.Adapter.Name() == src {
			return s.syncer.Sync(ctx, job.Adapter, job.FetchLimit, job.Retention), nil
		}
	}
	return 0, fmt.Errorf("unknown source %q", src)
}
