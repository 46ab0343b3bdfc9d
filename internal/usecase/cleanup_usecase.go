package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/domain/repository"
)

// Sweeper reclaims expired items, stale sessions and very old items. It
// only ever deletes; readers never depend on it because every read path
// filters by expiry itself. Running it redundantly or concurrently is
// safe: deleting an already-deleted row is a no-op.
//
// The throttle state is owned by the Sweeper instance, not a package
// variable, so tests construct their own and the last-run mark is
// inspectable. Like the rate limiter's table it is process-local.
type Sweeper struct {
	items    repository.ItemRepository
	sessions repository.SessionRepository
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	lastRun time.Time
}

// NewSweeper creates a sweeper throttled to at most one real sweep per
// interval.
func NewSweeper(items repository.ItemRepository, sessions repository.SessionRepository, interval time.Duration) *Sweeper {
	return &Sweeper{
		items:    items,
		sessions: sessions,
		interval: interval,
		now:      time.Now,
	}
}

// Force deletes all reclaimable records immediately: items past their
// expiry, sessions outside the active window, and items older than the
// absolute ceiling regardless of expiry. Each category is one independent
// bulk deletion; a failure reports an error and leaves existing data
// untouched.
func (s *Sweeper) Force(ctx context.Context) (*entities.CleanupStats, error) {
	now := s.now()
	stats := &entities.CleanupStats{}

	expired, err := s.items.DeleteExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	stats.ExpiredItems = expired

	stale, err := s.sessions.DeleteSeenBefore(ctx, now.Add(-SessionActiveWindow))
	if err != nil {
		return nil, err
	}
	stats.StaleSessions = stale

	veryOld, err := s.items.DeleteCreatedBefore(ctx, now.Add(-VeryOldCeiling))
	if err != nil {
		return nil, err
	}
	stats.VeryOldItems = veryOld

	return stats, nil
}

// Opportunistic performs the same deletions as Force, at most once per
// interval. Calls inside the interval return (nil, nil): skipped, not an
// error. A failed sweep rolls the last-run mark back so the next call
// retries instead of treating the sweep as done.
func (s *Sweeper) Opportunistic(ctx context.Context) (*entities.CleanupStats, error) {
	s.mu.Lock()
	now := s.now()
	if now.Sub(s.lastRun) < s.interval {
		s.mu.Unlock()
		return nil, nil
	}
	prev := s.lastRun
	s.lastRun = now
	s.mu.Unlock()

	stats, err := s.Force(ctx)
	if err != nil {
		s.mu.Lock()
		if s.lastRun.Equal(now) {
			s.lastRun = prev
		}
		s.mu.Unlock()
		return nil, err
	}
	return stats, nil
}
