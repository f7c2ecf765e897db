// Package ratelimit provides the two rate limiters used by the server:
// a strict sliding-window limiter for outbound Asset Bank calls and a
// keyed token-bucket limiter for inbound request protection.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a strict sliding window: no more than limit calls
// start within any window of the configured interval. Callers block in
// Wait until their slot opens; slots are handed out in arrival order and
// the queue is unbounded. Waiting introduces latency, never failure,
// unless the caller's context is canceled first.
//
// Asset Bank publishes 2 requests/second for shared hosting and 15 for
// dedicated, so limit is small and the window bookkeeping stays tiny.
type Limiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration

	// starts holds the scheduled start times of the most recent
	// dispatches, oldest first, at most limit entries.
	starts []time.Time

	// now is swappable for tests.
	now func() time.Time
}

// New creates a limiter allowing limit calls per interval.
// A non-positive limit is treated as 1.
func New(limit int, interval time.Duration) *Limiter {
	if limit < 1 {
		limit = 1
	}
	return &Limiter{
		limit:    limit,
		interval: interval,
		starts:   make([]time.Time, 0, limit),
		now:      time.Now,
	}
}

// Wait blocks until the caller may start its call or ctx is canceled.
// The slot is reserved under the lock, so concurrent waiters are
// released in the order they arrived.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	at := l.reserve()

	delay := time.Until(at)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// reserve assigns the earliest start time that keeps the window honest
// and records it.
func (l *Limiter) reserve() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	at := now
	if len(l.starts) >= l.limit {
		// The window is full: the next call may start one interval
		// after the oldest of the last `limit` dispatches.
		if earliest := l.starts[len(l.starts)-l.limit].Add(l.interval); earliest.After(at) {
			at = earliest
		}
	}

	l.starts = append(l.starts, at)
	if len(l.starts) > l.limit {
		l.starts = l.starts[len(l.starts)-l.limit:]
	}

	return at
}
