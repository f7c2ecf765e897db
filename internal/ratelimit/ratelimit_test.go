package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLimiter_FirstCallsImmediate(t *testing.T) {
	l := New(2, time.Second)

	start := time.Now()
	for range 2 {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("first 2 calls should not block, took %v", elapsed)
	}
}

func TestLimiter_WindowNeverExceeded(t *testing.T) {
	const (
		limit    = 2
		calls    = 10
		interval = 200 * time.Millisecond
	)

	l := New(limit, interval)

	var (
		mu         sync.Mutex
		dispatches []time.Time
	)

	var wg sync.WaitGroup
	for range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Wait(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			mu.Lock()
			dispatches = append(dispatches, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(dispatches) != calls {
		t.Fatalf("expected %d dispatches, got %d", calls, len(dispatches))
	}

	first, last := dispatches[0], dispatches[0]
	for _, d := range dispatches {
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	// 10 calls at 2 per window need at least 4 full windows of spacing.
	// Allow a small scheduling tolerance below the theoretical minimum.
	if span := last.Sub(first); span < 4*interval-20*time.Millisecond {
		t.Errorf("%d calls at limit %d finished in %v, expected at least ~%v", calls, limit, span, 4*interval)
	}

	// No sliding window of `interval` may contain more than `limit` starts.
	for i, d := range dispatches {
		count := 0
		for _, other := range dispatches {
			if !other.Before(d) && other.Sub(d) < interval-10*time.Millisecond {
				count++
			}
		}
		if count > limit {
			t.Errorf("window starting at dispatch %d observed %d starts, limit is %d", i, count, limit)
		}
	}
}

func TestLimiter_ContextCancellation(t *testing.T) {
	l := New(1, time.Hour)

	// Exhaust the window.
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected context error for queued call")
	}
}

func TestLimiter_NonPositiveLimit(t *testing.T) {
	l := New(0, time.Second)
	if l.limit != 1 {
		t.Errorf("expected limit clamped to 1, got %d", l.limit)
	}
}

func TestKeyedLimiter_Allow(t *testing.T) {
	kl := NewKeyed(1, 2)

	// Burst of 2 passes, third is rejected.
	if !kl.Allow("10.0.0.1") {
		t.Error("first call should be allowed")
	}
	if !kl.Allow("10.0.0.1") {
		t.Error("second call should be allowed")
	}
	if kl.Allow("10.0.0.1") {
		t.Error("third call should be rejected")
	}

	// Independent key is unaffected.
	if !kl.Allow("10.0.0.2") {
		t.Error("different key should have its own bucket")
	}
}
