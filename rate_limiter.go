// rate_limiter.go
// ----------------
// This file defines the RateLimiter type, which tracks the remaining-request
// budget and reset deadlines reported by Helix response headers.
//
// Responsibilities:
// - Recording the Ratelimit-Remaining and Ratelimit-Reset headers after every
//   response (the most recent response always wins).
// - Blocking a caller in AwaitClearance until the next reset deadline when the
//   remaining budget is exhausted.
//
// One limiter is shared by every request issued through the same Client; it
// approximates the single server-side quota per credential set. It is
// optimistic rather than a hard token bucket: the real enforcement authority
// is the remote server.
package helixbridge

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	headerRateLimitRemaining = "Ratelimit-Remaining"
	headerRateLimitReset     = "Ratelimit-Reset"

	// clearanceBuffer is added on top of (deadline - now) so the quota has
	// actually rolled over by the time the next request goes out.
	clearanceBuffer = 100 * time.Millisecond
)

type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	resets    map[int64]struct{} // epoch seconds, deduplicated

	logger zerolog.Logger

	// Injected clock so tests run without real delays.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewRateLimiter(logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		resets: make(map[int64]struct{}),
		logger: logger,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// RecordResponse updates the limiter from rate-limit headers, when present.
// The remaining counter is overwritten; the reset deadline is accumulated
// into the pending-deadline set.
func (r *RateLimiter) RecordResponse(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v := h.Get(headerRateLimitRemaining); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			r.remaining = n
		}
	}
	if v := h.Get(headerRateLimitReset); v != "" {
		if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
			r.resets[ts] = struct{}{}
		}
	}
}

// AwaitClearance blocks the calling goroutine until the request budget allows
// another call. With remaining budget it returns immediately. With zero
// budget it prunes deadlines that have already passed and sleeps until the
// earliest future deadline plus a small buffer. When no deadline is known it
// proceeds immediately so a response with missing headers cannot stall the
// client forever.
func (r *RateLimiter) AwaitClearance(ctx context.Context) error {
	r.mu.Lock()
	if r.remaining > 0 {
		r.mu.Unlock()
		return nil
	}

	now := r.now()
	nowSecs := now.Unix()
	var earliest int64
	for ts := range r.resets {
		if ts <= nowSecs {
			delete(r.resets, ts)
			continue
		}
		if earliest == 0 || ts < earliest {
			earliest = ts
		}
	}
	r.mu.Unlock()

	if earliest == 0 {
		return nil
	}

	wait := time.Unix(earliest, 0).Sub(now) + clearanceBuffer
	r.logger.Debug().Dur("wait", wait).Msg("rate limit exhausted, waiting for reset")
	return r.sleep(ctx, wait)
}

// RateLimitSnapshot is a point-in-time view of the limiter state.
type RateLimitSnapshot struct {
	Remaining int
	Resets    []time.Time
}

// Snapshot returns a copy of the current limiter state for diagnostics.
func (r *RateLimiter) Snapshot() RateLimitSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := RateLimitSnapshot{Remaining: r.remaining}
	for ts := range r.resets {
		snap.Resets = append(snap.Resets, time.Unix(ts, 0))
	}
	sort.Slice(snap.Resets, func(i, j int) bool { return snap.Resets[i].Before(snap.Resets[j]) })
	return snap
}

// sleepContext sleeps for d but wakes early if ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
