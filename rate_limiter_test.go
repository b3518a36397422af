package helixbridge

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock pins the limiter's view of time and records sleeps instead of
// performing them.
type fakeClock struct {
	now    time.Time
	slept  []time.Duration
	sleepE error
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	f.slept = append(f.slept, d)
	return f.sleepE
}

func newFakeLimiter(clock *fakeClock) *RateLimiter {
	r := NewRateLimiter(zerolog.Nop())
	r.now = clock.Now
	r.sleep = clock.Sleep
	return r
}

func headers(kv map[string]string) http.Header {
	h := http.Header{}
	for k, v := range kv {
		h.Set(k, v)
	}
	return h
}

func Test_RateLimiter_NoBlockWithRemainingBudget(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	r.RecordResponse(headers(map[string]string{"Ratelimit-Remaining": "10"}))

	require.NoError(t, r.AwaitClearance(context.Background()))
	assert.Empty(t, clock.slept)
}

func Test_RateLimiter_BlocksUntilReset(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	r.RecordResponse(headers(map[string]string{
		"Ratelimit-Remaining": "0",
		"Ratelimit-Reset":     "1005",
	}))

	require.NoError(t, r.AwaitClearance(context.Background()))
	require.Len(t, clock.slept, 1)
	assert.GreaterOrEqual(t, clock.slept[0], 5*time.Second)
	assert.Less(t, clock.slept[0], 6*time.Second)
}

func Test_RateLimiter_SleepsOnEarliestDeadline(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	r.RecordResponse(headers(map[string]string{"Ratelimit-Remaining": "0", "Ratelimit-Reset": "1030"}))
	r.RecordResponse(headers(map[string]string{"Ratelimit-Reset": "1010"}))

	require.NoError(t, r.AwaitClearance(context.Background()))
	require.Len(t, clock.slept, 1)
	assert.Less(t, clock.slept[0], 11*time.Second)
}

func Test_RateLimiter_PrunesPastDeadlines(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	r.RecordResponse(headers(map[string]string{
		"Ratelimit-Remaining": "0",
		"Ratelimit-Reset":     "900",
	}))

	require.NoError(t, r.AwaitClearance(context.Background()))
	assert.Empty(t, clock.slept)
	assert.Empty(t, r.Snapshot().Resets)
}

func Test_RateLimiter_ProceedsWithoutKnownDeadline(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	// Initial state: zero budget, no headers ever seen.
	require.NoError(t, r.AwaitClearance(context.Background()))
	assert.Empty(t, clock.slept)
}

func Test_RateLimiter_MostRecentRemainingWins(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	r.RecordResponse(headers(map[string]string{"Ratelimit-Remaining": "1"}))
	r.RecordResponse(headers(map[string]string{"Ratelimit-Remaining": "7"}))

	assert.Equal(t, 7, r.Snapshot().Remaining)
}

func Test_RateLimiter_DeduplicatesDeadlines(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	r.RecordResponse(headers(map[string]string{"Ratelimit-Reset": "1200"}))
	r.RecordResponse(headers(map[string]string{"Ratelimit-Reset": "1200"}))

	assert.Len(t, r.Snapshot().Resets, 1)
}

func Test_RateLimiter_IgnoresMalformedHeaders(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := newFakeLimiter(clock)

	r.RecordResponse(headers(map[string]string{
		"Ratelimit-Remaining": "not-a-number",
		"Ratelimit-Reset":     "soon",
	}))

	assert.Equal(t, 0, r.Snapshot().Remaining)
	assert.Empty(t, r.Snapshot().Resets)
}
