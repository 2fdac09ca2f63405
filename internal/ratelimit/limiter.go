// Package ratelimit provides a sliding-window call budget for the metered
// travel-data upstream. The limiter is advisory: it tells cooperating callers
// whether a call fits the budget, but does not itself block anything.
package ratelimit

import (
	"sync"
	"time"

	"github.com/wanderly/travel-search-api/internal/infrastructure/timeutil"
)

// Default budgets for the travel-data upstream.
const (
	// DefaultPerSecond is the maximum calls admitted in any trailing second.
	DefaultPerSecond = 10

	// DefaultPerMinute is the maximum calls admitted in any trailing minute.
	DefaultPerMinute = 100
)

// windowSize is the span of the sliding window.
const windowSize = time.Minute

// Limiter tracks upstream call timestamps in a sliding window and admits or
// rejects a prospective call against per-second and per-minute budgets.
// It is safe for concurrent use. Construct one per process and share it
// across all orchestrators so the budget is enforced process-wide.
type Limiter struct {
	mu        sync.Mutex
	calls     []time.Time
	perSecond int
	perMinute int
	clock     timeutil.Clock
}

// New creates a Limiter with the given budgets. Non-positive budgets fall
// back to the defaults.
func New(perSecond, perMinute int, clock timeutil.Clock) *Limiter {
	if perSecond <= 0 {
		perSecond = DefaultPerSecond
	}
	if perMinute <= 0 {
		perMinute = DefaultPerMinute
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Limiter{
		perSecond: perSecond,
		perMinute: perMinute,
		clock:     clock,
	}
}

// CanCall reports whether a call fits the current budget. It prunes
// timestamps older than the window, then checks the per-minute count and the
// count within the trailing second. Callers MUST check CanCall before the
// protected operation and MUST call RecordCall immediately before making the
// attempt: the budget guards request volume, not request success.
func (l *Limiter) CanCall() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.prune(now)

	if len(l.calls) >= l.perMinute {
		return false
	}

	oneSecondAgo := now.Add(-time.Second)
	recent := 0
	for i := len(l.calls) - 1; i >= 0; i-- {
		if l.calls[i].Before(oneSecondAgo) {
			break
		}
		recent++
	}
	return recent < l.perSecond
}

// RecordCall unconditionally appends the current time to the window.
func (l *Limiter) RecordCall() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.prune(now)
	l.calls = append(l.calls, now)
}

// InFlight returns the number of recorded calls still inside the window.
func (l *Limiter) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(l.clock.Now())
	return len(l.calls)
}

// prune drops timestamps older than the window. Caller must hold the mutex.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-windowSize)
	idx := 0
	for idx < len(l.calls) && l.calls[idx].Before(cutoff) {
		idx++
	}
	if idx > 0 {
		l.calls = append(l.calls[:0], l.calls[idx:]...)
	}
}
