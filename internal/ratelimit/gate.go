// Package ratelimit paces outbound LLM API calls so free-tier quotas
// are never exceeded. The gate never blocks; callers ask whether a
// request should be throttled and decide what to do with a refusal.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// MinInterval is the minimum spacing between consecutive API requests.
	MinInterval = 4 * time.Second
	// MaxPerWindow is the request ceiling within Window.
	MaxPerWindow = 15
	// Window is the span over which MaxPerWindow is enforced.
	Window = time.Minute
)

// Gate tracks recent request timestamps and answers throttle queries.
// The zero value is not usable; construct with New or NewWithClock.
type Gate struct {
	mu         sync.Mutex
	now        func() time.Time
	timestamps []time.Time
}

// New returns a Gate driven by the wall clock.
func New() *Gate {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Gate driven by the given clock. Tests inject
// a fake clock so pacing decisions can be asserted without sleeping.
func NewWithClock(now func() time.Time) *Gate {
	return &Gate{now: now}
}

// ShouldThrottle reports whether a request made now would violate
// either the minimum spacing or the per-window ceiling. It does not
// record anything; callers that proceed must call RecordRequest.
func (g *Gate) ShouldThrottle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.prune(now)

	if len(g.timestamps) == 0 {
		return false
	}
	last := g.timestamps[len(g.timestamps)-1]
	if now.Sub(last) < MinInterval {
		return true
	}
	return len(g.timestamps) >= MaxPerWindow
}

// RecordRequest notes that a request was issued now.
func (g *Gate) RecordRequest() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.prune(now)
	g.timestamps = append(g.timestamps, now)
}

// InWindow returns how many requests were recorded within the current
// window. Useful for progress reporting.
func (g *Gate) InWindow() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.prune(g.now())
	return len(g.timestamps)
}

// prune drops timestamps that have aged out of the window.
// Caller must hold mu.
func (g *Gate) prune(now time.Time) {
	cutoff := now.Add(-Window)
	i := 0
	for i < len(g.timestamps) && !g.timestamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		g.timestamps = append(g.timestamps[:0], g.timestamps[i:]...)
	}
}
