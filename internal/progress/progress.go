// Package progress implements the cooperative progress-reporting and
// cancellation harness shared by every solver in internal/solver: a
// fixed-interval metrics sample, a synchronous callback, a one-tick
// yield after each sample, and a read-only cancellation token.
package progress

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Interval is the number of node expansions between progress samples.
const Interval = 150

// Metrics is the telemetry snapshot delivered to a Callback: the
// number of nodes expanded so far, the residual frontier size, the
// current search depth, and elapsed wall-clock time in milliseconds.
type Metrics struct {
	Explored int
	Frontier int
	Depth    int
	TimeMs   int64
}

// Callback receives a Metrics snapshot at every sampled expansion
// count and once more when a search ends solved or unsolved. A search
// that ends aborted makes no final call. It is invoked synchronously
// from the solver goroutine; it must not block.
type Callback func(Metrics)

// Token is an external, thread-safe cancellation flag. The zero value
// is "not cancelled". Callers assert cancellation with Cancel from any
// goroutine; solvers only ever read it with Cancelled.
type Token struct {
	flag atomic.Bool
}

// Cancel asserts the token. Safe to call from any goroutine, any
// number of times.
func (t *Token) Cancel() {
	if t != nil {
		t.flag.Store(true)
	}
}

// Cancelled reports whether the token has been asserted. A nil Token
// is always "not cancelled", so callers that pass no token at all
// never observe cancellation.
func (t *Token) Cancelled() bool {
	return t != nil && t.flag.Load()
}

// Harness tracks expansion count and elapsed time for one solver
// invocation and drives Callback sampling per §4.4: every Interval
// expansions, and once more (unconditionally) on Final.
type Harness struct {
	start    time.Time
	explored int
	cb       Callback
}

// New starts a Harness. cb may be nil, in which case Sample and Final
// are no-ops beyond bookkeeping.
func New(cb Callback) *Harness {
	return &Harness{start: time.Now(), cb: cb}
}

// Expand increments the expansion counter and, every Interval calls,
// invokes the callback with the given frontier/depth and yields the
// goroutine once. Call this exactly once per node expansion, before
// goal-testing it.
func (h *Harness) Expand(frontier, depth int) {
	h.explored++
	if h.cb != nil && h.explored%Interval == 0 {
		h.cb(h.Snapshot(frontier, depth))
		runtime.Gosched()
	}
}

// Final invokes the callback one last time with the terminal frontier
// and depth, regardless of the sampling interval, and returns the
// Metrics it delivered.
func (h *Harness) Final(frontier, depth int) Metrics {
	m := h.Snapshot(frontier, depth)
	if h.cb != nil {
		h.cb(m)
	}
	return m
}

// Explored returns the number of expansions recorded so far.
func (h *Harness) Explored() int { return h.explored }

// Snapshot builds a Metrics value for the given frontier/depth without
// invoking the callback or counting as an expansion.
func (h *Harness) Snapshot(frontier, depth int) Metrics {
	return Metrics{
		Explored: h.explored,
		Frontier: frontier,
		Depth:    depth,
		TimeMs:   time.Since(h.start).Milliseconds(),
	}
}
