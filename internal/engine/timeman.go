package engine

import "time"

// safetyFactor shrinks the caller's budget so the search has a chance to
// return a completed iteration before the real deadline — spec.md §4.3:
// "Apply a safety factor (≈0.90) to get an effective deadline".
const safetyFactor = 0.90

// deadline tracks the monotonic clock against an effective time budget,
// grounded in the teacher's TimeManager (internal/engine/timeman.go) but
// reduced to exactly the spec's single (start, effective budget) pair —
// no increment/moves-to-go/stability heuristics, since the engine serves
// a single fixed-budget call, not a multi-move game clock.
type deadline struct {
	start   time.Time
	atEnd   time.Time
	nodeCnt uint64
}

// newDeadline starts a deadline clock for budget, already safety-scaled.
func newDeadline(budget time.Duration) *deadline {
	now := time.Now()
	effective := time.Duration(float64(budget) * safetyFactor)
	return &deadline{start: now, atEnd: now.Add(effective)}
}

// nodeSamplingInterval bounds worst-case overrun to O(N) node
// evaluations between clock checks (spec.md §5), while avoiding a
// time.Now() call on every single node for throughput.
const nodeSamplingInterval = 1023 // check every 1024th node (mask-friendly)

// poll samples the clock once every nodeSamplingInterval+1 calls and
// reports whether the deadline has passed. Every call increments the
// node counter, matching spec.md §5's "sample the clock at least at
// every node entry... throttled sampling... permitted for throughput".
func (d *deadline) poll() bool {
	d.nodeCnt++
	if d.nodeCnt&nodeSamplingInterval != 0 {
		return false
	}
	return time.Now().After(d.atEnd)
}

// expired reports whether the deadline has unconditionally passed,
// regardless of the sampling interval — used at the top of each
// iterative-deepening iteration, where an unthrottled check is cheap
// since it happens once per depth, not once per node.
func (d *deadline) expired() bool {
	return time.Now().After(d.atEnd)
}

// elapsed returns the wall-clock time since the deadline was started.
func (d *deadline) elapsed() time.Duration {
	return time.Since(d.start)
}
