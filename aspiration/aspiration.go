// Package aspiration implements the best-ever aspiration criterion:
// an override that lets Tabu Search accept an otherwise-forbidden move
// when it would beat the best cost observed so far.
package aspiration

import "math"

// BestEver tracks the best cost observed during a search and decides
// whether a proposed (tabu) move's cost is good enough to override the
// tabu status. It holds its own notion of "best" rather than
// referencing a recorder, so the engine updates it explicitly whenever
// a new best solution is recorded.
type BestEver struct {
	best float64
}

// NewBestEver returns an aspiration criterion with no observations
// yet (best = +Inf, so the first Aspires call for any finite cost
// succeeds).
func NewBestEver() *BestEver {
	return &BestEver{best: math.Inf(1)}
}

// Observe lowers the tracked best if cost improves on it.
func (a *BestEver) Observe(cost float64) {
	if cost < a.best {
		a.best = cost
	}
}

// Aspires reports whether proposedCost is strictly better than the
// best cost observed so far, i.e. whether a tabu move with that
// evaluated cost should be allowed despite being tabu.
func (a *BestEver) Aspires(proposedCost float64) bool {
	return proposedCost < a.best
}

// Best returns the currently tracked best cost.
func (a *BestEver) Best() float64 { return a.best }

// Reset returns the criterion to its construction-time state.
func (a *BestEver) Reset() { a.best = math.Inf(1) }
