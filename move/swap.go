package move

import "gomets/solution"

// SwapMove exchanges the elements at two positions of a
// solution.Permutation. Its equality and hash only consider the
// (unordered) pair of positions, matching the tabu semantics of the
// original mets::swap_elements move.
type SwapMove struct {
	p1, p2 int
}

// NewSwapMove returns a move swapping positions from and to. The pair
// is stored ordered (min, max) so that swap(i,j) and swap(j,i) compare
// equal, which is why SwapMove does not implement Opposable: the
// Clone that Tabu Search records by default already equals the
// reverse swap.
func NewSwapMove(from, to int) *SwapMove {
	if from > to {
		from, to = to, from
	}
	return &SwapMove{p1: from, p2: to}
}

// Evaluate returns the full cost the permutation would have after the
// swap, computed via the cheap incremental delta.
func (m *SwapMove) Evaluate(s *solution.Permutation) float64 {
	return s.Cost() + s.EvaluateSwap(m.p1, m.p2)
}

// Apply performs the swap and updates the cached cost.
func (m *SwapMove) Apply(s *solution.Permutation) {
	s.ApplySwap(m.p1, m.p2)
}

// Clone returns an independent copy for the tabu list to own.
func (m *SwapMove) Clone() *SwapMove {
	return &SwapMove{p1: m.p1, p2: m.p2}
}

// Hash combines both positions into a single value; collisions are
// resolved by Equal in the tabu list's bucketed index.
func (m *SwapMove) Hash() uint64 {
	return uint64(uint32(m.p1))<<32 | uint64(uint32(m.p2))
}

// Equal reports whether other swaps the same unordered pair of
// positions.
func (m *SwapMove) Equal(other *SwapMove) bool {
	return other != nil && m.p1 == other.p1 && m.p2 == other.p2
}

// Change re-parameterizes the move in place. Move managers that reuse
// move tokens across refreshes (e.g. the stochastic neighborhood) call
// this instead of allocating a new SwapMove every iteration.
func (m *SwapMove) Change(from, to int) {
	if from > to {
		from, to = to, from
	}
	m.p1, m.p2 = from, to
}

// Positions returns the (ordered) pair of positions this move swaps.
func (m *SwapMove) Positions() (int, int) { return m.p1, m.p2 }
