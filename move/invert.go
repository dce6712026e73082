package move

import "gomets/solution"

// InvertMove reverses the cyclic subsequence of a solution.Permutation
// running from position from to position to (inclusive, wrapping
// around the end of the permutation). Unlike SwapMove, from and to are
// ordered and exchanging them describes a different move; InvertMove
// implements Opposable so that Tabu Search records that exchanged move
// instead of a clone.
type InvertMove struct {
	from, to int
}

// NewInvertMove returns a move inverting the subsequence [from, to]
// (cyclically).
func NewInvertMove(from, to int) *InvertMove {
	return &InvertMove{from: from, to: to}
}

// Evaluate returns the full cost after the inversion.
func (m *InvertMove) Evaluate(s *solution.Permutation) float64 {
	return s.Cost() + s.EvaluateInvert(m.from, m.to)
}

// Apply performs the inversion and updates the cached cost.
func (m *InvertMove) Apply(s *solution.Permutation) {
	s.ApplyInvert(m.from, m.to)
}

// Clone returns an independent copy.
func (m *InvertMove) Clone() *InvertMove {
	return &InvertMove{from: m.from, to: m.to}
}

// Hash combines both endpoints.
func (m *InvertMove) Hash() uint64 {
	return uint64(uint32(m.from))<<32 | uint64(uint32(m.to))
}

// Equal reports whether other inverts the same ordered span.
func (m *InvertMove) Equal(other *InvertMove) bool {
	return other != nil && m.from == other.from && m.to == other.to
}

// OppositeOf returns the move with from and to exchanged. Because the
// span is cyclic, that move inverts the other arc (from to around the
// end back to from), not the same positions; applying this same move a
// second time is what undoes it.
func (m *InvertMove) OppositeOf() *InvertMove {
	return &InvertMove{from: m.to, to: m.from}
}

// Change re-parameterizes the move in place.
func (m *InvertMove) Change(from, to int) {
	m.from, m.to = from, to
}
