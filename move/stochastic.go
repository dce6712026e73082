package move

import (
	"math/rand"

	"gomets/solution"
)

// StochasticSwapNeighborhood draws k random swap moves on every
// Refresh, with the two positions of each move guaranteed distinct.
// The manager owns a fixed set of k move tokens and re-randomizes them
// in place, so callers must not assume a move's identity (its pointer)
// still describes the same swap after a subsequent Refresh.
type StochasticSwapNeighborhood struct {
	rng   *rand.Rand
	moves []*SwapMove
}

// NewStochasticSwapNeighborhood allocates k move slots driven by rng.
// The slots are uninitialized (0,0) until the first Refresh.
func NewStochasticSwapNeighborhood(k int, rng *rand.Rand) *StochasticSwapNeighborhood {
	moves := make([]*SwapMove, k)
	for i := range moves {
		moves[i] = NewSwapMove(0, 0)
	}
	return &StochasticSwapNeighborhood{rng: rng, moves: moves}
}

// Refresh re-randomizes every move slot against the permutation's
// current size, drawing p1 != p2 uniformly.
func (n *StochasticSwapNeighborhood) Refresh(s *solution.Permutation) {
	size := s.Size()
	for _, m := range n.moves {
		p1 := n.rng.Intn(size)
		p2 := n.rng.Intn(size)
		for p1 == p2 {
			p2 = n.rng.Intn(size)
		}
		m.Change(p1, p2)
	}
}

// Candidates returns the current k random swap slots.
func (n *StochasticSwapNeighborhood) Candidates() []*SwapMove { return n.moves }
