package move

import "gomets/solution"

// FullSwapNeighborhood enumerates every unordered pair (i, j), i < j,
// of positions in a permutation of the given size. It is a static
// neighborhood: Refresh is a no-op and the same n(n-1)/2 move tokens
// are reused for the lifetime of the manager.
type FullSwapNeighborhood struct {
	moves []*SwapMove
}

// NewFullSwapNeighborhood builds the full swap neighborhood for a
// permutation of size n, in lexicographic (i, j) order.
func NewFullSwapNeighborhood(n int) *FullSwapNeighborhood {
	moves := make([]*SwapMove, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			moves = append(moves, NewSwapMove(i, j))
		}
	}
	return &FullSwapNeighborhood{moves: moves}
}

// Refresh is a no-op: the neighborhood is the same at every iteration.
func (n *FullSwapNeighborhood) Refresh(s *solution.Permutation) {}

// Candidates returns the full neighborhood in lexicographic order.
func (n *FullSwapNeighborhood) Candidates() []*SwapMove { return n.moves }

// FullInvertNeighborhood enumerates every ordered pair (i, j), i != j,
// of positions in a permutation of the given size, as a static
// subsequence-inversion neighborhood.
type FullInvertNeighborhood struct {
	moves []*InvertMove
}

// NewFullInvertNeighborhood builds the full inversion neighborhood for
// a permutation of size n.
func NewFullInvertNeighborhood(n int) *FullInvertNeighborhood {
	moves := make([]*InvertMove, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				moves = append(moves, NewInvertMove(i, j))
			}
		}
	}
	return &FullInvertNeighborhood{moves: moves}
}

// Refresh is a no-op: the neighborhood is the same at every iteration.
func (n *FullInvertNeighborhood) Refresh(s *solution.Permutation) {}

// Candidates returns the full neighborhood in (i, j) enumeration order.
func (n *FullInvertNeighborhood) Candidates() []*InvertMove { return n.moves }
