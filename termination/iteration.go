package termination

import "fmt"

// IterationCount terminates the chain after exactly max queries,
// regardless of what the working solution looks like.
type IterationCount struct {
	link
	max       int
	remaining int
}

// NewIterationCount validates max (>= 0) and returns a node counting
// down from it. max == 0 terminates on the very first query.
func NewIterationCount(max int) (*IterationCount, error) {
	if max < 0 {
		return nil, fmt.Errorf("termination: iteration count must be >= 0 (got %d)", max)
	}
	return &IterationCount{max: max, remaining: max}, nil
}

// Test decrements the counter and delegates to the rest of the chain
// unless it has been exhausted.
func (n *IterationCount) Test(s Solution) bool {
	if n.remaining <= 0 {
		return true
	}
	n.remaining--
	return n.delegateTest(s)
}

// Reset restores the counter to max and resets the rest of the chain.
func (n *IterationCount) Reset() {
	n.remaining = n.max
	n.delegateReset()
}

// Remaining returns the number of queries left before this node fires.
func (n *IterationCount) Remaining() int { return n.remaining }
