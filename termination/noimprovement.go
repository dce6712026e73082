package termination

import "fmt"

// NoImprovement fires once max consecutive queries have passed without
// the working solution's cost improving on the best cost seen by this
// node by more than epsilon. It is grounded on metslib's
// noimprove_termination_criteria, including its "second guess" bookkeeping:
// the longest non-improving streak that was itself interrupted by an
// improvement, so a caller can tell how close a search came to firing
// before it recovered.
type NoImprovement struct {
	link
	max         int
	epsilon     float64
	remaining   int
	bestCost    float64
	seen        bool
	secondGuess int
	resets      int
	iteration   int
}

// NewNoImprovement validates max (> 0) and epsilon (>= 0).
func NewNoImprovement(max int, epsilon float64) (*NoImprovement, error) {
	if max <= 0 {
		return nil, fmt.Errorf("termination: no-improvement window must be > 0 (got %d)", max)
	}
	if epsilon < 0 {
		return nil, fmt.Errorf("termination: no-improvement epsilon must be >= 0 (got %f)", epsilon)
	}
	n := &NoImprovement{max: max, epsilon: epsilon}
	n.resetWindow()
	return n, nil
}

func (n *NoImprovement) resetWindow() {
	n.remaining = n.max
}

// Test records whether s improved on the best cost seen by this node.
// An improvement larger than epsilon resets the window; otherwise the
// window's remaining count is decremented and, once exhausted, the
// node terminates.
func (n *NoImprovement) Test(s Solution) bool {
	n.iteration++
	cost := s.Cost()
	if !n.seen || cost < n.bestCost-n.epsilon {
		if streak := n.max - n.remaining; streak > n.secondGuess {
			n.secondGuess = streak
		}
		n.seen = true
		n.bestCost = cost
		n.resets++
		n.resetWindow()
		return n.delegateTest(s)
	}
	n.remaining--
	if n.remaining <= 0 {
		return true
	}
	return n.delegateTest(s)
}

// Reset restores the node to its construction-time state.
func (n *NoImprovement) Reset() {
	n.seen = false
	n.bestCost = 0
	n.secondGuess = 0
	n.resets = 0
	n.iteration = 0
	n.resetWindow()
	n.delegateReset()
}

// SecondGuess returns the longest non-improving streak that was itself
// interrupted by an improvement (i.e. excluding the streak, if any,
// that is still in progress or that caused this node to terminate).
func (n *NoImprovement) SecondGuess() int { return n.secondGuess }

// Resets returns how many times an improvement has restarted the
// window since the last Reset.
func (n *NoImprovement) Resets() int { return n.resets }

// Iteration returns how many times Test has been called since the
// last Reset.
func (n *NoImprovement) Iteration() int { return n.iteration }
