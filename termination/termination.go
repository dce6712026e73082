// Package termination implements the composable termination-criterion
// chain shared by every search engine: a sequence of stateful
// predicate nodes, terminal as soon as any node in the chain says so.
package termination

// Solution is the minimal capability a termination node needs from the
// working solution: its current cost.
type Solution interface {
	Cost() float64
}

// Node is a single link in a termination chain. Test reports whether
// the search should stop; a node that does not want to stop delegates
// to whatever node follows it in the chain built by Chain. Reset
// returns the node (and, recursively, the rest of the chain) to its
// construction-time state.
type Node interface {
	Test(s Solution) bool
	Reset()
}

// chainable is implemented internally by every node type so Chain can
// wire successors without the public Node interface exposing mutation.
type chainable interface {
	setNext(Node)
}

// link is embedded by every node implementation; it carries the
// "next" pointer and the two chaining helpers every node needs.
type link struct {
	next Node
}

func (l *link) setNext(n Node) { l.next = n }

func (l *link) delegateTest(s Solution) bool {
	if l.next == nil {
		return false
	}
	return l.next.Test(s)
}

func (l *link) delegateReset() {
	if l.next != nil {
		l.next.Reset()
	}
}

// Chain wires nodes into a single chain of responsibility, in the
// order given, and returns the head. Each node's own Test still
// decides termination first; only when it does not terminate does
// control (and iteration count) pass to the next node.
func Chain(nodes ...Node) Node {
	if len(nodes) == 0 {
		return Never{}
	}
	for i := 0; i < len(nodes)-1; i++ {
		if c, ok := nodes[i].(chainable); ok {
			c.setNext(nodes[i+1])
		}
	}
	return nodes[0]
}

// Never always reports "do not terminate". It cannot be meaningfully
// chained (there is nothing left to delegate to that would ever run);
// use it as the sole termination criterion for engines that have their
// own independent stop condition, such as Simulated Annealing's
// temperature floor.
type Never struct{}

// Test always returns false.
func (Never) Test(Solution) bool { return false }

// Reset is a no-op.
func (Never) Reset() {}
