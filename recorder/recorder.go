// Package recorder implements the best-ever solution recorder: it
// keeps an independent copy of the best solution seen by a search and
// accepts a candidate whenever it improves on that copy.
package recorder

// Recordable is the capability set a solution type must satisfy to be
// tracked by a Recorder: a cost, the ability to overwrite itself from
// a peer of the same type, and the ability to produce an independent
// copy of itself. S is self-referential (F-bounded) so Clone and
// CopyFrom operate on the concrete type directly, with no downcast.
type Recordable[S any] interface {
	Cost() float64
	CopyFrom(src S)
	Clone() S
}

// Recorder holds an independent copy of the best solution observed so
// far. It is not safe for concurrent use; search engines are
// single-threaded by design.
type Recorder[S Recordable[S]] struct {
	best     S
	bestCost float64
}

// New seeds the recorder with a clone of working, so the recorder
// never aliases the caller's working solution.
func New[S Recordable[S]](working S) *Recorder[S] {
	return &Recorder[S]{best: working.Clone(), bestCost: working.Cost()}
}

// Accept compares s.Cost() against the recorded best; if s is
// strictly better, its state is copied into the recorder's own
// solution and true is returned. Otherwise the recorder is left
// unchanged and false is returned.
func (r *Recorder[S]) Accept(s S) bool {
	cost := s.Cost()
	if cost < r.bestCost {
		r.best.CopyFrom(s)
		r.bestCost = cost
		return true
	}
	return false
}

// Best returns the recorder's own copy of the best solution found.
func (r *Recorder[S]) Best() S { return r.best }

// BestCost returns the cost of Best().
func (r *Recorder[S]) BestCost() float64 { return r.bestCost }
