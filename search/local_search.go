package search

import (
	"github.com/go-logr/logr"

	"gomets/move"
	"gomets/observer"
	"gomets/recorder"
	"gomets/termination"
)

// LocalSearch is a tabu-free, cooling-free steepest-descent engine: on
// every iteration it applies the single best-improving candidate move
// it can find, stopping either when the termination chain fires or
// when no candidate improves on the current cost (a local optimum).
type LocalSearch[S recorder.Recordable[S], M move.Move[S]] struct {
	working S
	manager move.Manager[S, M]
	term    termination.Node
	rec     *recorder.Recorder[S]
	notify  observer.Notifier[S, M]

	Logger logr.Logger

	errs []error
}

// NewLocalSearch wires the components required by a neighborhood
// descent over working.
func NewLocalSearch[S recorder.Recordable[S], M move.Move[S]](
	working S,
	manager move.Manager[S, M],
	term termination.Node,
) *LocalSearch[S, M] {
	if term == nil {
		term = termination.Never{}
	}
	return &LocalSearch[S, M]{
		working: working,
		manager: manager,
		term:    term,
		rec:     recorder.New(working),
		Logger:  logr.Discard(),
	}
}

// Subscribe registers f to receive every event this engine notifies.
func (l *LocalSearch[S, M]) Subscribe(f observer.Subscriber[S, M]) {
	l.notify.Subscribe(f)
}

// Recorder returns the engine's best-ever solution recorder.
func (l *LocalSearch[S, M]) Recorder() *recorder.Recorder[S] { return l.rec }

// BestCost returns the recorder's best-ever cost.
func (l *LocalSearch[S, M]) BestCost() float64 { return l.rec.BestCost() }

// Errors returns every panic recovered from an observer callback
// during Search, in the order they occurred.
func (l *LocalSearch[S, M]) Errors() []error { return l.errs }

// Search descends to a local optimum or until the termination chain
// fires, whichever comes first.
func (l *LocalSearch[S, M]) Search() error {
	for !l.term.Test(l.working) {
		currentCost := l.working.Cost()
		l.manager.Refresh(l.working)

		var (
			best     M
			bestSet  bool
			bestCost = currentCost
		)
		for _, m := range l.manager.Candidates() {
			if cost := m.Evaluate(l.working); cost < bestCost {
				best = m
				bestCost = cost
				bestSet = true
			}
		}

		if !bestSet {
			l.Logger.V(1).Info("local optimum reached", "cost", currentCost)
			return nil
		}

		best.Apply(l.working)

		step := observer.MoveMade
		if l.rec.Accept(l.working) {
			step = observer.ImprovementMade
			l.Logger.V(1).Info("improvement recorded", "cost", l.rec.BestCost())
		}
		if errs := l.notify.Notify(observer.Event[S, M]{Step: step, Solution: l.working, Move: best, HasMove: true}); len(errs) > 0 {
			l.errs = append(l.errs, errs...)
			l.Logger.V(2).Info("observer panics recovered", "count", len(errs))
		}
	}
	return nil
}
