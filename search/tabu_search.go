package search

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"gomets/aspiration"
	"gomets/move"
	"gomets/observer"
	"gomets/recorder"
	"gomets/tabu"
	"gomets/termination"
)

// TabuSearch drives a working solution through the tabu-list/aspiration
// state machine: refresh the
// neighborhood, select the best admissible candidate (not tabu, or
// aspiration-cleared), apply it, record its opposite as tabu, offer
// the result to the recorder, and notify observers.
type TabuSearch[S recorder.Recordable[S], M move.ManaMove[S, M]] struct {
	working S
	manager move.Manager[S, M]
	tabu    *tabu.SimpleList[S, M]
	asp     *aspiration.BestEver
	term    termination.Node
	rec     *recorder.Recorder[S]
	notify  observer.Notifier[S, M]

	Logger logr.Logger

	errs []error
}

// NewTabuSearch wires the components required by a tabu search over
// working. term is consulted once at the top of every iteration; the
// caller is responsible for composing it (e.g. via termination.Chain).
func NewTabuSearch[S recorder.Recordable[S], M move.ManaMove[S, M]](
	working S,
	manager move.Manager[S, M],
	tabuList *tabu.SimpleList[S, M],
	asp *aspiration.BestEver,
	term termination.Node,
) (*TabuSearch[S, M], error) {
	if manager == nil {
		return nil, fmt.Errorf("search: move manager must not be nil")
	}
	if tabuList == nil {
		return nil, fmt.Errorf("search: tabu list must not be nil")
	}
	if asp == nil {
		return nil, fmt.Errorf("search: aspiration criterion must not be nil")
	}
	if term == nil {
		term = termination.Never{}
	}
	return &TabuSearch[S, M]{
		working: working,
		manager: manager,
		tabu:    tabuList,
		asp:     asp,
		term:    term,
		rec:     recorder.New(working),
		Logger:  logr.Discard(),
	}, nil
}

// Subscribe registers f to receive every event this engine notifies.
func (t *TabuSearch[S, M]) Subscribe(f observer.Subscriber[S, M]) {
	t.notify.Subscribe(f)
}

// Recorder returns the engine's best-ever solution recorder.
func (t *TabuSearch[S, M]) Recorder() *recorder.Recorder[S] { return t.rec }

// BestCost returns the recorder's best-ever cost.
func (t *TabuSearch[S, M]) BestCost() float64 { return t.rec.BestCost() }

// Errors returns every panic recovered from an observer callback
// during Search, in the order they occurred.
func (t *TabuSearch[S, M]) Errors() []error { return t.errs }

// Search runs the tabu search state machine to completion: either the
// termination chain fires, or a refreshed neighborhood contains no
// admissible move, in which case ErrNoAdmissibleMove is returned and
// the working solution is left exactly as it was before that
// iteration.
func (t *TabuSearch[S, M]) Search() error {
	for {
		if t.term.Test(t.working) {
			return nil
		}

		t.manager.Refresh(t.working)
		candidates := t.manager.Candidates()

		var (
			chosen    M
			chosenSet bool
			bestCost  = math.Inf(1)
		)
		for _, m := range candidates {
			cost := m.Evaluate(t.working)
			tabooed := t.tabu.Tabu(m)
			admissible := !tabooed || t.asp.Aspires(cost)
			if !admissible {
				continue
			}
			if !chosenSet || cost < bestCost {
				chosen = m
				bestCost = cost
				chosenSet = true
			}
		}

		if !chosenSet {
			t.Logger.V(1).Info("no admissible move", "candidates", len(candidates))
			t.publish(observer.Event[S, M]{Step: observer.Aborted, Solution: t.working})
			return ErrNoAdmissibleMove
		}

		chosen.Apply(t.working)

		if opp, ok := any(chosen).(move.Opposable[M]); ok {
			t.tabu.Record(opp.OppositeOf())
		} else {
			t.tabu.Record(chosen.Clone())
		}

		step := observer.MoveMade
		if t.rec.Accept(t.working) {
			step = observer.ImprovementMade
			t.asp.Observe(t.rec.BestCost())
			t.Logger.V(1).Info("improvement recorded", "cost", t.rec.BestCost())
		}

		t.publish(observer.Event[S, M]{
			Step:     step,
			Solution: t.working,
			Move:     chosen,
			HasMove:  true,
		})
	}
}

func (t *TabuSearch[S, M]) publish(e observer.Event[S, M]) {
	if errs := t.notify.Notify(e); len(errs) > 0 {
		t.errs = append(t.errs, errs...)
		t.Logger.V(2).Info("observer panics recovered", "count", len(errs))
	}
}
