package search

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-logr/logr"

	"gomets/cooling"
	"gomets/move"
	"gomets/observer"
	"gomets/recorder"
	"gomets/termination"
)

// SimulatedAnnealing drives a working solution by accepting every
// improving candidate and, with Metropolis probability, some
// worsening ones, cooling its temperature after every iteration. It
// never consults tabu memory.
type SimulatedAnnealing[S recorder.Recordable[S], M move.Move[S]] struct {
	working  S
	manager  move.Manager[S, M]
	term     termination.Node
	schedule cooling.Schedule[S]
	rng      *rand.Rand
	rec      *recorder.Recorder[S]
	notify   observer.Notifier[S, M]

	temp  float64
	tStop float64
	k     float64

	Logger logr.Logger

	errs []error
}

// NewSimulatedAnnealing wires the components required by a simulated
// annealing search over working. cfg is validated eagerly.
func NewSimulatedAnnealing[S recorder.Recordable[S], M move.Move[S]](
	working S,
	manager move.Manager[S, M],
	term termination.Node,
	schedule cooling.Schedule[S],
	cfg AnnealingConfig,
	rng *rand.Rand,
) (*SimulatedAnnealing[S, M], error) {
	if manager == nil {
		return nil, fmt.Errorf("search: move manager must not be nil")
	}
	if schedule == nil {
		return nil, fmt.Errorf("search: cooling schedule must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("search: rng must not be nil")
	}
	if term == nil {
		term = termination.Never{}
	}
	return &SimulatedAnnealing[S, M]{
		working:  working,
		manager:  manager,
		term:     term,
		schedule: schedule,
		rng:      rng,
		rec:      recorder.New(working),
		temp:     cfg.TStart,
		tStop:    cfg.TStop,
		k:        cfg.K,
		Logger:   logr.Discard(),
	}, nil
}

// Subscribe registers f to receive every event this engine notifies.
func (a *SimulatedAnnealing[S, M]) Subscribe(f observer.Subscriber[S, M]) {
	a.notify.Subscribe(f)
}

// Recorder returns the engine's best-ever solution recorder.
func (a *SimulatedAnnealing[S, M]) Recorder() *recorder.Recorder[S] { return a.rec }

// BestCost returns the recorder's best-ever cost.
func (a *SimulatedAnnealing[S, M]) BestCost() float64 { return a.rec.BestCost() }

// CurrentTemp returns the current annealing temperature.
func (a *SimulatedAnnealing[S, M]) CurrentTemp() float64 { return a.temp }

// Errors returns every panic recovered from an observer callback
// during Search, in the order they occurred.
func (a *SimulatedAnnealing[S, M]) Errors() []error { return a.errs }

// Search runs until the termination chain fires or the temperature
// reaches its floor, whichever comes first.
func (a *SimulatedAnnealing[S, M]) Search() error {
	for !a.term.Test(a.working) && a.temp > a.tStop {
		actualCost := a.working.Cost()
		a.manager.Refresh(a.working)

		for _, m := range a.manager.Candidates() {
			cost := m.Evaluate(a.working)
			delta := cost - actualCost
			if a.accepts(delta) {
				m.Apply(a.working)

				step := observer.MoveMade
				if a.rec.Accept(a.working) {
					a.publish(observer.Event[S, M]{Step: observer.ImprovementMade, Solution: a.working, Move: m, HasMove: true})
					a.Logger.V(1).Info("improvement recorded", "cost", a.rec.BestCost())
				}
				a.publish(observer.Event[S, M]{Step: step, Solution: a.working, Move: m, HasMove: true})
				break
			}
		}

		a.temp = a.schedule.Next(a.temp, a.working)
	}
	if a.temp <= a.tStop {
		a.Logger.V(1).Info("temperature floor reached", "temp", a.temp)
	}
	return nil
}

// accepts implements the Metropolis criterion, degrading to greedy
// acceptance when K*T underflows to a non-positive denominator.
func (a *SimulatedAnnealing[S, M]) accepts(delta float64) bool {
	if delta < 0 {
		return true
	}
	denom := a.k * a.temp
	if denom <= 0 {
		return false
	}
	return a.rng.Float64() < math.Exp(-delta/denom)
}

func (a *SimulatedAnnealing[S, M]) publish(e observer.Event[S, M]) {
	if errs := a.notify.Notify(e); len(errs) > 0 {
		a.errs = append(a.errs, errs...)
		a.Logger.V(2).Info("observer panics recovered", "count", len(errs))
	}
}
