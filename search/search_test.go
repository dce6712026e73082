package search_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"gomets/aspiration"
	"gomets/cooling"
	"gomets/internal/demoproblem"
	"gomets/move"
	"gomets/observer"
	"gomets/search"
	"gomets/solution"
	"gomets/tabu"
	"gomets/termination"
)

func newPermutation(t *testing.T, seed int64) (*solution.Permutation, *demoproblem.QAP) {
	t.Helper()
	q, err := demoproblem.RandomQAP(8, 30, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	p, err := solution.NewPermutation(8, q)
	require.NoError(t, err)
	p.Shuffle(rand.New(rand.NewSource(seed + 1)))
	return p, q
}

func TestTabuSearchNeverWorsensRecordedBest(t *testing.T) {
	p, _ := newPermutation(t, 1)
	initialCost := p.Cost()

	manager := move.NewStochasticSwapNeighborhood(10, rand.New(rand.NewSource(2)))
	tabuList, err := tabu.NewSimpleList[*solution.Permutation, *move.SwapMove](5)
	require.NoError(t, err)
	iterCap, err := termination.NewIterationCount(200)
	require.NoError(t, err)

	engine, err := search.NewTabuSearch[*solution.Permutation, *move.SwapMove](p, manager, tabuList, aspiration.NewBestEver(), iterCap)
	require.NoError(t, err)

	err = engine.Search()
	require.True(t, err == nil || errors.Is(err, search.ErrNoAdmissibleMove))
	require.LessOrEqual(t, engine.BestCost(), initialCost)
}

func TestSimulatedAnnealingReachesTemperatureFloor(t *testing.T) {
	p, _ := newPermutation(t, 3)
	initialCost := p.Cost()

	manager := move.NewStochasticSwapNeighborhood(10, rand.New(rand.NewSource(4)))
	schedule, err := cooling.NewExponential[*solution.Permutation](0.8)
	require.NoError(t, err)
	cfg := search.AnnealingConfig{TStart: 50, TStop: 1, K: 1}

	engine, err := search.NewSimulatedAnnealing[*solution.Permutation, *move.SwapMove](p, manager, termination.Never{}, schedule, cfg, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	require.NoError(t, engine.Search())
	require.LessOrEqual(t, engine.CurrentTemp(), cfg.TStop)
	require.LessOrEqual(t, engine.BestCost(), initialCost)
}

func TestLocalSearchStopsAtLocalOptimum(t *testing.T) {
	p, _ := newPermutation(t, 6)
	initialCost := p.Cost()

	manager := move.NewFullSwapNeighborhood(p.Size())
	engine := search.NewLocalSearch[*solution.Permutation, *move.SwapMove](p, manager, termination.Never{})

	require.NoError(t, engine.Search())
	require.LessOrEqual(t, engine.BestCost(), initialCost)

	// A second run from the already-optimal state makes no more progress.
	costAfterFirst := engine.BestCost()
	engine2 := search.NewLocalSearch[*solution.Permutation, *move.SwapMove](p, move.NewFullSwapNeighborhood(p.Size()), termination.Never{})
	require.NoError(t, engine2.Search())
	require.InDelta(t, costAfterFirst, engine2.BestCost(), 1e-9)
}

func TestSimulatedAnnealingRejectsBadConfig(t *testing.T) {
	p, _ := newPermutation(t, 7)
	manager := move.NewStochasticSwapNeighborhood(5, rand.New(rand.NewSource(8)))
	schedule, err := cooling.NewExponential[*solution.Permutation](0.9)
	require.NoError(t, err)

	_, err = search.NewSimulatedAnnealing[*solution.Permutation, *move.SwapMove](
		p, manager, termination.Never{}, schedule,
		search.AnnealingConfig{TStart: 1, TStop: 1, K: 1},
		rand.New(rand.NewSource(9)),
	)
	require.Error(t, err)
}

func TestTabuSearchAspirationOverridesTabooedMove(t *testing.T) {
	p, _ := newPermutation(t, 10)
	manager := move.NewFullSwapNeighborhood(p.Size())
	tabuList, err := tabu.NewSimpleList[*solution.Permutation, *move.SwapMove](50)
	require.NoError(t, err)
	iterCap, err := termination.NewIterationCount(1)
	require.NoError(t, err)

	// Find the move the engine would pick with an empty tabu list (lowest
	// evaluated cost, first wins), then make it tabu.
	var best *move.SwapMove
	bestCost := 0.0
	for _, m := range manager.Candidates() {
		if c := m.Evaluate(p); best == nil || c < bestCost {
			best, bestCost = m, c
		}
	}
	tabuList.Record(best)
	require.True(t, tabuList.Tabu(best))

	asp := aspiration.NewBestEver()
	asp.Observe(bestCost + 1) // the tabooed move's cost is strictly better, so it aspires

	engine, err := search.NewTabuSearch[*solution.Permutation, *move.SwapMove](p, manager, tabuList, asp, iterCap)
	require.NoError(t, err)
	var applied *move.SwapMove
	engine.Subscribe(func(e observer.Event[*solution.Permutation, *move.SwapMove]) {
		if e.HasMove {
			applied = e.Move
		}
	})
	require.NoError(t, engine.Search())
	require.True(t, best.Equal(applied))
	require.InDelta(t, bestCost, p.Cost(), 1e-9)
}
