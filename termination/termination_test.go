package termination_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gomets/termination"
)

type fakeSolution struct{ cost float64 }

func (f fakeSolution) Cost() float64 { return f.cost }

func TestIterationCountZeroTerminatesImmediately(t *testing.T) {
	n, err := termination.NewIterationCount(0)
	require.NoError(t, err)
	require.True(t, n.Test(fakeSolution{cost: 1}))
}

func TestIterationCountCountsDown(t *testing.T) {
	n, err := termination.NewIterationCount(3)
	require.NoError(t, err)
	require.False(t, n.Test(fakeSolution{}))
	require.False(t, n.Test(fakeSolution{}))
	require.False(t, n.Test(fakeSolution{}))
	require.True(t, n.Test(fakeSolution{}))
}

func TestIterationCountResetRestoresCounter(t *testing.T) {
	n, err := termination.NewIterationCount(1)
	require.NoError(t, err)
	require.False(t, n.Test(fakeSolution{}))
	require.True(t, n.Test(fakeSolution{}))
	n.Reset()
	require.False(t, n.Test(fakeSolution{}))
}

func TestThresholdFiresImmediatelyWhenBelowLevel(t *testing.T) {
	n := termination.NewThreshold(10, 0)
	require.True(t, n.Test(fakeSolution{cost: 5}))
}

func TestThresholdDoesNotFireAboveLevel(t *testing.T) {
	n := termination.NewThreshold(10, 0)
	require.False(t, n.Test(fakeSolution{cost: 15}))
}

func TestNoImprovementTerminatesAfterSingleNonImprovingQuery(t *testing.T) {
	n, err := termination.NewNoImprovement(1, 1e-9)
	require.NoError(t, err)

	require.False(t, n.Test(fakeSolution{cost: 100})) // first query always "improves" from unseen
	require.True(t, n.Test(fakeSolution{cost: 100}))  // no improvement, window of 1 exhausted
}

func TestNoImprovementResetsWindowOnImprovement(t *testing.T) {
	n, err := termination.NewNoImprovement(2, 1e-7)
	require.NoError(t, err)

	require.False(t, n.Test(fakeSolution{cost: 100}))
	require.False(t, n.Test(fakeSolution{cost: 90})) // improves, resets window
	require.False(t, n.Test(fakeSolution{cost: 90})) // 1 of 2 non-improving queries
	require.True(t, n.Test(fakeSolution{cost: 90}))  // 2 of 2, fires
	require.GreaterOrEqual(t, n.Resets(), 2)
}

func TestNoImprovementSecondGuessTracksInterruptedStreaks(t *testing.T) {
	n, err := termination.NewNoImprovement(10, 1e-7)
	require.NoError(t, err)

	cost := 1000.0
	for i := 0; i < 10; i++ {
		cost -= 10
		require.False(t, n.Test(fakeSolution{cost: cost}))
	}
	// Every drop above interrupted its window immediately (streak 0
	// each time), so no streak longer than 0 was ever cut short.
	require.Equal(t, 0, n.SecondGuess())

	for i := 0; i < 9; i++ {
		require.False(t, n.Test(fakeSolution{cost: cost}))
	}
	require.True(t, n.Test(fakeSolution{cost: cost}))
	require.Equal(t, 10, n.Resets())
}

func TestNoImprovementRejectsInvalidParams(t *testing.T) {
	_, err := termination.NewNoImprovement(0, 0)
	require.Error(t, err)
	_, err = termination.NewNoImprovement(1, -1)
	require.Error(t, err)
}

func TestContextNodeFiresOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := termination.NewContext(ctx)
	require.False(t, n.Test(fakeSolution{}))

	cancel()
	require.True(t, n.Test(fakeSolution{}))
}

func TestChainDelegatesUntilANodeFires(t *testing.T) {
	iter, err := termination.NewIterationCount(5)
	require.NoError(t, err)
	threshold := termination.NewThreshold(10, 0)
	chain := termination.Chain(iter, threshold)

	require.False(t, chain.Test(fakeSolution{cost: 100}))
	require.True(t, chain.Test(fakeSolution{cost: 5}))
}

func TestChainResetIsRecursive(t *testing.T) {
	iter, err := termination.NewIterationCount(1)
	require.NoError(t, err)
	noImp, err := termination.NewNoImprovement(1, 0)
	require.NoError(t, err)
	chain := termination.Chain(iter, noImp)

	chain.Test(fakeSolution{cost: 1})
	chain.Test(fakeSolution{cost: 1})
	chain.Reset()

	require.Equal(t, 1, iter.Remaining())
	require.Equal(t, 0, noImp.Iteration())
}

func TestNeverNeverTerminates(t *testing.T) {
	n := termination.Never{}
	require.False(t, n.Test(fakeSolution{cost: 1e18}))
}

func TestChainWithNoNodesIsNever(t *testing.T) {
	chain := termination.Chain()
	require.False(t, chain.Test(fakeSolution{}))
}
