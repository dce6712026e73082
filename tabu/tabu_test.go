package tabu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gomets/move"
	"gomets/solution"
	"gomets/tabu"
)

func TestSimpleListEvictsOldest(t *testing.T) {
	list, err := tabu.NewSimpleList[*solution.Permutation, *move.SwapMove](3)
	require.NoError(t, err)

	m1 := move.NewSwapMove(0, 1)
	m2 := move.NewSwapMove(1, 2)
	m3 := move.NewSwapMove(2, 3)
	m4 := move.NewSwapMove(3, 4)

	list.Record(m1)
	list.Record(m2)
	list.Record(m3)
	list.Record(m4)

	require.Equal(t, 3, list.Len())
	require.False(t, list.Tabu(m1))
	require.True(t, list.Tabu(m2))
	require.True(t, list.Tabu(m3))
	require.True(t, list.Tabu(m4))
}

func TestSimpleListResetClearsMembership(t *testing.T) {
	list, err := tabu.NewSimpleList[*solution.Permutation, *move.SwapMove](2)
	require.NoError(t, err)

	m := move.NewSwapMove(0, 1)
	list.Record(m)
	require.True(t, list.Tabu(m))

	list.Reset()
	require.False(t, list.Tabu(m))
	require.Equal(t, 0, list.Len())
}

func TestNewSimpleListRejectsNonPositiveCapacity(t *testing.T) {
	_, err := tabu.NewSimpleList[*solution.Permutation, *move.SwapMove](0)
	require.Error(t, err)
}
