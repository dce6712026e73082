package demoproblem_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"gomets/internal/demoproblem"
)

func TestNewQAPValidatesShape(t *testing.T) {
	_, err := demoproblem.NewQAP(nil, nil)
	require.Error(t, err)

	_, err = demoproblem.NewQAP([][]int{{0, 1}, {1, 0}}, [][]int{{0}})
	require.Error(t, err)
}

func TestRandomQAPDeterministicForSameSeed(t *testing.T) {
	a, err := demoproblem.RandomQAP(6, 50, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	b, err := demoproblem.RandomQAP(6, 50, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	perm := []int{5, 4, 3, 2, 1, 0}
	require.Equal(t, a.ComputeCost(perm), b.ComputeCost(perm))
}

func TestEvaluateSwapMatchesFullRecompute(t *testing.T) {
	q, err := demoproblem.RandomQAP(7, 40, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	perm := []int{3, 1, 4, 0, 5, 2, 6}
	before := q.ComputeCost(perm)

	delta := q.EvaluateSwap(perm, 2, 5)

	swapped := append([]int(nil), perm...)
	swapped[2], swapped[5] = swapped[5], swapped[2]
	after := q.ComputeCost(swapped)

	require.InDelta(t, after-before, delta, 1e-9)
	require.InDelta(t, before, q.ComputeCost(perm), 1e-9)
}

func TestEvaluateSwapSamePositionIsZeroDelta(t *testing.T) {
	q, err := demoproblem.RandomQAP(5, 20, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	perm := []int{4, 2, 0, 3, 1}
	require.Equal(t, 0.0, q.EvaluateSwap(perm, 2, 2))
}
