// Package demoproblem implements the Quadratic Assignment Problem, a
// permutation problem used as the demo driver's stand-in for the
// framework's real-world consumers: assign n facilities to n
// locations, minimizing sum(flow[i][j] * dist[perm[i]][perm[j]]).
//
// This package is a consumer of the core (solution.PermutationCostFunc)
// exactly as the framework's own author would ship one, and never
// leaks into the core packages' own public surface.
package demoproblem

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

// QAP is a Quadratic Assignment Problem instance: two n x n matrices,
// flow between facilities and distance between locations.
type QAP struct {
	n    int
	flow [][]int
	dist [][]int
}

// NewQAP validates flow and dist are square, equally sized, and
// non-negative, and returns a QAP instance.
func NewQAP(flow, dist [][]int) (*QAP, error) {
	n := len(flow)
	if n == 0 {
		return nil, fmt.Errorf("demoproblem: QAP size must be > 0")
	}
	if len(dist) != n {
		return nil, fmt.Errorf("demoproblem: flow and dist must have the same size (got %d and %d)", n, len(dist))
	}
	for i, row := range flow {
		if len(row) != n {
			return nil, fmt.Errorf("demoproblem: flow row %d has length %d, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("demoproblem: flow[%d][%d] = %d is negative", i, j, v)
			}
		}
	}
	for i, row := range dist {
		if len(row) != n {
			return nil, fmt.Errorf("demoproblem: dist row %d has length %d, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("demoproblem: dist[%d][%d] = %d is negative", i, j, v)
			}
		}
	}
	return &QAP{n: n, flow: flow, dist: dist}, nil
}

// RandomQAP generates a random symmetric QAP instance of size n, with
// entries uniform in [0, maxWeight). rng must not be nil.
func RandomQAP(n int, maxWeight int, rng *rand.Rand) (*QAP, error) {
	if rng == nil {
		panic("demoproblem: RandomQAP requires a non-nil rng")
	}
	if n <= 0 {
		return nil, fmt.Errorf("demoproblem: QAP size must be > 0 (got %d)", n)
	}
	if maxWeight <= 0 {
		return nil, fmt.Errorf("demoproblem: maxWeight must be > 0 (got %d)", maxWeight)
	}
	flow := randomSymmetricMatrix(n, maxWeight, rng)
	dist := randomSymmetricMatrix(n, maxWeight, rng)
	return NewQAP(flow, dist)
}

func randomSymmetricMatrix(n, maxWeight int, rng *rand.Rand) [][]int {
	m := lo.Map(make([]struct{}, n), func(_ struct{}, _ int) []int {
		return make([]int, n)
	})
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := rng.Intn(maxWeight)
			m[i][j] = w
			m[j][i] = w
		}
	}
	return m
}

// Size returns n.
func (q *QAP) Size() int { return q.n }

// ComputeCost implements solution.PermutationCostFunc: the full
// assignment cost of perm, recomputed from scratch.
func (q *QAP) ComputeCost(perm []int) float64 {
	total := 0
	for i := 0; i < q.n; i++ {
		for j := 0; j < q.n; j++ {
			total += q.flow[i][j] * q.dist[perm[i]][perm[j]]
		}
	}
	return float64(total)
}

// EvaluateSwap implements solution.PermutationCostFunc: the change in
// cost that swapping the facilities at positions i and j would produce,
// computed incrementally around the affected rows/columns rather than
// by a full recomputation.
func (q *QAP) EvaluateSwap(perm []int, i, j int) float64 {
	if i == j {
		return 0
	}
	pi, pj := perm[i], perm[j]

	delta := 0
	for k := 0; k < q.n; k++ {
		if k == i || k == j {
			continue
		}
		pk := perm[k]
		delta += q.flow[i][k]*(q.dist[pj][pk]-q.dist[pi][pk]) + q.flow[k][i]*(q.dist[pk][pj]-q.dist[pk][pi])
		delta += q.flow[j][k]*(q.dist[pi][pk]-q.dist[pj][pk]) + q.flow[k][j]*(q.dist[pk][pi]-q.dist[pk][pj])
	}
	delta += q.flow[i][j]*(q.dist[pj][pi]-q.dist[pi][pj]) + q.flow[j][i]*(q.dist[pi][pj]-q.dist[pj][pi])
	delta += q.flow[i][i]*(q.dist[pj][pj]-q.dist[pi][pi]) + q.flow[j][j]*(q.dist[pi][pi]-q.dist[pj][pj])

	return float64(delta)
}
