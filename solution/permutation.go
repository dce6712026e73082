package solution

import (
	"fmt"
	"math/rand"
)

// PermutationCostFunc is the problem-specific strategy a Permutation
// delegates to. Implement ComputeCost for a full, from-scratch evaluation
// and EvaluateSwap for the cheap incremental delta of exchanging two
// positions; the incremental path is what search engines exercise on
// every candidate move.
type PermutationCostFunc interface {
	// ComputeCost returns the full objective value of perm.
	ComputeCost(perm []int) float64
	// EvaluateSwap returns the change in cost (can be negative) that
	// swapping positions i and j of perm would produce. It must not
	// mutate perm.
	EvaluateSwap(perm []int, i, j int) float64
}

// Permutation is a solution whose state is an ordering of {0,...,n-1}
// with a cost cached alongside it. It is the canonical skeleton for
// assignment-style problems (QAP, TSP, and similar) — see
// internal/demoproblem for a worked example.
type Permutation struct {
	perm    []int
	cost    float64
	costFn  PermutationCostFunc
}

// NewPermutation builds the identity permutation [0, 1, ..., n-1] and
// evaluates its cost via costFn.
func NewPermutation(n int, costFn PermutationCostFunc) (*Permutation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("solution: permutation size must be > 0 (got %d)", n)
	}
	if costFn == nil {
		return nil, fmt.Errorf("solution: permutation cost function must not be nil")
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	p := &Permutation{perm: perm, costFn: costFn}
	p.Recompute()
	return p, nil
}

// NewPermutationFromSlice builds a Permutation seeded with an
// externally-supplied ordering (e.g. one restored from a config file or
// a previous run) instead of the identity. perm is validated and
// defensively copied.
func NewPermutationFromSlice(perm []int, costFn PermutationCostFunc) (*Permutation, error) {
	if costFn == nil {
		return nil, fmt.Errorf("solution: permutation cost function must not be nil")
	}
	if err := ValidatePermutation(perm, len(perm)); err != nil {
		return nil, err
	}
	cp := make([]int, len(perm))
	copy(cp, perm)
	p := &Permutation{perm: cp, costFn: costFn}
	p.Recompute()
	return p, nil
}

// Size returns n, the number of elements in the permutation.
func (p *Permutation) Size() int { return len(p.perm) }

// At returns the value stored at position i.
func (p *Permutation) At(i int) int { return p.perm[i] }

// Perm exposes the underlying ordering. Callers must not mutate the
// returned slice; use ApplySwap to change it.
func (p *Permutation) Perm() []int { return p.perm }

// Cost returns the cached objective value. It always equals a full
// recomputation up to floating point tolerance.
func (p *Permutation) Cost() float64 { return p.cost }

// Recompute forces a full recomputation of the cached cost via
// costFn.ComputeCost. Search engines never need to call this directly;
// it exists for tests that verify the incremental-update invariant and
// for the initial construction.
func (p *Permutation) Recompute() { p.cost = p.costFn.ComputeCost(p.perm) }

// EvaluateSwap returns the cost delta that ApplySwap(i, j) would apply,
// without mutating the permutation.
func (p *Permutation) EvaluateSwap(i, j int) float64 {
	return p.costFn.EvaluateSwap(p.perm, i, j)
}

// ApplySwap exchanges positions i and j and updates the cached cost by
// the delta EvaluateSwap already reported for that exchange.
func (p *Permutation) ApplySwap(i, j int) {
	delta := p.EvaluateSwap(i, j)
	p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	p.cost += delta
}

// ApplyInvert reverses the cyclic subsequence from position i to
// position j (inclusive, wrapping around the end of the permutation),
// updating the cached cost incrementally by repeated swaps.
func (p *Permutation) ApplyInvert(i, j int) {
	n := len(p.perm)
	span := j - i
	if i >= j {
		span = n + j - i
	}
	top := span + 1
	for k := 0; k != top/2; k++ {
		from := (i + k) % n
		to := (n + j - k) % n
		p.ApplySwap(from, to)
	}
}

// EvaluateInvert returns the cost delta ApplyInvert(i, j) would apply,
// without mutating the permutation. Positions are consumed and
// evaluated exactly as ApplyInvert would apply them, so it can only be
// called on the solution ApplyInvert would subsequently be applied to.
func (p *Permutation) EvaluateInvert(i, j int) float64 {
	n := len(p.perm)
	span := j - i
	if i >= j {
		span = n + j - i
	}
	top := span + 1
	total := 0.0
	scratch := make([]int, n)
	copy(scratch, p.perm)
	for k := 0; k != top/2; k++ {
		from := (i + k) % n
		to := (n + j - k) % n
		total += p.costFn.EvaluateSwap(scratch, from, to)
		scratch[from], scratch[to] = scratch[to], scratch[from]
	}
	return total
}

// Clone returns an independent copy sharing the same cost function.
func (p *Permutation) Clone() *Permutation {
	cp := make([]int, len(p.perm))
	copy(cp, p.perm)
	return &Permutation{perm: cp, cost: p.cost, costFn: p.costFn}
}

// CopyFrom overwrites the receiver's state with other's. If the two
// permutations differ in length, the receiver's slice is reallocated to
// other's length; the cost function is not copied (the receiver keeps
// its own).
func (p *Permutation) CopyFrom(other *Permutation) {
	if len(p.perm) != len(other.perm) {
		p.perm = make([]int, len(other.perm))
	}
	copy(p.perm, other.perm)
	p.cost = other.cost
}

// Shuffle randomizes the permutation in place via Fisher-Yates and
// recomputes the cached cost from scratch.
func (p *Permutation) Shuffle(rng *rand.Rand) {
	for i := len(p.perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	}
	p.Recompute()
}

// Perturb applies n random swaps of distinct positions, useful for
// generating a randomized starting point that is not the identity
// permutation but still fully validated through the incremental path.
func Perturb(p *Permutation, n int, rng *rand.Rand) {
	size := p.Size()
	for i := 0; i != n; i++ {
		a := rng.Intn(size)
		b := rng.Intn(size)
		for a == b {
			b = rng.Intn(size)
		}
		p.ApplySwap(a, b)
	}
}
