// Package solution defines the capability-set contracts a solution type
// must satisfy to take part in a search, plus a ready-to-use permutation
// skeleton for problems whose state is an ordering of {0,...,n-1}.
//
// The original design relied on downcasting a base "feasible solution"
// interface to progressively richer capabilities (evaluable, permutation).
// Here each capability is a small Go interface and callers compose the
// ones they need as generic type parameter bounds, so a solution/engine
// mismatch is a compile error rather than a failed runtime downcast.
package solution

// Solution is the minimal capability every participant in a search
// exposes: a finite cost to be minimized.
type Solution interface {
	Cost() float64
}
