package search

import "fmt"

// TabuConfig bundles the numeric knobs of a Tabu Search run that a
// caller typically wants to load from a config file, mirroring the
// teacher's ts.Config/DefaultConfig/Validate trio.
type TabuConfig struct {
	// TabuCapacity is the size of the tabu memory (K > 0).
	TabuCapacity int
}

// DefaultTabuConfig returns the package's baseline Tabu Search
// configuration.
func DefaultTabuConfig() TabuConfig {
	return TabuConfig{TabuCapacity: 20}
}

// Validate checks TabuConfig's invariants.
func (c TabuConfig) Validate() error {
	if c.TabuCapacity <= 0 {
		return fmt.Errorf("search: TabuCapacity must be > 0 (got %d)", c.TabuCapacity)
	}
	return nil
}

// AnnealingConfig bundles the numeric knobs of a Simulated Annealing
// run, mirroring the teacher's sa.Config/DefaultConfig/Validate trio.
type AnnealingConfig struct {
	// TStart is the starting temperature (> TStop).
	TStart float64
	// TStop is the floor temperature at which the search halts even if
	// the termination chain has not fired (> 0).
	TStop float64
	// K is the Boltzmann constant used in the acceptance probability.
	K float64
}

// DefaultAnnealingConfig returns the package's baseline Simulated
// Annealing configuration.
func DefaultAnnealingConfig() AnnealingConfig {
	return AnnealingConfig{TStart: 2000.0, TStop: 0.5, K: 1.0}
}

// Validate checks AnnealingConfig's invariants: T_start > T_stop > 0
// and K > 0, promoted to a construction-time error per this module's
// redesign of the degenerate "zero iterations" boundary case.
func (c AnnealingConfig) Validate() error {
	if c.TStop <= 0 {
		return fmt.Errorf("search: TStop must be > 0 (got %f)", c.TStop)
	}
	if c.TStart <= c.TStop {
		return fmt.Errorf("search: TStart must be > TStop (got %f <= %f)", c.TStart, c.TStop)
	}
	if c.K <= 0 {
		return fmt.Errorf("search: K must be > 0 (got %f)", c.K)
	}
	return nil
}

// LocalSearchConfig exists for symmetry with the other two engines and
// future extension; the neighborhood-descent engine currently takes no
// tunable parameters of its own beyond its termination chain.
type LocalSearchConfig struct{}

// DefaultLocalSearchConfig returns the (empty) baseline configuration.
func DefaultLocalSearchConfig() LocalSearchConfig { return LocalSearchConfig{} }

// Validate always succeeds; kept for interface parity with the other
// engine configs.
func (LocalSearchConfig) Validate() error { return nil }
