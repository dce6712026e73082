package move

// Manager owns the candidate moves considered by a search engine at
// each iteration. Refresh is called exactly once per engine iteration,
// before Candidates is read; between two calls to Refresh the slice
// returned by Candidates must have a stable iteration order (the
// engines rely on "first wins" tie-breaking).
type Manager[S any, M Move[S]] interface {
	// Refresh repopulates or re-parameterizes the candidate set given
	// the current solution. Static neighborhoods implement this as a
	// no-op.
	Refresh(s S)
	// Candidates returns the current neighborhood in iteration order.
	// Implementations that own their move tokens (e.g. a stochastic
	// manager reusing the same underlying slots across refreshes) may
	// return the same backing array on every call; callers must not
	// assume individual move identity survives a Refresh.
	Candidates() []M
}
