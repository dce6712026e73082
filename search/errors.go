// Package search implements the three core search engines — Tabu
// Search, Simulated Annealing, and neighborhood-descent Local Search —
// wired on top of the move, tabu, aspiration, recorder, termination and
// observer packages.
package search

import "errors"

// ErrNoAdmissibleMove is returned by TabuSearch.Search when a
// refreshed neighborhood contains no move that is either non-tabu or
// aspiration-cleared. The working solution is left exactly as it was
// before the iteration that discovered the empty neighborhood.
var ErrNoAdmissibleMove = errors.New("search: no admissible move in current neighborhood")
