// Package pipegrid is the public entry point of a pipes-puzzle
// constraint-satisfaction engine: it wires the domain builder, the CSP
// model, the four interacting constraints, and the backtracking search
// into one call that returns valid n×n solutions as canonical strings.
//
// Under the hood, the engine is organized into focused subpackages:
//
//	grid/        — cardinal directions, cell indexing, opening/connection checks
//	pipe/        — pipe shapes, boundary-aware domains, canonical encoding
//	csp/         — variables, constraints, and the AC-3/GAC propagation engine
//	constraints/ — the four pipes-puzzle constraints and their wiring into a CSP
//	search/      — the iterative backtracking search with a frontier heuristic
//	movepicker/  — the human-move oracle loop used once a board is in play
//
// Generate is the simplest way to use the engine:
//
//	solution, err := pipegrid.Generate(4)
//	if err != nil {
//		// no 4×4 solution exists under the current constraint set, or the
//		// search was canceled
//	}
//
// Generate forwards search options such as search.WithRandom and
// search.WithContext, but always caps the search at one solution. Callers
// needing multiple solutions or a different solution cap should call
// constraints.Build and search.Generate directly; pipegrid.Generate is a
// thin convenience wrapper around exactly that pair of calls.
package pipegrid
