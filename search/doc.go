// Package search implements the backtracking solver of the engine: an
// iterative depth-first search over a stack of frames, a frontier-aware
// variable-ordering heuristic, interleaved AC-3 propagation, solution
// de-duplication, and an optional randomized mode.
//
// What:
//
//   - Generate runs the iterative search over a CSP the caller has built
//     (typically with constraints.Build) and returns its canonical
//     solution strings.
//   - Option configures the solution cap, deterministic vs. randomized
//     mode, and cooperative cancellation through functional options.
//
// Why an explicit engine struct instead of recursion:
//
//   - A dedicated walker struct holds all search state explicitly
//     (instead of closures), which both keeps the algorithm testable in
//     isolation and lets the DFS be iterative rather than recursive, so
//     the search tolerates n up to 25 without deep recursion.
package search
