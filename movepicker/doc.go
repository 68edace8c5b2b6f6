// Package movepicker implements the human-move oracle loop: encode a
// board, ask an injected scoring Oracle to rank candidate moves, skip
// whatever a per-board memo already tried, and hand back the first fresh
// candidate. IsSolved re-checks a board against the same four validators
// package constraints uses for search.
//
// What:
//
//   - Oracle is the injectable scoring function — equal inputs must yield
//     equal outputs within one process lifetime, since Pick's memo keys
//     off a board fingerprint.
//   - Pick ranks an oracle's scores descending, skips memoized ranks for
//     this board, and returns the first fresh one.
//   - IsSolved reports whether a fully-populated board already satisfies
//     every constraint, reusing constraints.NoHalfConnectionsValid,
//     constraints.NoCyclesValid, and constraints.ConnectedValid directly
//     on the raw board (not through a csp.Variable), since a board
//     mid-scramble may carry shapes outside any cell's original domain.
//
// The Oracle is an injectable interface rather than a hardcoded model so
// that deterministic stubs can stand in for the learned scorer in tests.
package movepicker
