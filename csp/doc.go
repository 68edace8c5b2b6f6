// Package csp implements the variable/constraint/CSP model and the AC-3 /
// GAC propagation engine used to solve a pipes puzzle, independent of any
// particular constraint's logic (those live in package constraints) or
// search strategy (package search).
//
// What:
//
//   - Variable: one grid cell's full domain, active domain, and optional
//     assignment.
//   - Constraint: a name, an ordered scope of variables, a Validator and
//     a Pruner.
//   - CSP: the variables, constraints, and a variable→constraints index
//     built once per puzzle.
//   - Propagate: the AC-3 worklist loop that drives pruners to a
//     fixpoint, recording every removal into a []Removal log the caller
//     can pass to Undo.
//
// Why:
//
//   - Keeping the propagation engine generic over Constraint lets every
//     concrete constraint in package constraints plug in without csp
//     knowing anything about pipes, half-connections, cycles, or
//     connectivity.
//
// Errors:
//
//   - Assigning a value outside a Variable's domain, or reading an
//     assignment that is not set, is a programmer error: csp panics
//     rather than returning an error.
package csp
