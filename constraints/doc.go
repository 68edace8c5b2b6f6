// Package constraints implements the four interacting pipes-puzzle
// constraints on top of package csp's generic Variable/Constraint model,
// and wires a full n×n puzzle's variables and constraints together.
//
// What:
//
//   - Horizontal / Vertical: binary no-half-connections constraints
//     between orthogonally adjacent cells.
//   - NoCycles: a global, n²-scope constraint forbidding any cycle in the
//     confirmed-connection graph, with a pruner that cuts off would-be
//     cycles as soon as two assigned cells would converge on the same
//     unassigned neighbor.
//   - Connected: a global constraint requiring every cell be reachable
//     from cell 0, with a pruner built on a "pseudo-assignment"
//     over-approximation.
//   - Build: assembles the full set of variables and constraints for an
//     n×n puzzle into a *csp.CSP.
//
// Why:
//
//   - Keeping each constraint's validator and pruner together, built on
//     the same iterative, boundary-aware traversal over confirmed
//     connections, is what makes the solver's correctness arguments
//     checkable constraint-by-constraint.
package constraints
