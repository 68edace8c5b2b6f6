// Package pipe builds and encodes the opening vectors ("pipe shapes") used
// by the puzzle engine: the 14 rotation-broken shapes that remain once the
// two rotation-invariant vectors (no openings, all four openings) are
// excluded, the per-cell domain those shapes narrow down to once grid-edge
// constraints are applied, and the canonical string encoding that round
// trips a full assignment.
//
// What:
//
//   - Pipe: a [4]bool opening vector indexed by grid.Direction.
//   - BaseShapes: the 14 legal shapes in the fixed enumeration order
//     mandated by the external format.
//   - BuildDomain: narrows BaseShapes for one grid cell by removing shapes
//     that would open off the edge of the grid.
//   - Encode / Decode: the canonical "0101"-per-cell, row-major string
//     format used for solutions.
//
// Why:
//
//   - Keeping shape enumeration, domain construction and encoding in one
//     package means every other package (csp, constraints, search)
//     consumes pipe.Pipe as an opaque, already-validated value type.
package pipe
