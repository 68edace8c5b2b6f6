package constraints

import (
	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

// Horizontal builds the no-half-connections constraint between a cell and
// its right-hand neighbor: left.opening[Right] must equal
// right.opening[Left].
func Horizontal(left, right *csp.Variable) *csp.Constraint {
	return csp.NewConstraint("no-half-connections-h", []*csp.Variable{left, right},
		func(assignments []pipe.Pipe) bool {
			return assignments[0][grid.Right] == assignments[1][grid.Left]
		},
		func(scope []*csp.Variable) []csp.Removal {
			return pruneFacing(scope[0], scope[1], grid.Right, grid.Left)
		},
	)
}

// Vertical builds the no-half-connections constraint between a cell and
// its neighbor below: top.opening[Down] must equal
// bottom.opening[Up].
func Vertical(top, bottom *csp.Variable) *csp.Constraint {
	return csp.NewConstraint("no-half-connections-v", []*csp.Variable{top, bottom},
		func(assignments []pipe.Pipe) bool {
			return assignments[0][grid.Down] == assignments[1][grid.Up]
		},
		func(scope []*csp.Variable) []csp.Removal {
			return pruneFacing(scope[0], scope[1], grid.Down, grid.Up)
		},
	)
}

// NoHalfConnectionsValid checks every horizontal and vertical adjacent
// pair of an n×n board directly against its raw openings,
// without requiring a csp.Variable or domain membership — used by
// movepicker.IsSolved, which must also accept boards whose cells carry
// shapes outside their original domain (e.g. after an external rotation).
func NoHalfConnectionsValid(board []pipe.Pipe, n int) bool {
	for i, p := range board {
		row, col := grid.RowCol(i, n)
		if col+1 < n && p[grid.Right] != board[grid.Index(row, col+1, n)][grid.Left] {
			return false
		}
		if row+1 < n && p[grid.Down] != board[grid.Index(row+1, col, n)][grid.Up] {
			return false
		}
	}
	return true
}

// pruneFacing implements the shared half-of-a-binary-pair pruning rule: if
// exactly one of a, b is assigned, every value in the unassigned partner's
// active domain whose facing-side opening disagrees with the assigned
// side's opening is pruned. If both or neither are assigned, nothing is
// pruned.
func pruneFacing(a, b *csp.Variable, aSide, bSide grid.Direction) []csp.Removal {
	switch {
	case a.IsAssigned() && !b.IsAssigned():
		return pruneUnfacing(b, bSide, a.Assignment()[aSide])
	case b.IsAssigned() && !a.IsAssigned():
		return pruneUnfacing(a, aSide, b.Assignment()[bSide])
	default:
		return nil
	}
}

// pruneUnfacing removes every pipe from v's active domain whose opening on
// side does not equal required.
func pruneUnfacing(v *csp.Variable, side grid.Direction, required bool) []csp.Removal {
	var out []csp.Removal
	for _, p := range append([]pipe.Pipe(nil), v.ActiveDomain()...) {
		if p[side] != required {
			if idx, removed := v.Prune(p); removed {
				out = append(out, csp.Removal{Variable: v, Value: p, Index: idx})
			}
		}
	}
	return out
}
