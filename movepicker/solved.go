package movepicker

import (
	"github.com/pipegrid/engine/constraints"
	"github.com/pipegrid/engine/pipe"
)

// IsSolved reports whether an n×n board already satisfies every pipes
// constraint (edge-matching, acyclic, fully connected). It checks the raw
// board directly rather than assigning it to a constraints.Build model,
// since a board mid-scramble may carry a shape outside a cell's original
// domain — which a csp.Variable.Assign would reject.
//
// Panics if len(board) != n*n.
func IsSolved(n int, board []pipe.Pipe) bool {
	if len(board) != n*n {
		panic("movepicker: IsSolved called with a board whose length does not match n*n")
	}
	return constraints.NoHalfConnectionsValid(board, n) &&
		constraints.NoCyclesValid(board) &&
		constraints.ConnectedValid(board)
}
