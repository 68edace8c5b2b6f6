package movepicker

import (
	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

// Oracle is the injectable scoring function driving move selection: given
// a board encoded as EncodeBoard does, it returns a score of the same
// length, one entry per opening. Score's semantics are entirely up to the
// oracle; Pick treats the result only as a ranking. Implementations must
// be deterministic for a given process lifetime — Pick's memoization
// assumes equal boards always score identically.
type Oracle interface {
	Score(board []int) ([]float64, error)
}

// EncodeBoard flattens an n²-cell board into a flat integer vector of
// length 4·n², one 0/1 entry per cell opening in Up, Right, Down, Left
// order, cells in row-major order — the same layout as pipe.Encode, just
// rendered as ints instead of characters.
func EncodeBoard(board []pipe.Pipe) []int {
	out := make([]int, 0, grid.NumDirections*len(board))
	for _, p := range board {
		for _, d := range grid.Directions {
			if p[d] {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}
