package pipe

import (
	"math"
	"strings"

	"github.com/pipegrid/engine/grid"
)

// EncodeOne renders a single pipe as four "0"/"1" characters in Up,
// Right, Down, Left order.
func EncodeOne(p Pipe) string {
	var b strings.Builder
	b.Grow(grid.NumDirections)
	for _, d := range grid.Directions {
		if p[d] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// DecodeOne parses a single 4-character "0"/"1" pipe encoding. Returns
// ErrInvalidEncoding for anything else.
func DecodeOne(s string) (Pipe, error) {
	if len(s) != grid.NumDirections {
		return Pipe{}, ErrInvalidEncoding
	}
	var p Pipe
	for i := 0; i < grid.NumDirections; i++ {
		switch s[i] {
		case '1':
			p[i] = true
		case '0':
			p[i] = false
		default:
			return Pipe{}, ErrInvalidEncoding
		}
	}
	return p, nil
}

// Encode concatenates the row-major encoding of every cell in assignment
// into a canonical solution string of length 4*len(assignment).
// assignment[i] must hold the pipe for cell i.
func Encode(assignment []Pipe) string {
	var b strings.Builder
	b.Grow(grid.NumDirections * len(assignment))
	for _, p := range assignment {
		b.WriteString(EncodeOne(p))
	}
	return b.String()
}

// Decode parses a canonical solution string into its per-cell pipes and
// recovers n as sqrt(len(s)/4). Returns ErrInvalidSize unless
// len(s) equals 4*n*n for some positive integer n, and
// ErrInvalidEncoding if any 4-character block is malformed.
func Decode(s string) ([]Pipe, int, error) {
	if len(s) == 0 || len(s)%grid.NumDirections != 0 {
		return nil, 0, ErrInvalidSize
	}
	cellCount := len(s) / grid.NumDirections
	n := int(math.Round(math.Sqrt(float64(cellCount))))
	if n*n != cellCount {
		return nil, 0, ErrInvalidSize
	}

	assignment := make([]Pipe, cellCount)
	for i := 0; i < cellCount; i++ {
		p, err := DecodeOne(s[i*grid.NumDirections : (i+1)*grid.NumDirections])
		if err != nil {
			return nil, 0, err
		}
		assignment[i] = p
	}

	return assignment, n, nil
}
