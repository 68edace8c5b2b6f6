package pipe

import "github.com/pipegrid/engine/grid"

// Pipe is a 4-tuple of booleans indexed by grid.Direction: entry d is true
// iff the pipe exposes an opening on side d. A Pipe with zero or four
// openings is rotation-invariant and never appears in any domain.
type Pipe [grid.NumDirections]bool

// Openings views p as a grid.Openings value for use with grid.Connects.
func (p Pipe) Openings() grid.Openings {
	return grid.Openings(p)
}

// Count returns the number of openings the pipe exposes.
func (p Pipe) Count() int {
	n := 0
	for _, open := range p {
		if open {
			n++
		}
	}
	return n
}

// Kind classifies a pipe's shape, purely for presentation; the solver
// itself never branches on Kind.
type Kind int

const (
	// KindInvalid marks a pipe with 0 or 4 openings, which never appears
	// in a built domain.
	KindInvalid Kind = iota
	// KindTerminus has exactly one opening.
	KindTerminus
	// KindElbow has two openings on adjacent (non-opposite) sides.
	KindElbow
	// KindStraight has two openings on opposite sides.
	KindStraight
	// KindTJunction has three openings.
	KindTJunction
)

// Kind classifies the pipe's shape.
func (p Pipe) Kind() Kind {
	switch p.Count() {
	case 1:
		return KindTerminus
	case 3:
		return KindTJunction
	case 2:
		if p[grid.Up] && p[grid.Down] || p[grid.Left] && p[grid.Right] {
			return KindStraight
		}
		return KindElbow
	default:
		return KindInvalid
	}
}

// baseOrder is the fixed enumeration order of the 14 legal pipe shapes.
// Each string is "Up Right Down Left" in '1'/'0'
// characters. Implementations MUST iterate domains in this order whenever
// determinism matters.
var baseOrder = [...]string{
	"1110", "1101", "1100", "1011", "1010", "1001", "1000",
	"0111", "0110", "0101", "0100", "0011", "0010", "0001",
}

// BaseShapes is the ordered slice of the 14 rotation-broken pipe shapes
// (all [4]bool combinations except all-true and all-false), in the
// canonical enumeration order. It is rebuilt on every call so
// that callers can never mutate the package-level source of truth.
func BaseShapes() []Pipe {
	shapes := make([]Pipe, len(baseOrder))
	for i, s := range baseOrder {
		shapes[i] = mustParseOpenings(s)
	}
	return shapes
}

// mustParseOpenings parses a 4-character "0"/"1" string in Up, Right,
// Down, Left order into a Pipe. Panics on malformed input: baseOrder is a
// package-internal literal and any malformation there is a programmer
// error, never a runtime condition.
func mustParseOpenings(s string) Pipe {
	if len(s) != grid.NumDirections {
		panic("pipe: malformed base shape literal: " + s)
	}
	var p Pipe
	for i, c := range s {
		switch c {
		case '1':
			p[i] = true
		case '0':
			p[i] = false
		default:
			panic("pipe: malformed base shape literal: " + s)
		}
	}
	return p
}
