package pipe_test

import (
	"testing"

	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

func TestBaseShapesExcludesInvariantShapes(t *testing.T) {
	shapes := pipe.BaseShapes()
	if len(shapes) != 14 {
		t.Fatalf("len(BaseShapes()) = %d, want 14", len(shapes))
	}
	for _, p := range shapes {
		count := p.Count()
		if count == 0 || count == grid.NumDirections {
			t.Errorf("shape %v has %d openings, want 1-3", p, count)
		}
	}
}

func TestBaseShapesEnumerationOrder(t *testing.T) {
	shapes := pipe.BaseShapes()
	want := []string{
		"1110", "1101", "1100", "1011", "1010", "1001", "1000",
		"0111", "0110", "0101", "0100", "0011", "0010", "0001",
	}
	for i, p := range shapes {
		if got := pipe.EncodeOne(p); got != want[i] {
			t.Errorf("shapes[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestBuildDomainCornerExcludesTwoEdges(t *testing.T) {
	const n = 4
	// Cell 0 is the top-left corner: no opening may face Up or Left.
	domain := pipe.BuildDomain(0, n)
	for _, p := range domain {
		if p[grid.Up] || p[grid.Left] {
			t.Errorf("corner domain contains %v with an Up/Left opening", p)
		}
	}
	if len(domain) == 0 {
		t.Fatalf("corner domain is empty")
	}
}

func TestBuildDomainInteriorKeepsAllShapes(t *testing.T) {
	const n = 5
	// Cell at row 2, col 2 (index 12) touches no edge.
	domain := pipe.BuildDomain(12, n)
	if len(domain) != 14 {
		t.Errorf("interior domain has %d shapes, want 14", len(domain))
	}
}

func TestCodecRoundTrip(t *testing.T) {
	assignment := pipe.BaseShapes()[:4]
	s := pipe.Encode(assignment)
	decoded, n, err := pipe.Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if len(decoded) != len(assignment) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(assignment))
	}
	for i := range assignment {
		if decoded[i] != assignment[i] {
			t.Errorf("decoded[%d] = %v, want %v", i, decoded[i], assignment[i])
		}
	}
	if pipe.Encode(decoded) != s {
		t.Errorf("re-encoding decoded assignment did not round-trip")
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	if _, _, err := pipe.Decode(""); err != pipe.ErrInvalidSize {
		t.Errorf("empty string: err = %v, want ErrInvalidSize", err)
	}
	if _, _, err := pipe.Decode("101"); err != pipe.ErrInvalidSize {
		t.Errorf("length not multiple of 4: err = %v, want ErrInvalidSize", err)
	}
	if _, _, err := pipe.Decode("10101010"); err != pipe.ErrInvalidSize {
		t.Errorf("length with no square cell count: err = %v, want ErrInvalidSize", err)
	}
	if _, _, err := pipe.Decode("2222101010101010"); err != pipe.ErrInvalidEncoding {
		t.Errorf("bad characters: err = %v, want ErrInvalidEncoding", err)
	}
}

func TestKindClassification(t *testing.T) {
	cases := []struct {
		p    pipe.Pipe
		want pipe.Kind
	}{
		{pipe.Pipe{grid.Up: true}, pipe.KindTerminus},
		{pipe.Pipe{grid.Up: true, grid.Down: true}, pipe.KindStraight},
		{pipe.Pipe{grid.Left: true, grid.Right: true}, pipe.KindStraight},
		{pipe.Pipe{grid.Up: true, grid.Right: true}, pipe.KindElbow},
		{pipe.Pipe{grid.Up: true, grid.Right: true, grid.Down: true}, pipe.KindTJunction},
	}
	for _, c := range cases {
		if got := c.p.Kind(); got != c.want {
			t.Errorf("Kind(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}
