package grid_test

import (
	"testing"

	"github.com/pipegrid/engine/grid"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range grid.Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) = %v, want %v", d, d.Opposite().Opposite(), d)
		}
	}
	if grid.Up.Opposite() != grid.Down {
		t.Errorf("Up.Opposite() = %v, want Down", grid.Up.Opposite())
	}
	if grid.Right.Opposite() != grid.Left {
		t.Errorf("Right.Opposite() = %v, want Left", grid.Right.Opposite())
	}
}

func TestRowColRoundTrip(t *testing.T) {
	const n = 5
	for i := 0; i < n*n; i++ {
		row, col := grid.RowCol(i, n)
		if got := grid.Index(row, col, n); got != i {
			t.Errorf("Index(RowCol(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestNeighborsNoWrapAround(t *testing.T) {
	const n = 3
	// Corner cell 0 (row 0, col 0): Up and Left must be Sentinel, never
	// wrap to the opposite edge.
	up, right, down, left := grid.Neighbors(0, n)
	if up != grid.Sentinel || left != grid.Sentinel {
		t.Errorf("corner cell 0: up=%d left=%d, want both Sentinel", up, left)
	}
	if right != 1 || down != n {
		t.Errorf("corner cell 0: right=%d down=%d, want 1 and %d", right, down, n)
	}

	// Bottom-right corner: Down and Right must be Sentinel.
	last := n*n - 1
	up, right, down, left = grid.Neighbors(last, n)
	if down != grid.Sentinel || right != grid.Sentinel {
		t.Errorf("corner cell %d: down=%d right=%d, want both Sentinel", last, down, right)
	}
	if up != last-n || left != last-1 {
		t.Errorf("corner cell %d: up=%d left=%d, want %d and %d", last, up, left, last-n, last-1)
	}
}

func TestNeighborInMatchesNeighbors(t *testing.T) {
	const n = 4
	for i := 0; i < n*n; i++ {
		up, right, down, left := grid.Neighbors(i, n)
		want := map[grid.Direction]int{grid.Up: up, grid.Right: right, grid.Down: down, grid.Left: left}
		for d, w := range want {
			if got := grid.NeighborIn(i, d, n); got != w {
				t.Errorf("NeighborIn(%d, %v, %d) = %d, want %d", i, d, n, got, w)
			}
		}
	}
}

func TestConnectsRequiresMutualOpening(t *testing.T) {
	center := grid.Openings{grid.Right: true}
	neighborIdx := [grid.NumDirections]int{grid.Up: grid.Sentinel, grid.Right: 1, grid.Down: grid.Sentinel, grid.Left: grid.Sentinel}

	// Neighbor faces back: connection holds.
	var facingBack [grid.NumDirections]grid.Openings
	facingBack[grid.Right] = grid.Openings{grid.Left: true}
	out := grid.Connects(center, neighborIdx, facingBack)
	if !out[grid.Right] {
		t.Errorf("expected Connects[Right]=true when neighbor faces back")
	}

	// Neighbor does not face back: half-connection, must not be reported.
	var closed [grid.NumDirections]grid.Openings
	closed[grid.Right] = grid.Openings{}
	out = grid.Connects(center, neighborIdx, closed)
	if out[grid.Right] {
		t.Errorf("expected Connects[Right]=false when neighbor does not face back")
	}
}

func TestConnectsIgnoresSentinelNeighbor(t *testing.T) {
	center := grid.Openings{grid.Up: true}
	neighborIdx := [grid.NumDirections]int{grid.Up: grid.Sentinel}
	var openings [grid.NumDirections]grid.Openings
	out := grid.Connects(center, neighborIdx, openings)
	if out[grid.Up] {
		t.Errorf("expected no connection across a grid boundary")
	}
}
