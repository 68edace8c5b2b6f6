package constraints_test

import (
	"testing"

	"github.com/pipegrid/engine/constraints"
	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

// solvedTwoByTwo is a 2×2 solution whose connection graph is a tree:
// cell0=Right+Down, cell1=Left, cell2=Up+Right, cell3=Left — three edges
// over four cells, all mutual, nothing dangling.
func solvedTwoByTwo() []pipe.Pipe {
	return []pipe.Pipe{
		{grid.Right: true, grid.Down: true},
		{grid.Left: true},
		{grid.Up: true, grid.Right: true},
		{grid.Left: true},
	}
}

func assignAll(model *csp.CSP, values []pipe.Pipe) {
	for i, v := range model.Variables {
		v.Assign(values[i])
	}
}

func TestSolvedTwoByTwoPassesAllValidators(t *testing.T) {
	model, err := constraints.Build(2)
	if err != nil {
		t.Fatalf("Build(2): %v", err)
	}
	assignAll(model, solvedTwoByTwo())

	if !model.ValidateAll() {
		t.Fatalf("solved 2x2 assignment should pass every constraint")
	}
}

func TestRotatingCellBreaksHalfConnection(t *testing.T) {
	values := solvedTwoByTwo()
	// Rotate cell 0 half a turn: Right+Down becomes Up+Left, a shape cell
	// 0's top-left corner domain does not contain, so the check runs on the
	// raw board.
	values[0] = pipe.Pipe{grid.Up: true, grid.Left: true}

	if constraints.NoHalfConnectionsValid(values, 2) {
		t.Fatalf("rotated cell 0 should break no-half-connections with cell 1")
	}
}

func TestPropagateOnSolvedAssignmentPrunesNothing(t *testing.T) {
	model, err := constraints.Build(2)
	if err != nil {
		t.Fatalf("Build(2): %v", err)
	}
	assignAll(model, solvedTwoByTwo())

	log, wiped := model.Propagate(model.Constraints)
	if wiped {
		t.Fatalf("propagation on a solved assignment reported a wipeout")
	}
	if len(log) != 0 {
		t.Fatalf("propagation on a solved assignment removed %d values, want 0", len(log))
	}
}

func TestBuildRejectsTooSmallGrid(t *testing.T) {
	if _, err := constraints.Build(1); err != constraints.ErrGridTooSmall {
		t.Errorf("Build(1): err = %v, want ErrGridTooSmall", err)
	}
}

func TestNoHalfConnectionsPrunesUnassignedPartner(t *testing.T) {
	model, err := constraints.Build(2)
	if err != nil {
		t.Fatalf("Build(2): %v", err)
	}
	a, b := model.Variables[0], model.Variables[1]
	a.Assign(pipe.Pipe{grid.Right: true, grid.Down: true})

	_, wiped := model.Propagate(model.ConstraintsFor(a))
	if wiped {
		t.Fatalf("unexpected wipeout")
	}
	for _, p := range b.ActiveDomain() {
		if !p[grid.Left] {
			t.Errorf("b's active domain still has a pipe without a Left opening: %v", p)
		}
	}
}

func TestNoCyclesRejectsASimpleLoop(t *testing.T) {
	model, err := constraints.Build(2)
	if err != nil {
		t.Fatalf("Build(2): %v", err)
	}
	// Every cell opens toward both its in-grid neighbors: this closes the
	// 4-cycle around the 2x2 grid.
	loop := []pipe.Pipe{
		{grid.Right: true, grid.Down: true},
		{grid.Left: true, grid.Down: true},
		{grid.Right: true, grid.Up: true},
		{grid.Left: true, grid.Up: true},
	}
	assignAll(model, loop)
	if model.ValidateAll() {
		t.Fatalf("a closed 4-cycle should be rejected by no-cycles")
	}
}

func TestConnectedRejectsDisconnectedAssignment(t *testing.T) {
	model, err := constraints.Build(2)
	if err != nil {
		t.Fatalf("Build(2): %v", err)
	}
	// Two isolated terminus pairs that do not connect to each other.
	disconnected := []pipe.Pipe{
		{grid.Right: true},
		{grid.Left: true},
		{grid.Right: true},
		{grid.Left: true},
	}
	assignAll(model, disconnected)
	if model.ValidateAll() {
		t.Fatalf("two disjoint pairs should be rejected by connected")
	}
}

func TestConnectedPrunerForcesBacktrackWhenUnreachable(t *testing.T) {
	model, err := constraints.Build(3)
	if err != nil {
		t.Fatalf("Build(3): %v", err)
	}

	// Cut the grid between column 1 and column 2: no surviving pipe in
	// either column can open toward the other, so no completion can ever
	// connect the two halves.
	column1 := []int{1, 4, 7}
	column2 := []int{2, 5, 8}
	for _, i := range column1 {
		v := model.Variables[i]
		for _, p := range append([]pipe.Pipe(nil), v.ActiveDomain()...) {
			if p[grid.Right] {
				v.Prune(p)
			}
		}
	}
	for _, i := range column2 {
		v := model.Variables[i]
		for _, p := range append([]pipe.Pipe(nil), v.ActiveDomain()...) {
			if p[grid.Left] {
				v.Prune(p)
			}
		}
	}

	var connected *csp.Constraint
	for _, c := range model.Constraints {
		if c.Name == "connected" {
			connected = c
		}
	}
	if connected == nil {
		t.Fatalf("Build(3) did not register a connected constraint")
	}

	connected.Prune()
	if len(model.Variables[0].ActiveDomain()) != 0 {
		t.Fatalf("expected connected's pruner to wipe variable 0's active domain, got %d values left",
			len(model.Variables[0].ActiveDomain()))
	}
}
