package constraints

import (
	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

// neighborOpeningsOf gathers cell index's four neighbor indices and the
// Openings of each neighboring pipe in pipes; a direction whose neighbor is
// Sentinel gets the zero Openings value.
func neighborOpeningsOf(pipes []pipe.Pipe, n, index int) ([grid.NumDirections]int, [grid.NumDirections]grid.Openings) {
	up, right, down, left := grid.Neighbors(index, n)
	idx := [grid.NumDirections]int{grid.Up: up, grid.Right: right, grid.Down: down, grid.Left: left}

	var openings [grid.NumDirections]grid.Openings
	for _, d := range grid.Directions {
		if idx[d] != grid.Sentinel {
			openings[d] = pipes[idx[d]].Openings()
		}
	}
	return idx, openings
}

// confirmedConnections returns the mutually-confirmed connection
// directions for the cell at index, given a full array of pipes (one per
// cell, row-major). Used both by the no-cycles/connected validators
// (applied to a real, total assignment) and by the connected pruner
// (applied to a pseudo-assignment).
func confirmedConnections(pipes []pipe.Pipe, n, index int) grid.Openings {
	idx, openings := neighborOpeningsOf(pipes, n, index)
	return grid.Connects(pipes[index].Openings(), idx, openings)
}

// pseudoAssignment builds the "best possible" completion of the current
// partial assignment:
// assigned variables supply their assigned pipe, unassigned variables
// supply the direction-wise OR of their active domain.
func pseudoAssignment(scope []*csp.Variable) []pipe.Pipe {
	out := make([]pipe.Pipe, len(scope))
	for i, v := range scope {
		if v.IsAssigned() {
			out[i] = v.Assignment()
			continue
		}
		var best pipe.Pipe
		for _, p := range v.ActiveDomain() {
			for _, d := range grid.Directions {
				if p[d] {
					best[d] = true
				}
			}
		}
		out[i] = best
	}
	return out
}

// gridSizeOf returns the grid size implied by a global (n²-scope)
// constraint's variable count, as computed by gridSizeFromCount.
func gridSizeOf(scope []*csp.Variable) int {
	return gridSizeFromCount(len(scope))
}

// gridSizeFromCount returns the smallest n with n*n >= count, which is
// exactly sqrt(count) when count is a perfect square.
func gridSizeFromCount(count int) int {
	n := 0
	for n*n < count {
		n++
	}
	return n
}
