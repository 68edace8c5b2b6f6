package constraints

import (
	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

// NoCycles builds the global no-cycles constraint over every cell of an
// n×n grid.
func NoCycles(scope []*csp.Variable) *csp.Constraint {
	return csp.NewConstraint("no-cycles", scope, NoCyclesValid, noCyclesPrune)
}

// NoCyclesValid treats the full assignment as an undirected graph of
// confirmed connections and rejects it if that graph contains any cycle.
// Traversal starts at cell 0, then continues into
// any other component an earlier component did not reach, so that the
// whole graph — not just cell 0's component — is checked.
//
// Implemented iteratively (an explicit stack of (cell, parent, direction
// cursor) frames) rather than recursively, since n may be as large as 25
// and a 625-cell walk should not lean on the goroutine stack.
func NoCyclesValid(assignments []pipe.Pipe) bool {
	n := gridSizeFromCount(len(assignments))
	visited := make([]bool, len(assignments))

	type frame struct {
		cell, parent int
		cursor       int
	}

	visitFrom := func(start int) bool {
		stack := []frame{{cell: start, parent: grid.Sentinel, cursor: 0}}
		visited[start] = true

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			conn := confirmedConnections(assignments, n, top.cell)

			advanced := false
			for top.cursor < grid.NumDirections {
				d := grid.Directions[top.cursor]
				top.cursor++
				if !conn[d] {
					continue
				}
				nbr := grid.NeighborIn(top.cell, d, n)
				if nbr == top.parent {
					// Skip the trivial back-edge to our own parent; it is
					// not a cycle, just the edge we arrived through.
					continue
				}
				if visited[nbr] {
					// A confirmed edge to an already-visited, non-parent
					// cell is a back-edge: a cycle exists.
					return false
				}
				visited[nbr] = true
				stack = append(stack, frame{cell: nbr, parent: top.cell, cursor: 0})
				advanced = true
				break
			}
			if !advanced && top.cursor >= grid.NumDirections {
				stack = stack[:len(stack)-1]
			}
		}
		return true
	}

	if !visitFrom(0) {
		return false
	}
	for i := range assignments {
		if !visited[i] {
			if !visitFrom(i) {
				return false
			}
		}
	}
	return true
}

// noCyclesPrune cuts off would-be cycles before they close: for
// every assigned cell, trace its outgoing openings (not yet requiring the
// neighbor to reciprocate). If two distinct assigned cells' openings point
// at the same neighbor cell, any pipe in the neighbor's active domain that
// opens on *both* of those incoming directions is pruned. The pruner does
// not check whether the two source cells are already joined through other
// connections, so it also prunes shapes that would only link them; on a
// 2×2 grid this removes two of the four cycle-free solutions.
//
// The scan stops at the first such conflict in scope order and returns
// that conflict's removals, even when they are empty (the neighbor is
// assigned, or its offending shapes are already pruned). A re-invocation
// by the AC-3 worklist meets the same first conflict again, so later
// conflicts are never examined while the first one persists.
func noCyclesPrune(scope []*csp.Variable) []csp.Removal {
	n := gridSizeOf(scope)
	touchedBy := make(map[int]int, len(scope)) // neighbor index -> source cell index

	for _, v := range scope {
		if !v.IsAssigned() {
			continue
		}
		p := v.Assignment()
		for _, d := range grid.Directions {
			if !p[d] {
				continue
			}
			nbr := grid.NeighborIn(v.Location(), d, n)
			if nbr == grid.Sentinel {
				continue
			}
			if source, ok := touchedBy[nbr]; ok {
				if source == v.Location() {
					continue
				}
				return pruneConvergence(scope, source, v.Location(), nbr, n)
			}
			touchedBy[nbr] = v.Location()
		}
	}
	return nil
}

// pruneConvergence prunes every pipe in the active domain of the cell at
// neighbor that opens toward both source cells a and b — the shape that
// would close the cycle a-neighbor-b.
func pruneConvergence(scope []*csp.Variable, a, b, neighbor, n int) []csp.Removal {
	target := scope[neighbor]
	if target.IsAssigned() {
		return nil
	}

	dirFrom := func(from, to int) grid.Direction {
		for _, d := range grid.Directions {
			if grid.NeighborIn(from, d, n) == to {
				return d.Opposite()
			}
		}
		panic("constraints: no-cycles pruner: cells are not adjacent")
	}
	dirA := dirFrom(a, neighbor)
	dirB := dirFrom(b, neighbor)

	var out []csp.Removal
	for _, p := range append([]pipe.Pipe(nil), target.ActiveDomain()...) {
		if p[dirA] && p[dirB] {
			if idx, removed := target.Prune(p); removed {
				out = append(out, csp.Removal{Variable: target, Value: p, Index: idx})
			}
		}
	}
	return out
}
