package constraints

import (
	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

// Connected builds the global connectivity constraint over every cell of
// an n×n grid.
func Connected(scope []*csp.Variable) *csp.Constraint {
	return csp.NewConstraint("connected", scope, ConnectedValid, connectedPrune)
}

// ConnectedValid reports whether every cell is reachable from cell 0
// via confirmed connections. Implemented as an iterative BFS (a plain
// FIFO queue has no recursion depth to worry about, unlike the no-cycles
// DFS, but is kept explicit and iterative for the same reason: n may be
// as large as 25).
func ConnectedValid(assignments []pipe.Pipe) bool {
	n := gridSizeFromCount(len(assignments))
	visited := make([]bool, len(assignments))
	visited[0] = true
	queue := []int{0}
	count := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		conn := confirmedConnections(assignments, n, cur)
		for _, d := range grid.Directions {
			if !conn[d] {
				continue
			}
			nbr := grid.NeighborIn(cur, d, n)
			if nbr == grid.Sentinel || visited[nbr] {
				continue
			}
			visited[nbr] = true
			count++
			queue = append(queue, nbr)
		}
	}

	return count == len(assignments)
}

// connectedPrune prunes against the pseudo-assignment over-approximation:
// if even the most optimistic completion of the current partial assignment
// cannot connect the board, force a backtrack; otherwise tighten the
// domains along any dead-end walks the over-approximation exposes.
func connectedPrune(scope []*csp.Variable) []csp.Removal {
	n := gridSizeOf(scope)
	pseudo := pseudoAssignment(scope)

	if !ConnectedValid(pseudo) {
		// The partial assignment cannot be extended to a connected
		// solution even under the most optimistic completion. Force
		// backtracking by wiping the active domain of the first
		// unassigned variable encountered in scope order, so the choice
		// is reproducible across runs.
		for _, v := range scope {
			if v.IsAssigned() {
				continue
			}
			var out []csp.Removal
			for _, p := range append([]pipe.Pipe(nil), v.ActiveDomain()...) {
				if idx, removed := v.Prune(p); removed {
					out = append(out, csp.Removal{Variable: v, Value: p, Index: idx})
				}
			}
			return out
		}
		return nil
	}

	return pruneDeadEnds(scope, pseudo, n)
}

// pruneDeadEnds finds, under the pseudo-assignment pseudo, every walk that
// starts at a degree-1 cell and follows a chain of degree-2 cells; every
// unassigned variable along such a walk must keep the opening facing back
// the way the walk came from, or it would dangle.
func pruneDeadEnds(scope []*csp.Variable, pseudo []pipe.Pipe, n int) []csp.Removal {
	degree := make([]int, len(pseudo))
	conn := make([]grid.Openings, len(pseudo))
	for i := range pseudo {
		conn[i] = confirmedConnections(pseudo, n, i)
		for _, d := range grid.Directions {
			if conn[i][d] {
				degree[i]++
			}
		}
	}

	var out []csp.Removal
	for start, deg := range degree {
		if deg != 1 {
			continue
		}

		prev := start
		cur, cameFromDir := singleConnectedNeighbor(conn[start], prev, n)
		for cur != grid.Sentinel && degree[cur] == 2 {
			if !scope[cur].IsAssigned() {
				out = append(out, requireOpening(scope[cur], cameFromDir)...)
			}

			next := grid.Sentinel
			var nextCameFromDir grid.Direction
			for _, d := range grid.Directions {
				if !conn[cur][d] {
					continue
				}
				if d == cameFromDir {
					continue
				}
				next = grid.NeighborIn(cur, d, n)
				nextCameFromDir = d.Opposite()
			}
			if next == prev {
				// Pure two-cell loop back on itself; stop rather than
				// spinning forever.
				break
			}
			prev, cur, cameFromDir = cur, next, nextCameFromDir
		}
	}
	return out
}

// singleConnectedNeighbor returns the one neighbor a degree-1 cell
// connects to, and the direction (as seen from that neighbor, i.e. the
// direction the walk arrives from) used to reach it.
func singleConnectedNeighbor(conn grid.Openings, cell, n int) (neighbor int, cameFromDir grid.Direction) {
	for _, d := range grid.Directions {
		if conn[d] {
			return grid.NeighborIn(cell, d, n), d.Opposite()
		}
	}
	return grid.Sentinel, 0
}

// requireOpening prunes every pipe from v's active domain that does not
// open toward dir.
func requireOpening(v *csp.Variable, dir grid.Direction) []csp.Removal {
	var out []csp.Removal
	for _, p := range append([]pipe.Pipe(nil), v.ActiveDomain()...) {
		if !p[dir] {
			if idx, removed := v.Prune(p); removed {
				out = append(out, csp.Removal{Variable: v, Value: p, Index: idx})
			}
		}
	}
	return out
}
