package search

import (
	"math/rand"

	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/grid"
)

// selectVariable implements the Manhattan-distance-to-the-frontier
// heuristic: among every unassigned variable, pick the one
// closest to the frontier (the set of unassigned cells adjacent to an
// assigned one). Ties — including the F=∅ case, where every unassigned
// variable ties — are broken by enumeration order in deterministic mode
// (rng == nil) or uniform random choice otherwise. Returns nil once
// nothing is left unassigned.
func selectVariable(model *csp.CSP, byLocation []*csp.Variable, n int, rng *rand.Rand) *csp.Variable {
	unassigned := model.Unassigned()
	if len(unassigned) == 0 {
		return nil
	}

	candidates := closestToFrontier(unassigned, frontierOf(byLocation, n), n)
	if rng != nil {
		return candidates[rng.Intn(len(candidates))]
	}
	return candidates[0] // model.Unassigned() preserves registration order
}

// frontierOf returns the set of cell indices that are unassigned but
// adjacent to at least one assigned cell.
func frontierOf(byLocation []*csp.Variable, n int) map[int]bool {
	frontier := make(map[int]bool)
	for loc, v := range byLocation {
		if !v.IsAssigned() {
			continue
		}
		for _, d := range grid.Directions {
			nbr := grid.NeighborIn(loc, d, n)
			if nbr == grid.Sentinel || byLocation[nbr].IsAssigned() {
				continue
			}
			frontier[nbr] = true
		}
	}
	return frontier
}

// closestToFrontier returns every variable in unassigned whose Manhattan
// distance to the nearest frontier cell is minimal. If frontier is empty
// — nothing assigned yet — every unassigned variable ties.
func closestToFrontier(unassigned []*csp.Variable, frontier map[int]bool, n int) []*csp.Variable {
	if len(frontier) == 0 {
		return unassigned
	}

	frontierCells := make([][2]int, 0, len(frontier))
	for loc := range frontier {
		row, col := grid.RowCol(loc, n)
		frontierCells = append(frontierCells, [2]int{row, col})
	}

	var best []*csp.Variable
	bestDist := -1
	for _, v := range unassigned {
		row, col := grid.RowCol(v.Location(), n)
		dist := minManhattan(row, col, frontierCells)
		switch {
		case bestDist == -1 || dist < bestDist:
			bestDist, best = dist, []*csp.Variable{v}
		case dist == bestDist:
			best = append(best, v)
		}
	}
	return best
}

func minManhattan(row, col int, cells [][2]int) int {
	best := -1
	for _, c := range cells {
		d := abs(row-c[0]) + abs(col-c[1])
		if best == -1 || d < best {
			best = d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
