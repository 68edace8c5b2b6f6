package pipe

import "github.com/pipegrid/engine/grid"

// BuildDomain enumerates the pipes legal for the cell at index on an n×n
// grid: every base shape that does not open off the edge of the
// grid. A cell on row 0 may not open Up, on row n-1 may not open Down, on
// column 0 may not open Left, and on column n-1 may not open Right.
//
// The returned slice preserves BaseShapes' enumeration order among the
// surviving shapes, since that order is the one domain iteration and
// search variable ordering rely on for determinism.
func BuildDomain(index, n int) []Pipe {
	row, col := grid.RowCol(index, n)

	onTopEdge := row == 0
	onBottomEdge := row == n-1
	onLeftEdge := col == 0
	onRightEdge := col == n-1

	base := BaseShapes()
	domain := make([]Pipe, 0, len(base))
	for _, p := range base {
		if onTopEdge && p[grid.Up] {
			continue
		}
		if onBottomEdge && p[grid.Down] {
			continue
		}
		if onLeftEdge && p[grid.Left] {
			continue
		}
		if onRightEdge && p[grid.Right] {
			continue
		}
		domain = append(domain, p)
	}

	return domain
}
