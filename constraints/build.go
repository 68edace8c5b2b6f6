package constraints

import (
	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/grid"
	"github.com/pipegrid/engine/pipe"
)

// Build assembles the full variable and constraint set for an n×n puzzle:
// one Variable per cell with its edge-aware domain, a
// Horizontal and Vertical no-half-connections constraint per adjacent
// pair, and the global NoCycles and Connected constraints.
func Build(n int) (*csp.CSP, error) {
	if n < 2 {
		return nil, ErrGridTooSmall
	}

	variables := make([]*csp.Variable, n*n)
	for i := range variables {
		variables[i] = csp.NewVariable(i, pipe.BuildDomain(i, n))
	}

	var all []*csp.Constraint
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			i := grid.Index(row, col, n)
			if col+1 < n {
				all = append(all, Horizontal(variables[i], variables[grid.Index(row, col+1, n)]))
			}
			if row+1 < n {
				all = append(all, Vertical(variables[i], variables[grid.Index(row+1, col, n)]))
			}
		}
	}
	all = append(all, NoCycles(variables), Connected(variables))

	return csp.New("pipes", variables, all), nil
}
