package pipegrid

import (
	"fmt"

	"github.com/pipegrid/engine/constraints"
	"github.com/pipegrid/engine/search"
)

// Generate builds a fresh n×n puzzle model and runs the backtracking
// search with the given options, returning its first canonical solution
// string. It always applies
// search.WithSolutionCap(1) after opts, overriding any cap the caller
// supplied — Generate only ever needs the first solution and stops the
// underlying search as soon as one is found.
//
// Returns ErrGridTooSmall for n < 2, search.ErrNoSolution if no solution
// exists under the constraint set, or search.ErrCanceled if opts cancel
// the search first.
func Generate(n int, opts ...search.Option) (string, error) {
	model, err := constraints.Build(n)
	if err != nil {
		if err == constraints.ErrGridTooSmall {
			return "", ErrGridTooSmall
		}
		return "", fmt.Errorf("pipegrid.Generate: %w", err)
	}

	solutions, err := search.Generate(model, append(opts, search.WithSolutionCap(1))...)
	if err != nil {
		return "", err
	}

	return solutions[0], nil
}
