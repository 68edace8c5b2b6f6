package constraints

import "errors"

// Sentinel errors for building a puzzle's constraint model.
var (
	// ErrGridTooSmall indicates an attempt to build a puzzle below the
	// minimum supported grid size (a 1×1 puzzle has no legal pipe).
	ErrGridTooSmall = errors.New("constraints: grid size must be >= 2")
)
