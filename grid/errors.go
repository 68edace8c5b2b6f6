package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive or otherwise unusable grid size.
	ErrInvalidSize = errors.New("grid: size must be >= 1")

	// ErrIndexOutOfRange indicates a cell index outside [0, n*n).
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)
