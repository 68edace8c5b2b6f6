package pipe

import "errors"

// Sentinel errors for the pipe package.
var (
	// ErrInvalidEncoding indicates a string is not a well-formed pipe or
	// solution encoding (wrong length, or characters other than '0'/'1').
	ErrInvalidEncoding = errors.New("pipe: invalid encoding")

	// ErrInvalidSize indicates a solution string's length is not 4*n*n for
	// any positive integer n (it is empty, not a multiple of 4, or holds a
	// non-square number of cells), so no grid size n could have produced it.
	ErrInvalidSize = errors.New("pipe: encoded length is not 4*n*n for any n >= 1")
)
