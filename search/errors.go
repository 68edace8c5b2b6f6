package search

import "errors"

// Sentinel errors for search operations.
var (
	// ErrNoSolution is returned by Generate when the search stack empties
	// without ever recording a solution.
	ErrNoSolution = errors.New("search: no solution found")

	// ErrCanceled is returned by Generate when its context is done before
	// the search completes.
	ErrCanceled = errors.New("search: canceled")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)
