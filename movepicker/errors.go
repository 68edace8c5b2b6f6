package movepicker

import "errors"

// Sentinel errors for movepicker operations. Invalid-board conditions are
// programmer errors and panic instead; see Pick's board validation.
var (
	// ErrOracleShape is returned when an Oracle's score vector does not
	// match the length of the board vector it was asked to score.
	ErrOracleShape = errors.New("movepicker: oracle returned a score vector of the wrong length")

	// ErrNoCandidate is returned when every candidate index for a board
	// has already been tried according to its memo.
	ErrNoCandidate = errors.New("movepicker: no untried candidate remains for this board")

	// ErrCanceled is returned when Pick's context is done before it can
	// commit to a candidate.
	ErrCanceled = errors.New("movepicker: canceled")
)
