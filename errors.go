package pipegrid

import "errors"

// Sentinel errors for pipegrid's top-level convenience API.
var (
	// ErrGridTooSmall is returned by Generate for n < 2, mirroring
	// constraints.ErrGridTooSmall.
	ErrGridTooSmall = errors.New("pipegrid: grid size must be >= 2")
)
