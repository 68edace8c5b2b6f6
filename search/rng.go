package search

import (
	"math/rand"

	"github.com/pipegrid/engine/pipe"
)

// defaultRNGSeed is the fixed "zero" seed used when a caller requests
// randomized mode with seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 is mapped to
// defaultRNGSeed so that WithRandom(0) still yields a repeatable stream
// rather than an unseeded one.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shufflePipes performs an in-place Fisher-Yates shuffle of a captured
// active-domain snapshot using rng.
func shufflePipes(a []pipe.Pipe, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
