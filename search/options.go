package search

import (
	"context"
	"fmt"
	"math/rand"
)

// Option configures Generate's behavior via functional arguments.
// If an Option is invalid (e.g. a negative solution cap), it is recorded
// internally and surfaced as ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds parameters customizing one Generate call.
type Options struct {
	// Ctx allows cancellation mid-search.
	Ctx context.Context

	// SolutionCap stops the search once this many solutions have been
	// recorded. Zero means unbounded.
	SolutionCap int

	// rng is nil in deterministic mode; non-nil selects randomized tie
	// breaking and active-domain shuffling.
	rng *rand.Rand

	// internal error recorded during option parsing.
	err error
}

// DefaultOptions returns Options with sane defaults: Context.Background(),
// no solution cap, and deterministic mode (no RNG).
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		SolutionCap: 0,
		rng:         nil,
		err:         nil,
	}
}

// WithSolutionCap bounds the number of solutions Generate records before
// stopping. A negative cap is an invalid option.
func WithSolutionCap(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: solution cap cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SolutionCap = n
	}
}

// WithRandom switches Generate into randomized mode: variable-ordering
// ties broken by uniform random choice, and each captured active domain
// shuffled before descent. seed==0 still yields a deterministic,
// repeatable RNG stream; it is not the same as deterministic mode, which
// consults no RNG at all.
func WithRandom(seed int64) Option {
	return func(o *Options) {
		o.rng = rngFromSeed(seed)
	}
}

// WithContext wires a cancellation context into the search loop:
// checked at the top of the loop and aborted with ErrCanceled once done,
// after every open frame's log has been undone.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
