package movepicker

import "context"

// Option configures a Pick call via functional arguments, following the
// same idiom as search.Option.
type Option func(*Options)

// Options holds parameters customizing one Pick call.
type Options struct {
	// Ctx allows cancellation at any of Pick's suspension boundaries:
	// pre-oracle, post-oracle, before commit.
	Ctx context.Context
}

// DefaultOptions returns Options with Context.Background() and no other
// configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext wires a cancellation context into Pick, so a move is never
// applied once its board revision has gone stale.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
