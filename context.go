package pinfer

import "context"

// key is an unexported type for keys defined in this package, to avoid
// collisions with keys defined in other packages using context.Context.
type key int

var optionsKey key

// NewContext returns a new Context that carries the supplied Options.
func NewContext(ctx context.Context, opts *Options) context.Context {
	return context.WithValue(ctx, optionsKey, opts)
}

// FromContext returns the Options value stored in ctx, if any.
func FromContext(ctx context.Context) (*Options, bool) {
	opts, ok := ctx.Value(optionsKey).(*Options)
	return opts, ok
}
