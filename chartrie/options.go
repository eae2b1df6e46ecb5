package chartrie

import "github.com/datatrails/go-datatrails-common/logger"

// Options configures a Trie.
type Options struct {
	// Less orders the characters of a sibling chain. Defaults to FoldLess.
	Less Less
	// Log receives debug output for structural events. Nil disables logging.
	Log logger.Logger
	// Capacity pre-sizes the node arena.
	Capacity int
}

type Option func(*Options)

// WithComparator replaces the default case-insensitive character order.
func WithComparator(less Less) Option {
	return func(o *Options) {
		o.Less = less
	}
}

// WithLogger enables debug logging of clears, prunes and head clones.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithCapacity pre-sizes the node arena for n nodes.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

func newOptions(opts ...Option) Options {
	o := Options{Less: FoldLess}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Less == nil {
		o.Less = FoldLess
	}
	if o.Capacity < 1 {
		o.Capacity = 1
	}
	return o
}
