package pqueue

// Entry is one (key, value) pair held by a Queue.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Options configures a Queue.
type Options struct {
	// Capacity pre-sizes the backing slice. Zero means no hint.
	Capacity int
}

// Option represents a functional option for configuring a Queue.
type Option func(*Options)

// WithCapacity pre-allocates room for n entries.
// Panics if n is negative.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("pqueue: capacity must be non-negative")
		}
		o.Capacity = n
	}
}

// DefaultOptions returns Options with no capacity hint.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
