package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNilNeighbors indicates a nil Neighbors function was passed.
	ErrNilNeighbors = errors.New("dijkstra: neighbors function is nil")

	// ErrNegativeWeight indicates an edge with a negative cost was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates no goal node is reachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to goal")
)

// Edge is one outgoing edge of a node.
type Edge[N comparable] struct {
	To   N
	Cost int64
}

// Neighbors expands a node into its outgoing edges.
type Neighbors[N comparable] func(N) []Edge[N]

// Result holds the outcome of a search.
//
// Dist contains every node whose distance was finalised, keyed by node.
// Prev maps each reached node to its predecessor on a cheapest path; it is
// nil unless ReturnPath was requested. The source has no entry in Prev.
type Result[N comparable] struct {
	Dist map[N]int64
	Prev map[N]N

	// Goal is the first goal node finalised; Found reports whether there was one.
	Goal  N
	Found bool
}

// Options configures the search.
//
// ReturnPath  – if true, Result.Prev is populated.
// MaxDistance – nodes with distance above this are skipped. Default math.MaxInt64.
// OnVisit     – called with each node as its distance becomes final.
type Options struct {
	ReturnPath  bool
	MaxDistance int64
	OnVisit     func(node any, dist int64)
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithReturnPath enables back-pointer recording.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration. Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnVisit installs a hook called as each node is finalised.
func WithOnVisit(fn func(node any, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DefaultOptions returns Options with no path recording, no distance cap and
// a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		OnVisit:     func(any, int64) {},
	}
}
