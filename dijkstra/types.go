// This file declares the sentinel errors and functional options for the
// Dijkstra implementation.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrSourceNotFound indicates that the source node does not exist in the
	// provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNoPath indicates that no route exists between the requested nodes.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source          - starting node ID (must be non-empty and present).
// ReturnPath      - if true, return the predecessor map; otherwise nil.
// IgnoreDirection - if true, treat every edge as traversable both ways
// (the undirected projection used by the odd-node matcher).
// MaxDistance     - cap on distances to explore; nodes beyond are skipped.
// Must be >= 0. Default is math.Inf(1) (no cap).
type Options struct {
	Source          string
	ReturnPath      bool
	IgnoreDirection bool
	MaxDistance     float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID. Must be provided.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables generation of the predecessor map in the result.
// If unset (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithIgnoreDirection makes every edge traversable in both directions,
// computing shortest paths over the undirected projection of the graph.
func WithIgnoreDirection() Option {
	return func(o *Options) { o.IgnoreDirection = true }
}

// WithMaxDistance sets a maximum distance threshold. Nodes whose shortest
// distance would exceed it are not explored. Panics on negative or NaN
// values; invalid configuration is a programming error, not a runtime state.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with the defaults for
// the given source node ID: respect edge direction, no predecessor map, no
// distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}
