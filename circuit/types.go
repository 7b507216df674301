// This file declares the Step/Circuit result types, the Report, sentinel
// errors and functional options of the circuit builder.
package circuit

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrEmptyGraph indicates the graph has no nodes to start a tour from.
	ErrEmptyGraph = errors.New("circuit: graph has no nodes")

	// ErrStartNotFound indicates the requested start node does not exist.
	ErrStartNotFound = errors.New("circuit: start node not found in graph")
)

// Step is one traversal of one edge. From/To give the direction actually
// driven, which for an undirected traversal may be the reverse of the
// underlying edge's orientation; EdgeID identifies that underlying edge.
type Step struct {
	From, To string
	EdgeID   string
}

// Circuit is the ordered walk. When construction succeeds, consecutive
// steps share endpoints and the walk is closed: Circuit[i].To ==
// Circuit[i+1].From and the last To equals the first From. The fallback
// path guarantees neither.
type Circuit []Step

// Closed reports whether the walk is non-empty, internally consistent and
// returns to its starting node.
func (c Circuit) Closed() bool {
	if len(c) == 0 {
		return false
	}
	for i := 0; i+1 < len(c); i++ {
		if c[i].To != c[i+1].From {
			return false
		}
	}

	return c[len(c)-1].To == c[0].From
}

// Report carries the builder's diagnostics.
type Report struct {
	// Start is the node the walk was built from.
	Start string

	// DroppedComponents counts undirected components excluded from the tour.
	DroppedComponents int

	// DroppedEdges counts edges lost with those components.
	DroppedEdges int

	// Fallback is true when Hierholzer could not complete and the
	// depth-first approximation was emitted instead. It indicates an
	// upstream degree-invariant violation worth surfacing to operators.
	Fallback bool
}

// Options configures the circuit builder.
//
// Start - preferred start node; the tour is built inside its component.
// Empty selects the largest component and its smallest node ID.
type Options struct {
	Start string
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithStart sets the preferred start node of the tour.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// DefaultOptions returns the builder defaults.
func DefaultOptions() Options {
	return Options{}
}
