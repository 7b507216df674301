// This file declares the Pair and Report result types, sentinel errors and
// functional options of the odd-node matcher.
package matching

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to the matcher.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrOddCount indicates an odd-sized node set, which cannot admit a
	// perfect matching. The handshake lemma rules this out for genuine
	// odd-degree sets, so seeing it means the input was not one.
	ErrOddCount = errors.New("matching: odd number of nodes to match")

	// ErrBadExactLimit indicates a negative ExactLimit.
	ErrBadExactLimit = errors.New("matching: ExactLimit must be non-negative")
)

// Pair is one matched couple of odd-degree nodes together with the
// shortest path connecting them.
type Pair struct {
	// A and B are the matched node IDs, A < B.
	A, B string

	// Path is the full node sequence from A to B along a shortest route.
	Path []string

	// Dist is the total length of Path.
	Dist float64
}

// Report carries the matcher's diagnostics.
type Report struct {
	// OddNodes is the size of the input set.
	OddNodes int

	// SkippedPairs counts node pairs excluded because no path connects them
	// (the nodes live in different undirected components).
	SkippedPairs int

	// GreedyGroups counts component groups too large for the exact matcher,
	// paired greedily instead.
	GreedyGroups int

	// Unmatched lists nodes left without a partner. Empty in practice:
	// per-component odd counts are always even.
	Unmatched []string
}

// Options configures the matcher.
//
// ExactLimit - largest per-component odd-node group solved with the exact
// subset-DP matcher; larger groups fall back to greedy pairing. The DP costs
// O(k^2 * 2^k) time and O(2^k) memory, so the default of 16 keeps the worst
// case around a few million operations.
type Options struct {
	ExactLimit int
}

// Option represents a functional option for configuring the matcher.
type Option func(*Options)

// WithExactLimit overrides the exact-matching group size limit.
// Zero forces greedy pairing everywhere. Panics on negative values.
func WithExactLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadExactLimit.Error())
		}
		o.ExactLimit = n
	}
}

// DefaultOptions returns the matcher defaults.
func DefaultOptions() Options {
	return Options{ExactLimit: 16}
}
