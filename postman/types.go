// This file declares the Result and Diagnostics types, sentinel errors and
// functional options of the solve facade.
package postman

import (
	"errors"

	"github.com/katalvlaran/postroute/circuit"
	"github.com/katalvlaran/postroute/core"
	"github.com/katalvlaran/postroute/stats"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
var ErrNilGraph = errors.New("postman: graph is nil")

// Result is the outcome of one Solve call. It is immutable once returned:
// consume it for statistics and export, build a new one per solve.
type Result struct {
	// Circuit is the ordered edge walk covering the toured component.
	Circuit circuit.Circuit

	// Augmented is the solver's private graph after parity repair; use it
	// for per-step distance lookups. It contains every original edge plus
	// the inserted duplicates.
	Augmented *core.Graph

	// Stats are the route metrics of Circuit.
	Stats stats.Record

	// Diag aggregates the per-stage diagnostics.
	Diag Diagnostics
}

// Diagnostics is the structured side-channel of a solve: everything the
// pipeline would otherwise have logged, as counters a host can inspect,
// export or log in its own format.
type Diagnostics struct {
	// AlreadyEulerian is true when the input needed no augmentation.
	AlreadyEulerian bool

	// OddNodes is the number of odd-degree nodes found.
	OddNodes int

	// MatchedPairs is the number of odd-node pairs matched.
	MatchedPairs int

	// SkippedPairs counts odd-node pairs with no connecting path.
	SkippedPairs int

	// Unmatched lists odd nodes left without a partner.
	Unmatched []string

	// DuplicatedEdges counts edges inserted by augmentation.
	DuplicatedEdges int

	// MissingHops counts augmentation hops whose edge lookup failed.
	MissingHops int

	// Start is the node the tour begins at.
	Start string

	// DroppedComponents and DroppedEdges describe the disconnected
	// remainder excluded from the tour.
	DroppedComponents int
	DroppedEdges      int

	// Fallback is true when the circuit builder degraded to its
	// depth-first approximation; it signals an upstream invariant
	// violation worth surfacing to operators.
	Fallback bool
}

// Degraded reports whether any stage produced less than a full-coverage
// closed tour.
func (d Diagnostics) Degraded() bool {
	return d.SkippedPairs > 0 || len(d.Unmatched) > 0 || d.MissingHops > 0 ||
		d.DroppedComponents > 0 || d.DroppedEdges > 0 || d.Fallback
}

// Options configures Solve.
//
// Start      - preferred tour start node (forwarded to the circuit builder).
// ExactLimit - largest odd-node group matched exactly (forwarded to the
// matcher); nil means the matcher's default.
type Options struct {
	Start      string
	ExactLimit *int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStart sets the preferred tour start node.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithExactLimit overrides the matcher's exact-matching group size limit.
func WithExactLimit(n int) Option {
	return func(o *Options) { o.ExactLimit = &n }
}

// DefaultOptions returns the solver defaults.
func DefaultOptions() Options {
	return Options{}
}
