package postman

import (
	"github.com/katalvlaran/postroute/augment"
	"github.com/katalvlaran/postroute/circuit"
	"github.com/katalvlaran/postroute/core"
	"github.com/katalvlaran/postroute/eulerian"
	"github.com/katalvlaran/postroute/matching"
	"github.com/katalvlaran/postroute/stats"
)

// Solve plans a closed tour of g traversing every street segment at least
// once with minimal extra distance.
//
// Steps:
//  1. Validate and clone: the caller's graph is never mutated.
//  2. Zero-edge graphs short-circuit to an empty Result.
//  3. If the graph is already Eulerian, skip straight to circuit building;
//     otherwise pair the odd-degree nodes at minimum shortest-path cost and
//     duplicate edges along the matched paths.
//  4. Build the Eulerian circuit over the augmented graph and measure it.
//
// Solve is synchronous and CPU-bound; hosts wanting progress milestones or
// timeouts run it on a worker and impose them externally. The call either
// returns a (possibly degraded, see Diagnostics) result or an error from
// the sentinel set; it never panics on valid graphs.
//
// Complexity: dominated by the matcher - O(n * (V+E) log V) Dijkstra sweeps
// for n odd nodes plus the matching itself; the remaining stages are
// near-linear in V+E.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate and take the solver's private copy.
	if g == nil {
		return nil, ErrNilGraph
	}
	work := g.Clone()

	// 2) Nothing to tour.
	if work.EdgeCount() == 0 {
		return &Result{Circuit: circuit.Circuit{}, Augmented: work}, nil
	}

	res := &Result{}

	// 3) Parity repair, unless the graph is already Eulerian.
	aug := work
	if eulerian.IsEulerian(work) {
		res.Diag.AlreadyEulerian = true
	} else {
		odd := eulerian.OddNodes(work)

		var mopts []matching.Option
		if cfg.ExactLimit != nil {
			mopts = append(mopts, matching.WithExactLimit(*cfg.ExactLimit))
		}
		pairs, mrep, err := matching.MinWeightPairs(work, odd, mopts...)
		if err != nil {
			return nil, err
		}
		res.Diag.OddNodes = mrep.OddNodes
		res.Diag.MatchedPairs = len(pairs)
		res.Diag.SkippedPairs = mrep.SkippedPairs
		res.Diag.Unmatched = mrep.Unmatched

		var arep augment.Report
		aug, arep, err = augment.Augment(work, pairs)
		if err != nil {
			return nil, err
		}
		res.Diag.DuplicatedEdges = arep.DuplicatedEdges
		res.Diag.MissingHops = arep.MissingHops
	}
	res.Augmented = aug

	// 4) Circuit construction and measurement.
	var copts []circuit.Option
	if cfg.Start != "" {
		copts = append(copts, circuit.WithStart(cfg.Start))
	}
	crc, crep, err := circuit.Build(aug, copts...)
	if err != nil {
		return nil, err
	}
	res.Circuit = crc
	res.Diag.Start = crep.Start
	res.Diag.DroppedComponents = crep.DroppedComponents
	res.Diag.DroppedEdges = crep.DroppedEdges
	res.Diag.Fallback = crep.Fallback

	res.Stats = stats.Compute(work, aug, crc)

	return res, nil
}
