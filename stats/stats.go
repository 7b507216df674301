package stats

import (
	"errors"

	"github.com/katalvlaran/postroute/circuit"
	"github.com/katalvlaran/postroute/core"
)

// metersPerKilometer and metersPerMile convert the graph's native lengths
// (meters, by convention of the map loaders feeding this solver).
const (
	metersPerKilometer = 1000.0
	metersPerMile      = 1609.344
)

// Record holds the metrics of one produced route.
type Record struct {
	// TotalEdges is the number of traversals in the circuit.
	TotalEdges int

	// UniqueEdges is the number of distinct (From, To) traversal pairs.
	UniqueEdges int

	// RepeatedEdges is TotalEdges - UniqueEdges.
	RepeatedEdges int

	// TotalDistance is the sum of traversed edge lengths, in graph units.
	TotalDistance float64

	// CoveragePercent is the share of original edges the tour visits in
	// either orientation, in [0, 100].
	CoveragePercent float64
}

// DistanceKilometers returns TotalDistance converted from meters.
func (r Record) DistanceKilometers() float64 { return r.TotalDistance / metersPerKilometer }

// DistanceMiles returns TotalDistance converted from meters.
func (r Record) DistanceMiles() float64 { return r.TotalDistance / metersPerMile }

// Compute measures the circuit c against the original and augmented graphs.
//
// Distance is looked up per step: by edge ID in the augmented graph first,
// then by endpoint pair in either orientation, then 0 - a traversal is never
// dropped just because its edge went missing. Coverage counts original edges
// whose endpoint pair appears among the circuit's traversals in either
// orientation, so it stays within [0, 100] and reaches 100 exactly when
// every original edge is covered.
//
// Complexity: O(len(c) + E)
func Compute(original, augmented *core.Graph, c circuit.Circuit) Record {
	var r Record
	if len(c) == 0 {
		return r
	}

	r.TotalEdges = len(c)

	seen := make(map[[2]string]bool, len(c))
	for _, s := range c {
		seen[[2]string{s.From, s.To}] = true
		r.TotalDistance += stepLength(augmented, s)
	}
	r.UniqueEdges = len(seen)
	r.RepeatedEdges = r.TotalEdges - r.UniqueEdges

	if original == nil || original.EdgeCount() == 0 {
		return r
	}

	covered := 0
	for _, e := range original.Edges() {
		if seen[[2]string{e.From, e.To}] || seen[[2]string{e.To, e.From}] {
			covered++
		}
	}
	r.CoveragePercent = float64(covered) / float64(original.EdgeCount()) * 100

	return r
}

// stepLength resolves one traversal's length: edge ID first, endpoint pair
// in either orientation second, zero last.
func stepLength(g *core.Graph, s circuit.Step) float64 {
	if g == nil {
		return 0
	}
	if e, err := g.Edge(s.EdgeID); err == nil {
		return e.Length
	}
	e, err := g.FindEdge(s.From, s.To)
	if errors.Is(err, core.ErrEdgeNotFound) {
		e, err = g.FindEdge(s.To, s.From)
	}
	if err != nil {
		return 0
	}

	return e.Length
}
