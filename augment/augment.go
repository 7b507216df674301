package augment

import (
	"errors"

	"github.com/katalvlaran/postroute/core"
	"github.com/katalvlaran/postroute/matching"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Augment.
var ErrNilGraph = errors.New("augment: graph is nil")

// Report carries the augmenter's diagnostics.
type Report struct {
	// DuplicatedEdges counts the copies inserted.
	DuplicatedEdges int

	// MissingHops counts path hops whose original edge could not be found in
	// either orientation and were skipped.
	MissingHops int
}

// Augment returns a clone of g with one duplicate edge inserted per hop of
// every matched path. The duplicate keeps the orientation, length and
// metadata of the original it copies (first parallel edge in ID order when
// several exist). After a complete pass every node of the matched components
// has even total degree.
//
// The caller's graph is never mutated. An empty pair list yields a plain
// clone.
//
// Complexity: O(V + E + H) where H is the total number of path hops.
func Augment(g *core.Graph, pairs []matching.Pair) (*core.Graph, Report, error) {
	var rep Report
	if g == nil {
		return nil, rep, ErrNilGraph
	}

	aug := g.Clone()
	for _, p := range pairs {
		for i := 0; i+1 < len(p.Path); i++ {
			u, v := p.Path[i], p.Path[i+1]

			// The path came from an undirected traversal, so the original
			// edge may be stored u->v or v->u.
			e, err := aug.FindEdge(u, v)
			if errors.Is(err, core.ErrEdgeNotFound) {
				e, err = aug.FindEdge(v, u)
			}
			if err != nil {
				rep.MissingHops++
				continue
			}

			if _, err = aug.Duplicate(e.ID); err != nil {
				rep.MissingHops++
				continue
			}
			rep.DuplicatedEdges++
		}
	}

	return aug, rep, nil
}
