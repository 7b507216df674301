package eulerian

import (
	"sort"

	"github.com/katalvlaran/postroute/core"
)

// IsEulerian reports whether g admits a directed Eulerian circuit: every
// node balanced (in-degree == out-degree) and the graph strongly connected.
// A nil or empty graph is vacuously Eulerian.
//
// Complexity: O(V + E)
func IsEulerian(g *core.Graph) bool {
	if g == nil || g.NodeCount() == 0 {
		return true
	}

	// One pass over the edge set for all degrees at once.
	in := make(map[string]int, g.NodeCount())
	out := make(map[string]int, g.NodeCount())
	for _, e := range g.Edges() {
		out[e.From]++
		in[e.To]++
	}
	for _, id := range g.Nodes() {
		if in[id] != out[id] {
			return false
		}
	}

	return StronglyConnected(g)
}

// OddNodes returns, in ascending order, every node whose total (in+out)
// degree is odd when the graph is treated as undirected. The handshake lemma
// guarantees the result has even cardinality; an empty result means no
// augmentation is needed.
//
// Complexity: O(V + E)
func OddNodes(g *core.Graph) []string {
	if g == nil {
		return nil
	}

	deg := make(map[string]int, g.NodeCount())
	for _, e := range g.Edges() {
		deg[e.From]++
		deg[e.To]++
	}

	var odd []string
	for id, d := range deg {
		if d%2 == 1 {
			odd = append(odd, id)
		}
	}
	sort.Strings(odd)

	return odd
}
