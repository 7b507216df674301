package eulerian

import (
	"sort"

	"github.com/katalvlaran/postroute/core"
)

// StronglyConnected reports whether every node is reachable from every other
// node along directed edges. Implemented as two iterative sweeps (forward and
// reverse adjacency) from an arbitrary node; the graph is strongly connected
// iff both sweeps reach every node. Nil and empty graphs are vacuously
// strongly connected; a single isolated node is as well.
//
// Complexity: O(V + E)
func StronglyConnected(g *core.Graph) bool {
	if g == nil {
		return true
	}
	nodes := g.Nodes()
	if len(nodes) <= 1 {
		return true
	}

	fwd := make(map[string][]string, len(nodes))
	rev := make(map[string][]string, len(nodes))
	for _, e := range g.Edges() {
		fwd[e.From] = append(fwd[e.From], e.To)
		rev[e.To] = append(rev[e.To], e.From)
	}

	return sweep(nodes[0], fwd) == len(nodes) && sweep(nodes[0], rev) == len(nodes)
}

// sweep runs an iterative DFS from start over adj and returns the number of
// nodes reached.
func sweep(start string, adj map[string][]string) int {
	seen := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}

	return len(seen)
}

// Components returns the connected components of the undirected projection
// of g. Each component is a sorted slice of node IDs; components are ordered
// by size descending, then by their first node ID, so "the largest
// component" is always Components(g)[0] and the ordering is deterministic.
//
// Complexity: O(V + E + V log V)
func Components(g *core.Graph) [][]string {
	if g == nil || g.NodeCount() == 0 {
		return nil
	}

	adj := make(map[string][]string, g.NodeCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	var comps [][]string
	seen := make(map[string]bool, g.NodeCount())
	for _, start := range g.Nodes() {
		if seen[start] {
			continue
		}
		// Flood one component from start.
		comp := []string{start}
		seen[start] = true
		stack := []string{start}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
					stack = append(stack, v)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}

		return comps[i][0] < comps[j][0]
	})

	return comps
}
