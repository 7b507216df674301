package core

// CloneEmpty returns a new Graph with the same nodes but no edges.
// Node values are copied; Metadata maps are shared, not deep-copied.
//
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	for id, n := range g.nodes {
		cp := *n
		c.nodes[id] = &cp
	}

	return c
}

// Clone returns a deep copy of the graph: nodes, edges and adjacency are all
// re-allocated, so mutating the clone (the solver's private copy) never
// touches the original. Edge IDs and the ID counter are preserved, which
// keeps original-edge identity stable across augmentation.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	c.nextEdgeID = g.nextEdgeID

	for id, n := range g.nodes {
		cp := *n
		c.nodes[id] = &cp
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
		c.ensureAdjacency(cp.From, cp.To)
		c.adjacency[cp.From][cp.To][eid] = struct{}{}
	}

	return c
}
