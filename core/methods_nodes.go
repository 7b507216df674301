package core

import "sort"

// AddNode inserts a node with the given ID if it does not exist yet.
// Adding an existing ID is a no-op that still applies the options, so hosts
// may enrich a node (coordinates, metadata) after edges referenced it.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		n = &Node{ID: id}
		g.nodes[id] = n
	}
	for _, opt := range opts {
		opt(n)
	}

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID.
// Complexity: O(1)
func (g *Graph) Node(id string) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the directed in-degree, out-degree and total (in+out)
// degree of the node. Self-loops count once for in and once for out.
// Callers needing the degrees of every node at once should make a single
// pass over Edges() instead.
//
// Complexity: O(E)
func (g *Graph) Degree(id string) (in, out, total int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, 0, 0, ErrNodeNotFound
	}

	for _, e := range g.edges {
		if e.From == id {
			out++
		}
		if e.To == id {
			in++
		}
	}

	return in, out, in + out, nil
}
