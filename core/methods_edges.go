package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge inserts a directed edge from -> to with the given length and
// returns its generated ID. Endpoints are created on demand. Parallel edges
// and self-loops are always permitted; the multigraph keeps each distinct.
//
// Steps:
//  1. Validate IDs and length.
//  2. Ensure endpoints via AddNode.
//  3. Generate the edge ID atomically, build the Edge, apply options.
//  4. Store the edge and link the adjacency index under lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, length float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if length < 0 {
		return "", ErrNegativeLength
	}

	// 2) Ensure endpoints exist.
	if err := g.AddNode(from); err != nil {
		return "", err
	}
	if err := g.AddNode(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Build the edge under a fresh unique ID.
	eid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	e := &Edge{ID: eid, From: from, To: to, Length: length}
	for _, opt := range opts {
		opt(e)
	}

	// 4) Store and index.
	g.edges[eid] = e
	g.ensureAdjacency(from, to)
	g.adjacency[from][to][eid] = struct{}{}

	return eid, nil
}

// Duplicate inserts a copy of an existing edge under a fresh ID, preserving
// endpoints, length and metadata. This is the augmentation primitive:
// duplicating a segment evens out degree parity without touching originals.
//
// Complexity: O(1) amortized.
func (g *Graph) Duplicate(eid string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.edges[eid]
	if !ok {
		return "", ErrEdgeNotFound
	}

	nid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	dup := &Edge{
		ID:       nid,
		From:     src.From,
		To:       src.To,
		Length:   src.Length,
		Name:     src.Name,
		OneWay:   src.OneWay,
		Geometry: src.Geometry,
	}
	g.edges[nid] = dup
	g.ensureAdjacency(dup.From, dup.To)
	g.adjacency[dup.From][dup.To][nid] = struct{}{}

	return nid, nil
}

// Edge returns the edge with the given ID.
// Complexity: O(1)
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether at least one edge runs from -> to.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// FindEdge returns the first edge from -> to in edge-ID order, mirroring the
// "first parallel edge wins" lookup used when duplicating segments along a
// matched path. Returns ErrEdgeNotFound when no such edge exists.
//
// Complexity: O(k log k) where k is the number of parallel edges.
func (g *Graph) FindEdge(from, to string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.adjacency[from][to]
	if len(bucket) == 0 {
		return nil, ErrEdgeNotFound
	}

	ids := make([]string, 0, len(bucket))
	for eid := range bucket {
		ids = append(ids, eid)
	}
	sortEdgeIDs(ids)

	return g.edges[ids[0]], nil
}

// Edges returns all edges sorted by ID (insertion order, since IDs are
// monotonic). The returned slice is fresh; the *Edge values are shared.
//
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// OutEdges returns the edges directed out of the node, sorted by ID.
// Complexity: O(deg log deg)
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// IncidentEdges returns every edge touching the node in either direction,
// sorted by ID. Self-loops appear once.
//
// Complexity: O(E) worst case.
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	var out []*Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// EdgeCount returns the number of edges, parallel edges included.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// ensureAdjacency makes sure the nested adjacency maps for (from, to) exist.
// Caller must hold mu.
func (g *Graph) ensureAdjacency(from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// edgeIDLess orders edge IDs numerically ("e2" before "e10").
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// sortEdgeIDs sorts edge IDs in numeric order.
func sortEdgeIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return edgeIDLess(ids[i], ids[j]) })
}
