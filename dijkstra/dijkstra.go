package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/postroute/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes in the graph g.
//
// Returns:
//
//   - dist: map from node ID to minimum distance (math.Inf(1) if unreachable).
//   - prev: optional predecessor map if WithReturnPath() was given
//     (nil otherwise). prev[v] == u means the shortest path to v arrives
//     from u; for the source and unreachable nodes, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrSourceNotFound).
//
// Edge lengths are guaranteed non-negative by core.AddEdge, so no negative
// weight scan is needed here.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	// 2) Prepare data structures.
	nodes := g.Nodes()
	dist := make(map[string]float64, len(nodes))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(nodes))
	}
	for _, v := range nodes {
		dist[v] = math.Inf(1)
		if prev != nil {
			prev[v] = ""
		}
	}
	dist[cfg.Source] = 0

	// 3) Build the traversal adjacency once. Respecting direction we walk
	//    From -> To only; ignoring it, every edge is usable both ways.
	adj := buildAdjacency(g, cfg.IgnoreDirection)

	// 4) Run the main loop with a lazy-decrease-key min-heap.
	visited := make(map[string]bool, len(nodes))
	pq := make(nodePQ, 0, len(nodes))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: cfg.Source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries (lazy decrease-key).
		if visited[u] {
			continue
		}
		// Beyond the exploration cap: nothing closer remains, stop.
		if d > cfg.MaxDistance {
			break
		}
		visited[u] = true

		// Relax every arc out of u.
		for _, a := range adj[u] {
			nd := d + a.length
			if nd > cfg.MaxDistance {
				continue
			}
			// Strict improvement only, to avoid duplicate pushes on ties.
			if nd >= dist[a.to] {
				continue
			}
			dist[a.to] = nd
			if prev != nil {
				prev[a.to] = u
			}
			heap.Push(&pq, &nodeItem{id: a.to, dist: nd})
		}
	}

	return dist, prev, nil
}

// arc is one traversable hop in the flattened adjacency used by the loop.
type arc struct {
	to     string
	length float64
}

// buildAdjacency flattens the graph into per-node arc lists. With
// ignoreDirection, each edge contributes both u->v and v->u (self-loops once).
// Complexity: O(V + E).
func buildAdjacency(g *core.Graph, ignoreDirection bool) map[string][]arc {
	adj := make(map[string][]arc, g.NodeCount())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], arc{to: e.To, length: e.Length})
		if ignoreDirection && e.From != e.To {
			adj[e.To] = append(adj[e.To], arc{to: e.From, length: e.Length})
		}
	}

	return adj
}

// nodeItem represents a node and its current distance from the source,
// stored in the priority queue.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Shorter
// rediscoveries push new entries; outdated ones are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist means higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
