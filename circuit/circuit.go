package circuit

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/postroute/core"
	"github.com/katalvlaran/postroute/eulerian"
)

// halfEdge is one undirected incidence: the edge eid leads from the indexed
// node to peer. Every non-loop edge owns two halves, a self-loop one.
type halfEdge struct {
	peer string
	eid  string
}

// Build constructs a closed walk using every edge of the undirected
// projection of g exactly once.
//
// Steps:
//  1. Validate: a graph without nodes has no start node (ErrEmptyGraph);
//     a graph without edges yields an empty circuit.
//  2. Select the working component: the one containing Options.Start when
//     given, otherwise the largest; count what the selection drops.
//  3. Run iterative Hierholzer from the start node, spending one halfEdge
//     pair per edge.
//  4. If any component edge was left unspent, the degree invariant was
//     broken upstream: fall back to a depth-first edge traversal and flag
//     Report.Fallback.
//
// Complexity: O(V + E log E) - the log factor pays for deterministic
// incidence ordering.
func Build(g *core.Graph, opts ...Option) (Circuit, Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var rep Report
	if g == nil || g.NodeCount() == 0 {
		return nil, rep, ErrEmptyGraph
	}
	if cfg.Start != "" && !g.HasNode(cfg.Start) {
		return nil, rep, fmt.Errorf("%w: %q", ErrStartNotFound, cfg.Start)
	}
	if g.EdgeCount() == 0 {
		return Circuit{}, rep, nil
	}

	// 2) Component selection over the undirected projection.
	comps := eulerian.Components(g)
	compOf := make(map[string]int, g.NodeCount())
	for ci, comp := range comps {
		for _, id := range comp {
			compOf[id] = ci
		}
	}
	edgesIn := make([]int, len(comps))
	for _, e := range g.Edges() {
		edgesIn[compOf[e.From]]++
	}

	pick := 0
	if cfg.Start != "" {
		pick = compOf[cfg.Start]
	} else if edgesIn[pick] == 0 {
		// The biggest component can be an edgeless scatter of nodes while
		// the streets sit in a smaller one; tour where the edges are.
		for ci := 1; ci < len(comps); ci++ {
			if edgesIn[ci] > edgesIn[pick] {
				pick = ci
			}
		}
	}
	member := make(map[string]bool, len(comps[pick]))
	for _, id := range comps[pick] {
		member[id] = true
	}
	rep.DroppedComponents = len(comps) - 1

	// Undirected incidence restricted to the picked component, sorted by
	// edge ID per node for deterministic tours.
	inc := make(map[string][]halfEdge)
	compEdges := 0
	for _, e := range g.Edges() {
		if !member[e.From] {
			rep.DroppedEdges++
			continue
		}
		compEdges++
		inc[e.From] = append(inc[e.From], halfEdge{peer: e.To, eid: e.ID})
		if e.From != e.To {
			inc[e.To] = append(inc[e.To], halfEdge{peer: e.From, eid: e.ID})
		}
	}
	for id := range inc {
		sort.Slice(inc[id], func(i, j int) bool { return inc[id][i].eid < inc[id][j].eid })
	}

	rep.Start = cfg.Start
	if rep.Start == "" {
		rep.Start = comps[pick][0]
	}

	// An isolated start component means nothing to tour there at all.
	if compEdges == 0 {
		return Circuit{}, rep, nil
	}

	// 3) Hierholzer. Success means every component edge spent and a walk
	//    that actually chains and closes; a parity violation upstream can
	//    spend all edges yet leave the pop order open or non-contiguous.
	walk, used := hierholzer(inc, rep.Start)
	if cand := walkToCircuit(walk); used == compEdges && cand.Closed() {
		return cand, rep, nil
	}

	// 4) Degraded DFS fallback: the parity invariant did not hold.
	rep.Fallback = true

	return dfsEdges(inc, rep.Start), rep, nil
}

// visit pairs a node with the edge by which the walk enters it.
type visit struct {
	node string
	via  string
}

// hierholzer runs the stack-based cycle-splicing construction and returns
// the walk (in forward order; walk[0].via == "") plus the number of distinct
// edges spent.
func hierholzer(inc map[string][]halfEdge, start string) ([]visit, int) {
	used := make(map[string]bool)
	cursor := make(map[string]int, len(inc))
	stack := []visit{{node: start}}

	var rev []visit
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		u := top.node

		// Skip incidences whose edge was already spent from the other side.
		for cursor[u] < len(inc[u]) && used[inc[u][cursor[u]].eid] {
			cursor[u]++
		}

		if cursor[u] == len(inc[u]) {
			// Dead end: this node's sub-tour is complete, emit and backtrack.
			rev = append(rev, top)
			stack = stack[:len(stack)-1]
			continue
		}

		h := inc[u][cursor[u]]
		used[h.eid] = true
		stack = append(stack, visit{node: h.peer, via: h.eid})
	}

	// The pop order is the circuit reversed.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, len(used)
}

// walkToCircuit converts the visit sequence into edge Steps.
func walkToCircuit(walk []visit) Circuit {
	if len(walk) < 2 {
		return Circuit{}
	}

	c := make(Circuit, 0, len(walk)-1)
	for i := 1; i < len(walk); i++ {
		c = append(c, Step{From: walk[i-1].node, To: walk[i].node, EdgeID: walk[i].via})
	}

	return c
}

// dfsEdges emits each reachable edge once in depth-first discovery order.
// The result generally neither chains nor closes; it exists so a broken
// upstream invariant still yields a usable edge list instead of nothing.
func dfsEdges(inc map[string][]halfEdge, start string) Circuit {
	var c Circuit
	used := make(map[string]bool)
	visited := map[string]bool{start: true}

	// Frames mirror the recursive formulation: each level resumes scanning
	// its own incidence list after the subtree below it finishes.
	type frame struct {
		node string
		next int
	}
	stack := []frame{{node: start}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(inc[f.node]) {
			stack = stack[:len(stack)-1]
			continue
		}
		h := inc[f.node][f.next]
		f.next++
		if used[h.eid] || visited[h.peer] {
			continue
		}
		used[h.eid] = true
		visited[h.peer] = true
		c = append(c, Step{From: f.node, To: h.peer, EdgeID: h.eid})
		stack = append(stack, frame{node: h.peer})
	}

	return c
}
