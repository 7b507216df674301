// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// street-network graph in package core.
//
// Dijkstra computes the minimum-length path from a single source node to all
// other reachable nodes, assuming non-negative edge lengths. Nodes are
// processed in order of increasing distance using a min-heap priority queue
// with the lazy-decrease-key strategy: shorter rediscoveries push duplicate
// heap entries and stale entries are skipped on pop.
//
// The matcher runs it with WithIgnoreDirection(), which projects the graph to
// undirected: every edge becomes traversable both ways. Augmentation only
// needs a connecting path, not a directed one, so this is the mode the
// route-inspection pipeline uses.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//	ErrNilGraph       - the provided graph pointer is nil.
//	ErrEmptySource    - the source node ID is empty.
//	ErrSourceNotFound - the source node does not exist in the graph.
//	ErrNoPath         - path reconstruction found no route to the target.
//	ErrBadMaxDistance - MaxDistance is negative or NaN.
package dijkstra
