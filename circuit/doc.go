// Package circuit constructs a closed walk traversing every edge of an
// augmented street network exactly once - an Eulerian circuit - using
// Hierholzer's algorithm over the undirected projection of the graph.
//
// Direction is deliberately discarded here: a coverage vehicle may drive a
// street in either direction to satisfy coverage, so edges keep their
// multiplicity but lose their orientation. Each produced Step still records
// the ID of the underlying edge, so exporters and statistics can recover
// lengths and street metadata exactly even across parallel edges.
//
// If the undirected projection is not connected, construction restricts
// itself to one component - the one holding the requested start node, or the
// largest one - and reports the dropped remainder. If the degree invariant
// was violated upstream and the circuit cannot be completed, a depth-first
// traversal of the edges serves as a degraded fallback: every emitted edge
// appears once, but the walk may be neither contiguous nor closed. Both
// conditions surface in the Report, never as errors.
//
// Errors (sentinel):
//
//	ErrEmptyGraph    - the graph has no nodes, so no start node exists.
//	ErrStartNotFound - the requested start node is not in the graph.
package circuit
