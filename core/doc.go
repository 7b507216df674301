// Package core defines the street-network graph model consumed by every
// solver stage: a weighted directed multigraph whose nodes may carry
// geographic attributes and whose parallel edges are preserved distinctly.
//
// Design notes:
//
//   - Node IDs are opaque strings; geographic attributes (Lat/Lon and
//     projected X/Y) are carried through untouched - no solver stage
//     interprets them.
//   - Edges are directed (From -> To) with a non-negative Length and optional
//     street metadata (Name, OneWay, Geometry). Multiple parallel edges
//     between the same endpoints are legal and kept distinct under unique
//     edge IDs ("e1", "e2", ...).
//   - Augmentation only ever adds edges; original edges are never removed or
//     mutated. Duplicate is the augmentation primitive: it inserts a copy of
//     an existing edge under a fresh ID.
//   - All enumerating accessors (Nodes, Edges, OutEdges, IncidentEdges)
//     return sorted results so downstream algorithms are deterministic.
//   - A single sync.RWMutex guards the maps, so a host may build a graph from
//     several goroutines; the solver itself always works on a private Clone.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrNegativeLength  - edge length is negative.
package core
