// This file declares Node, Edge, Graph, their options, the sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeLength indicates an edge was given a negative length.
	ErrNegativeLength = errors.New("core: edge length must be non-negative")
)

// Node represents an intersection or junction in the street network.
//
// ID uniquely identifies the Node within its Graph. The geographic fields are
// optional attributes carried through the pipeline but never interpreted by
// the solver itself.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Lat and Lon are optional WGS84 coordinates.
	Lat, Lon float64

	// X and Y are optional projected planar coordinates.
	X, Y float64

	// Metadata stores arbitrary user data. It is shared, not deep-copied,
	// by Clone.
	Metadata map[string]any
}

// Edge represents a directed street segment From -> To.
//
// The Graph is a multigraph: several parallel edges may connect the same
// endpoint pair and each keeps its own ID, length and metadata.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Length is the non-negative traversal cost (typically meters).
	Length float64

	// Name is the optional street name.
	Name string

	// OneWay marks segments that real traffic may only use From -> To.
	// The solver's undirected relaxation ignores it; exporters may not.
	OneWay bool

	// Geometry optionally holds the segment polyline as (lat, lon) pairs.
	Geometry [][2]float64
}

// NodeOption configures optional attributes of a node when added.
type NodeOption func(*Node)

// WithCoords sets the WGS84 coordinates of the node.
func WithCoords(lat, lon float64) NodeOption {
	return func(n *Node) { n.Lat, n.Lon = lat, lon }
}

// WithXY sets the projected planar coordinates of the node.
func WithXY(x, y float64) NodeOption {
	return func(n *Node) { n.X, n.Y = x, y }
}

// WithNodeMetadata attaches arbitrary key-value data to the node.
func WithNodeMetadata(md map[string]any) NodeOption {
	return func(n *Node) { n.Metadata = md }
}

// EdgeOption configures optional attributes of an edge when added.
type EdgeOption func(*Edge)

// WithName sets the street name of the edge.
func WithName(name string) EdgeOption {
	return func(e *Edge) { e.Name = name }
}

// WithOneWay marks the edge as a one-way street segment.
func WithOneWay() EdgeOption {
	return func(e *Edge) { e.OneWay = true }
}

// WithGeometry attaches the segment polyline as (lat, lon) pairs.
func WithGeometry(pts [][2]float64) EdgeOption {
	return func(e *Edge) { e.Geometry = pts }
}

// Graph is the in-memory street-network data structure: a weighted directed
// multigraph.
//
// mu guards nodes, edges and the adjacency index. nextEdgeID is an atomic
// counter for unique Edge.ID generation.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64           // atomic edge ID generator
	nodes      map[string]*Node // node ID -> Node
	edges      map[string]*Edge // edge ID -> Edge

	// adjacency[from][to] is the set of edge IDs directed from -> to.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
}
