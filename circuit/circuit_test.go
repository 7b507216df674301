package circuit_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postroute/circuit"
	"github.com/katalvlaran/postroute/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}} {
		_, err := g.AddEdge(e[0], e[1], 100)
		require.NoError(t, err)
	}

	return g
}

// requireEachEdgeOnce asserts every edge of g appears in c exactly once.
func requireEachEdgeOnce(t *testing.T, g *core.Graph, c circuit.Circuit) {
	t.Helper()
	seen := map[string]int{}
	for _, s := range c {
		seen[s.EdgeID]++
	}
	require.Len(t, seen, g.EdgeCount())
	for eid, n := range seen {
		require.Equal(t, 1, n, "edge %s traversed %d times", eid, n)
	}
}

func TestBuild_Validation(t *testing.T) {
	_, _, err := circuit.Build(nil)
	require.ErrorIs(t, err, circuit.ErrEmptyGraph)

	_, _, err = circuit.Build(core.NewGraph())
	require.ErrorIs(t, err, circuit.ErrEmptyGraph)

	_, _, err = circuit.Build(triangle(t), circuit.WithStart("ghost"))
	require.ErrorIs(t, err, circuit.ErrStartNotFound)
}

func TestBuild_NodesButNoEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a"))

	c, rep, err := circuit.Build(g)
	require.NoError(t, err)
	require.Empty(t, c)
	require.False(t, rep.Fallback)
}

func TestBuild_Triangle_ClosedEveryEdgeOnce(t *testing.T) {
	g := triangle(t)

	c, rep, err := circuit.Build(g)
	require.NoError(t, err)
	require.Len(t, c, 3)
	require.True(t, c.Closed())
	require.False(t, rep.Fallback)
	require.Zero(t, rep.DroppedComponents)
	require.Equal(t, "1", rep.Start, "defaults to the smallest node ID")
	requireEachEdgeOnce(t, g, c)
}

func TestBuild_BidirectionalStar_CoversAllParallels(t *testing.T) {
	// Center 0, leaves 1..4, one edge each way: 8 edges, all even degrees.
	g := core.NewGraph()
	for i := 1; i <= 4; i++ {
		leaf := strconv.Itoa(i)
		_, err := g.AddEdge("0", leaf, float64(100*i))
		require.NoError(t, err)
		_, err = g.AddEdge(leaf, "0", float64(100*i))
		require.NoError(t, err)
	}

	c, rep, err := circuit.Build(g)
	require.NoError(t, err)
	require.Len(t, c, 8)
	require.True(t, c.Closed())
	require.False(t, rep.Fallback)
	requireEachEdgeOnce(t, g, c)
}

func TestBuild_WithStart(t *testing.T) {
	c, rep, err := circuit.Build(triangle(t), circuit.WithStart("3"))
	require.NoError(t, err)
	require.Equal(t, "3", rep.Start)
	require.Equal(t, "3", c[0].From)
	require.Equal(t, "3", c[len(c)-1].To)
}

// Two disjoint triangles: the tour restricts to one component and reports
// the dropped remainder.
func TestBuild_DisconnectedRestrictsToComponent(t *testing.T) {
	g := triangle(t)
	for _, e := range [][2]string{{"4", "5"}, {"5", "6"}, {"6", "4"}} {
		_, err := g.AddEdge(e[0], e[1], 100)
		require.NoError(t, err)
	}

	c, rep, err := circuit.Build(g)
	require.NoError(t, err)
	require.Len(t, c, 3)
	require.True(t, c.Closed())
	require.Equal(t, 1, rep.DroppedComponents)
	require.Equal(t, 3, rep.DroppedEdges)

	// Steering the start into the other triangle flips the choice.
	c, rep, err = circuit.Build(g, circuit.WithStart("5"))
	require.NoError(t, err)
	require.Len(t, c, 3)
	require.Equal(t, "5", c[0].From)
	require.Equal(t, 3, rep.DroppedEdges)
}

// A start node in an edgeless component yields an empty tour, not a fallback.
func TestBuild_StartOnIsolatedNode(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddNode("island"))

	c, rep, err := circuit.Build(g, circuit.WithStart("island"))
	require.NoError(t, err)
	require.Empty(t, c)
	require.False(t, rep.Fallback)
	require.Equal(t, 3, rep.DroppedEdges)
}

// Odd degrees break the Eulerian invariant: the builder must degrade to the
// depth-first approximation and flag it.
func TestBuild_FallbackOnOddDegrees(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)

	c, rep, err := circuit.Build(g)
	require.NoError(t, err)
	require.True(t, rep.Fallback)
	require.NotEmpty(t, c)
	require.False(t, c.Closed())

	// Even degraded, no edge is emitted twice.
	seen := map[string]bool{}
	for _, s := range c {
		require.False(t, seen[s.EdgeID])
		seen[s.EdgeID] = true
	}
}

func TestCircuit_Closed(t *testing.T) {
	require.False(t, circuit.Circuit{}.Closed())
	require.False(t, circuit.Circuit{{From: "a", To: "b"}}.Closed())
	require.True(t, circuit.Circuit{{From: "a", To: "b"}, {From: "b", To: "a"}}.Closed())
	require.False(t, circuit.Circuit{{From: "a", To: "b"}, {From: "c", To: "a"}}.Closed())
}

// Self-loops are one traversal contributing even degree.
func TestBuild_SelfLoop(t *testing.T) {
	g := triangle(t)
	_, err := g.AddEdge("2", "2", 10)
	require.NoError(t, err)

	c, rep, err := circuit.Build(g)
	require.NoError(t, err)
	require.Len(t, c, 4)
	require.True(t, c.Closed())
	require.False(t, rep.Fallback)
	requireEachEdgeOnce(t, g, c)
}
