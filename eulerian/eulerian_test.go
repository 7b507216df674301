package eulerian_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postroute/core"
	"github.com/katalvlaran/postroute/eulerian"
)

// triangle returns the directed cycle 1 -> 2 -> 3 -> 1.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}} {
		_, err := g.AddEdge(e[0], e[1], 100)
		require.NoError(t, err)
	}

	return g
}

func TestIsEulerian_DirectedTriangle(t *testing.T) {
	require.True(t, eulerian.IsEulerian(triangle(t)))
}

func TestIsEulerian_EmptyAndNil(t *testing.T) {
	require.True(t, eulerian.IsEulerian(nil))
	require.True(t, eulerian.IsEulerian(core.NewGraph()))
}

func TestIsEulerian_UnbalancedNode(t *testing.T) {
	g := triangle(t)
	_, err := g.AddEdge("1", "3", 50) // node 1 now has out 2, in 1
	require.NoError(t, err)

	require.False(t, eulerian.IsEulerian(g))
}

func TestIsEulerian_BalancedButNotStronglyConnected(t *testing.T) {
	// Two disjoint directed triangles: every node balanced, no connectivity.
	g := triangle(t)
	for _, e := range [][2]string{{"4", "5"}, {"5", "6"}, {"6", "4"}} {
		_, err := g.AddEdge(e[0], e[1], 100)
		require.NoError(t, err)
	}

	require.False(t, eulerian.IsEulerian(g))
}

func TestIsEulerian_BidirectionalStar(t *testing.T) {
	// Center 0 connected both ways to 1..4: balanced everywhere and the
	// round trips make it strongly connected.
	g := core.NewGraph()
	for i, w := range []float64{100, 200, 300, 400} {
		leaf := strconv.Itoa(i + 1)
		_, err := g.AddEdge("0", leaf, w)
		require.NoError(t, err)
		_, err = g.AddEdge(leaf, "0", w)
		require.NoError(t, err)
	}

	require.True(t, eulerian.StronglyConnected(g))
	require.True(t, eulerian.IsEulerian(g))
}

func TestOddNodes_PathGraph(t *testing.T) {
	// a - b - c: endpoints odd, middle even.
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "c"}, eulerian.OddNodes(g))
	require.Empty(t, eulerian.OddNodes(triangle(t)))
}

// TestOddNodes_EvenCardinality is the handshake-lemma property: any finite
// multigraph has an even number of odd-degree nodes.
func TestOddNodes_EvenCardinality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		g := core.NewGraph()
		n := 2 + rng.Intn(10)
		edges := rng.Intn(3 * n)
		for k := 0; k < edges; k++ {
			u := strconv.Itoa(rng.Intn(n))
			v := strconv.Itoa(rng.Intn(n))
			_, err := g.AddEdge(u, v, 1+rng.Float64())
			require.NoError(t, err)
		}

		require.Zero(t, len(eulerian.OddNodes(g))%2, "trial %d", trial)
	}
}

func TestStronglyConnected_SingleAndIsolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("solo"))
	require.True(t, eulerian.StronglyConnected(g))

	require.NoError(t, g.AddNode("other"))
	require.False(t, eulerian.StronglyConnected(g))
}

func TestComponents_OrderingAndMembership(t *testing.T) {
	// One 3-node component, one 2-node, one isolated.
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("x", "y", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddNode("z"))

	comps := eulerian.Components(g)
	require.Len(t, comps, 3)
	require.Equal(t, []string{"a", "b", "c"}, comps[0], "largest component first")
	require.Equal(t, []string{"x", "y"}, comps[1])
	require.Equal(t, []string{"z"}, comps[2])

	require.Nil(t, eulerian.Components(core.NewGraph()))
}

// Self-loops add two to a node's degree and must not flip parity.
func TestOddNodes_SelfLoopKeepsParity(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "a", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, eulerian.OddNodes(g))
}
