package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/postroute/core"
	"github.com/katalvlaran/postroute/dijkstra"
)

// TestDijkstra_AgainstGonumOracle cross-checks our distances against an
// independent implementation on random sparse graphs. gonum's simple graphs
// reject parallel edges and self-loops, so the generator sticks to distinct
// u < v pairs; the direction-blind mode makes both sides see the same
// undirected topology.
func TestDijkstra_AgainstGonumOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 25; trial++ {
		n := 4 + rng.Intn(12)

		g := core.NewGraph()
		oracle := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddNode(nodeID(i)))
			oracle.AddNode(simple.Node(int64(i)))
		}

		seen := map[[2]int]bool{}
		edges := n + rng.Intn(2*n)
		for k := 0; k < edges; k++ {
			u := rng.Intn(n)
			v := rng.Intn(n)
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			if seen[[2]int{u, v}] {
				continue
			}
			seen[[2]int{u, v}] = true

			w := 1 + rng.Float64()*99
			_, err := g.AddEdge(nodeID(u), nodeID(v), w)
			require.NoError(t, err)
			oracle.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(u)),
				T: simple.Node(int64(v)),
				W: w,
			})
		}

		src := rng.Intn(n)
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(nodeID(src)), dijkstra.WithIgnoreDirection())
		require.NoError(t, err)

		shortest := path.DijkstraFrom(oracle.Node(int64(src)), oracle)
		for v := 0; v < n; v++ {
			want := shortest.WeightTo(int64(v))
			got := dist[nodeID(v)]
			if math.IsInf(want, 1) {
				require.True(t, math.IsInf(got, 1),
					"trial %d: %s unreachable for oracle but not for us", trial, nodeID(v))
				continue
			}
			require.InDelta(t, want, got, 1e-9, "trial %d: distance to %s", trial, nodeID(v))
		}
	}
}

func nodeID(i int) string { return fmt.Sprintf("n%d", i) }
