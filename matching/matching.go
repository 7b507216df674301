package matching

import (
	"sort"

	"github.com/katalvlaran/postroute/core"
	"github.com/katalvlaran/postroute/dijkstra"
	"github.com/katalvlaran/postroute/eulerian"
)

// MinWeightPairs computes a minimum-weight perfect matching of the given
// odd-degree nodes, where the weight of a pair is the shortest-path distance
// between its nodes over the undirected projection of g.
//
// Steps:
//  1. Validate inputs; empty odd set short-circuits to no pairs.
//  2. Group odd nodes by undirected component; count cross-component pairs
//     as skipped (no connecting path exists).
//  3. Per group: all-pairs shortest paths via repeated Dijkstra, then exact
//     DP matching (group size <= ExactLimit) or greedy pairing.
//  4. Reconstruct each matched pair's node path from the predecessor maps.
//
// The returned pairs are sorted by (A, B). Degradation is graceful: a group
// that cannot be fully paired yields a partial matching and the leftovers
// are listed in Report.Unmatched rather than failing the call.
//
// Complexity: O(n * (V+E) log V) for the Dijkstra sweeps plus
// O(k^2 * 2^k) per exact group of size k.
func MinWeightPairs(g *core.Graph, odd []string, opts ...Option) ([]Pair, Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var rep Report
	if g == nil {
		return nil, rep, ErrNilGraph
	}
	rep.OddNodes = len(odd)
	if len(odd) == 0 {
		return nil, rep, nil
	}
	if len(odd)%2 == 1 {
		return nil, rep, ErrOddCount
	}

	// 2) Group by undirected component.
	compOf := make(map[string]int)
	for ci, comp := range eulerian.Components(g) {
		for _, id := range comp {
			compOf[id] = ci
		}
	}
	groups := make(map[int][]string)
	for _, id := range odd {
		groups[compOf[id]] = append(groups[compOf[id]], id)
	}

	// Every cross-group pair is a skipped NoPathFound pair.
	intra := 0
	for _, grp := range groups {
		intra += len(grp) * (len(grp) - 1) / 2
	}
	rep.SkippedPairs = len(odd)*(len(odd)-1)/2 - intra

	// Deterministic group order.
	cis := make([]int, 0, len(groups))
	for ci := range groups {
		cis = append(cis, ci)
	}
	sort.Ints(cis)

	// 3) Match inside each group.
	var pairs []Pair
	for _, ci := range cis {
		grp := groups[ci]
		sort.Strings(grp)
		if len(grp) < 2 {
			rep.Unmatched = append(rep.Unmatched, grp...)
			continue
		}
		// Defensive: the handshake lemma makes per-component odd counts
		// even, but a lopsided group must still degrade, not fail.
		if len(grp)%2 == 1 {
			rep.Unmatched = append(rep.Unmatched, grp[len(grp)-1])
			grp = grp[:len(grp)-1]
		}

		got, err := matchGroup(g, grp, &cfg, &rep)
		if err != nil {
			return nil, rep, err
		}
		pairs = append(pairs, got...)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}

		return pairs[i].B < pairs[j].B
	})

	return pairs, rep, nil
}

// matchGroup pairs one even-sized, same-component group of odd nodes.
func matchGroup(g *core.Graph, grp []string, cfg *Options, rep *Report) ([]Pair, error) {
	k := len(grp)

	// All-pairs shortest paths among the group: one direction-blind Dijkstra
	// per member, keeping the predecessor maps for path reconstruction.
	dists := make([]map[string]float64, k)
	prevs := make([]map[string]string, k)
	for i, src := range grp {
		d, p, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath(), dijkstra.WithIgnoreDirection())
		if err != nil {
			return nil, err
		}
		dists[i], prevs[i] = d, p
	}

	// Complete auxiliary matrix of pairwise distances.
	mat := make([][]float64, k)
	for i := range mat {
		mat[i] = make([]float64, k)
		for j := range mat[i] {
			mat[i][j] = dists[i][grp[j]]
		}
	}

	// Exact where affordable, greedy beyond.
	var matched [][2]int
	if k <= cfg.ExactLimit {
		matched = exactPairs(mat)
	} else {
		rep.GreedyGroups++
		matched = greedyPairs(mat)
	}

	// 4) Materialize pairs with reconstructed paths.
	pairs := make([]Pair, 0, len(matched))
	for _, m := range matched {
		i, j := m[0], m[1]
		a, b := grp[i], grp[j]
		path, err := dijkstra.PathTo(prevs[i], a, b)
		if err != nil {
			// Same component, so unreachable pairs cannot occur; treat a
			// failed reconstruction as an unmatched couple, not a fatality.
			rep.Unmatched = append(rep.Unmatched, a, b)
			continue
		}
		if a > b {
			a, b = b, a
			reverse(path)
		}
		pairs = append(pairs, Pair{A: a, B: b, Path: path, Dist: mat[i][j]})
	}

	return pairs, nil
}

// reverse flips a node path in place.
func reverse(p []string) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
