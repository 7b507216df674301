// Package matching pairs off the odd-degree nodes of a street network at
// minimum total shortest-path distance, producing the paths along which the
// augmenter will duplicate edges.
//
// Pipeline per call:
//
//  1. Group the odd nodes by undirected connected component. Pairs that
//     straddle components have no connecting path (the NoPathFound case) and
//     are excluded up front; the handshake lemma guarantees every component
//     holds an even number of odd-degree nodes, so each group still admits a
//     perfect matching.
//  2. Run Dijkstra (direction-blind, with predecessors) from every odd node
//     of a group to obtain the complete auxiliary graph of pairwise
//     shortest-path distances.
//  3. Solve minimum-weight perfect matching on the auxiliary graph: exact
//     subset dynamic programming for groups up to ExactLimit nodes
//     (O(k^2 * 2^k)), greedy nearest-neighbor pairing beyond that.
//  4. Reconstruct the full node path for every matched pair from the
//     predecessor maps.
//
// Direction is ignored for path-finding because augmentation only needs a
// connecting path, not a directed one.
//
// The Report returned alongside the pairs carries the diagnostics a caller
// would otherwise have to log blind: skipped unreachable pairs, groups
// solved greedily, nodes left unmatched.
package matching
