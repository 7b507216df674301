// Package postroute solves the Route Inspection (Chinese Postman) Problem on
// real-world street networks: find a closed tour that traverses every street
// segment at least once while minimizing the extra distance spent on
// revisited segments.
//
// The module is organized as small single-purpose packages:
//
//   - core     - the weighted directed multigraph model (nodes with optional
//     geographic attributes, parallel edges preserved distinctly).
//   - dijkstra - single-source shortest paths with non-negative weights,
//     optionally ignoring edge direction.
//   - eulerian - degree balance, odd-degree node detection, strong
//     connectivity and undirected components.
//   - matching - minimum-weight perfect matching of odd-degree nodes over
//     shortest-path distances.
//   - augment  - edge duplication along matched paths to even out degrees.
//   - circuit  - Eulerian circuit construction (Hierholzer) with a DFS
//     fallback and largest-component restriction.
//   - stats    - route length, coverage and repetition metrics.
//   - postman  - the solve facade tying the pipeline together and returning
//     structured diagnostics alongside the result.
//
// Start with postman.Solve; reach for the sub-packages directly when you need
// only one stage of the pipeline.
package postroute
