// Package postman is the route-inspection facade: given a street network as
// a weighted directed multigraph, Solve plans a closed tour that traverses
// every street segment at least once with minimal extra distance.
//
// The pipeline mirrors the classic Chinese Postman construction:
//
//	analyze -> (match odd nodes -> augment) -> build circuit -> measure
//
// An already-Eulerian input skips matching and augmentation entirely. The
// solver operates on a private clone of the input graph and never mutates
// the caller's copy; each Solve call is independent, so calls may run
// concurrently on different graphs.
//
// Degraded inputs degrade the result, never crash it: unreachable odd-node
// pairs shrink the matching, disconnected remainders are dropped from the
// tour, a broken parity invariant downgrades the circuit to a depth-first
// approximation. Every such event is counted in Result.Diag so callers can
// decide for themselves what a degraded tour is worth.
//
// Only the undirected relaxation is solved optimally; directed-case
// optimality (respecting one-way streets during circuit construction) is
// explicitly not attempted.
package postman
