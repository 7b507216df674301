// Package eulerian analyzes degree balance and connectivity of street-network
// graphs to decide whether a closed walk using every edge exactly once exists
// without augmentation.
//
// A directed graph admits an Eulerian circuit iff every node has equal
// in-degree and out-degree and the graph is strongly connected. Treated
// undirected, the obstruction is odd total degree: the set of odd-degree
// nodes (always of even cardinality, by the handshake lemma) is what the
// matcher pairs off and the augmenter fixes.
//
// All functions are purely computational: no errors, no mutation, and an
// empty graph yields vacuously true / empty results.
package eulerian
