// Package stats derives route metrics from a produced circuit: traversal and
// distinct edge counts, total distance with unit-converted variants, and the
// share of the original street network the tour covers.
//
// Compute is a pure function of its inputs - no side effects, no mutation -
// and an empty circuit yields the zero Record rather than an error.
package stats
