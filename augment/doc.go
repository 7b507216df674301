// Package augment turns a non-Eulerian street network into an
// Eulerian-eligible one by duplicating edges along the matched shortest
// paths produced by package matching.
//
// For every consecutive node pair of every matched path, the corresponding
// original edge is looked up by endpoint pair - in both orientations, since
// the directed original may be stored either way - and a copy of it is
// inserted under a fresh ID, carrying the same length and street metadata.
// Originals are never removed or mutated; the input graph itself is cloned,
// never touched.
//
// Hops whose edge cannot be found in either orientation (which cannot happen
// for paths derived from the graph itself) are skipped and counted in the
// Report rather than failing the run. Augmenting with an empty pair list is
// a no-op clone, which makes augmentation idempotent on already-Eulerian
// graphs.
package augment
