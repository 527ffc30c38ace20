// Package graph provides a day-indexed directed multigraph store for the
// flight-contest scheduling problem: routes between airports are only
// usable on the specific day they are quoted for.
//
// Design goals, in the spirit of a small focused store rather than a
// general-purpose graph library:
//   - O(1) existence/price lookup keyed by (src, day, dst).
//   - Dense backing array (no nested maps) since the hot neighbourhood
//     scan in package neighbourhood performs O(D^2) lookups per iteration.
//   - Immutable after construction: all edges are inserted once via
//     Builder, then Build() freezes the store.
package graph
