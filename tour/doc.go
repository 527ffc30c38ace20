// Package tour defines the Hamiltonian tour type shared by the greedy
// constructor and the tabu driver, plus the structural invariants every
// tour must satisfy (see the Hamiltonian/chain/closure checks in Validate).
//
// A Tour is a thin wrapper around an ordered sequence of graph.Edge; it
// carries no reference to the graph.Store that produced it, keeping the
// read-only graph/matrix layer separate from the tour/path layer that only
// ever holds indices (or, here, edges) into it.
package tour
