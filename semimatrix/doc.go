// Package semimatrix implements a packed lower-triangular counter matrix,
// addressed by (i, j) with i > j >= 0, used in two unrelated roles by the
// tabu search driver:
//
//   - tabu role: Set stamps a move as forbidden as of the current iteration;
//     Applies reports whether that stamp is still within the tenure window.
//   - frequency role: Inc counts how often a move has been applied; Get
//     reads a pair's count, and Min finds the least-visited pair over the
//     whole triangle. Diversification reads counts through Get, via
//     neighbourhood.LeastFrequentValidMove, rather than through Min.
//
// Both roles share the same flat storage and accessor shape (adapted from
// a dense row-major layout to a packed triangle, since only half the cells
// of a symmetric D x D relation are ever addressed), so the driver
// allocates two independent Matrix values rather than two different types.
package semimatrix
