// Package neighbourhood enumerates the 2-swap moves available on a tour
// and selects the next move for the tabu driver to apply: the best
// improving move (with aspiration overriding tabu status), falling back
// to the least frequency-penalized non-tabu move.
//
// A move (i, j), 1 <= j < i <= D-2, swaps the cities visited on days i and
// j. Swapping adjacent days rewires three edges; swapping non-adjacent
// days rewires four. A move is only a candidate if every rewired edge
// exists in the graph store on its required day.
package neighbourhood
