package neighbourhood

import "github.com/flightcontest/solver/graph"

// Edit is one rewritten position in the tour: on application, path[Pos]
// becomes Edge.
type Edit struct {
	Pos  int
	Edge graph.Edge
}

// Move is a fully evaluated, structurally valid 2-swap candidate: swapping
// the cities visited on days J and I would rewrite Edits and change the
// tour's total cost to NewCost.
type Move struct {
	I, J    int
	Edits   []Edit
	NewCost int
}

// Apply rewrites path in place according to m. Callers are responsible
// for also recording the move in the tabu/frequency matrices.
func Apply(path []graph.Edge, m Move) {
	for _, e := range m.Edits {
		path[e.Pos] = e.Edge
	}
}
