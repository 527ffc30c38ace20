package neighbourhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flightcontest/solver/graph"
	"github.com/flightcontest/solver/neighbourhood"
	"github.com/flightcontest/solver/semimatrix"
)

// buildSwapInstance is scenario 3 from the testable-properties list: a
// D=4 instance whose greedy cheap-first tour costs 10, but swapping the
// cities visited on days 1 and 2 drops it to 7.
func buildSwapInstance(t *testing.T) (*graph.Store, []graph.Edge) {
	t.Helper()
	b := graph.NewBuilder()
	n0, _ := b.Intern("N0")
	n1, _ := b.Intern("N1")
	n2, _ := b.Intern("N2")
	n3, _ := b.Intern("N3")

	// The initial (greedy) tour: 0->1->2->3->0, cost 10.
	require.NoError(t, b.AddEdge(n0, n1, 0, 1))
	require.NoError(t, b.AddEdge(n1, n2, 1, 3))
	require.NoError(t, b.AddEdge(n2, n3, 2, 3))
	require.NoError(t, b.AddEdge(n3, n0, 3, 3))

	// Replacement edges needed to swap days 1 and 2 (cities N2, N1):
	// day0 0->2, day1 2->1, day2 1->3, day3 unchanged (3->0).
	require.NoError(t, b.AddEdge(n0, n2, 0, 1))
	require.NoError(t, b.AddEdge(n2, n1, 1, 1))
	require.NoError(t, b.AddEdge(n1, n3, 2, 2))

	store, start, err := b.Build("N0")
	require.NoError(t, err)

	path := []graph.Edge{
		mustLookup(t, store, n0, 0, n1),
		mustLookup(t, store, n1, 1, n2),
		mustLookup(t, store, n2, 2, n3),
		mustLookup(t, store, n3, 3, n0),
	}
	require.Equal(t, start, n0)
	return store, path
}

func mustLookup(t *testing.T, store *graph.Store, src, day, dst int) graph.Edge {
	t.Helper()
	e, ok := store.Lookup(src, day, dst)
	require.True(t, ok)
	return e
}

func newMatrices(t *testing.T, d int) (*semimatrix.Matrix, *semimatrix.Matrix) {
	t.Helper()
	threshold := int64(d)
	tabuM, err := semimatrix.New(d, threshold)
	require.NoError(t, err)
	freqM, err := semimatrix.New(d, threshold)
	require.NoError(t, err)
	return tabuM, freqM
}

func TestEvaluate_FindsImprovingSwap(t *testing.T) {
	store, path := buildSwapInstance(t)
	tabuM, freqM := newMatrices(t, len(path)-1)

	move, found := neighbourhood.Evaluate(path, store, tabuM, freqM, store.MinPrice(), 10, 10)
	require.True(t, found)
	require.Equal(t, 7, move.NewCost)
	require.Equal(t, 2, move.I)
	require.Equal(t, 1, move.J)

	neighbourhood.Apply(path, move)
	sum := 0
	for _, e := range path {
		sum += e.Price
	}
	require.Equal(t, 7, sum, "applying the move must actually produce the predicted cost")
}

func TestEvaluate_NoMoveOnTooShortTour(t *testing.T) {
	// D=3 leaves no (i,j) with 1<=j<i<=D-2=1: no candidates exist.
	store, _ := buildTriangleForNeighbourhood(t)
	path := []graph.Edge{
		mustLookup(t, store, 0, 0, 1),
		mustLookup(t, store, 1, 1, 2),
		mustLookup(t, store, 2, 2, 0),
	}
	tabuM, freqM := newMatrices(t, 2)
	_, found := neighbourhood.Evaluate(path, store, tabuM, freqM, store.MinPrice(), 3, 3)
	require.False(t, found)
}

func buildTriangleForNeighbourhood(t *testing.T) (*graph.Store, int) {
	t.Helper()
	b := graph.NewBuilder()
	a, _ := b.Intern("AAA")
	bb, _ := b.Intern("BBB")
	cc, _ := b.Intern("CCC")
	require.NoError(t, b.AddEdge(a, bb, 0, 1))
	require.NoError(t, b.AddEdge(bb, cc, 1, 1))
	require.NoError(t, b.AddEdge(cc, a, 2, 1))
	store, start, err := b.Build("AAA")
	require.NoError(t, err)
	return store, start
}

func TestEvaluate_AspirationOverridesTabu(t *testing.T) {
	store, path := buildSwapInstance(t)
	tabuM, freqM := newMatrices(t, len(path)-1)
	require.NoError(t, tabuM.Set(2, 1)) // mark the only improving move tabu

	move, found := neighbourhood.Evaluate(path, store, tabuM, freqM, store.MinPrice(), 10, 10)
	require.True(t, found, "aspiration must admit the tabu move since it beats the incumbent")
	require.Equal(t, 7, move.NewCost)
}

func TestEvaluate_TabuExcludesNonImprovingMove(t *testing.T) {
	store, path := buildSwapInstance(t)
	tabuM, freqM := newMatrices(t, len(path)-1)
	require.NoError(t, tabuM.Set(2, 1))

	// incumbentCost already at 7: the only valid move no longer beats it,
	// so aspiration does not apply and the tabu move must be excluded.
	_, found := neighbourhood.Evaluate(path, store, tabuM, freqM, store.MinPrice(), 10, 7)
	require.False(t, found)
}
