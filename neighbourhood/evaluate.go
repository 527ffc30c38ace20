package neighbourhood

import (
	"sort"

	"github.com/flightcontest/solver/graph"
	"github.com/flightcontest/solver/semimatrix"
)

// buildEdits computes the 3 or 4 replacement edges for swapping the
// cities visited on days j and i (1 <= j < i <= len(path)-2), returning
// ok=false if any required edge is missing from the store.
func buildEdits(path []graph.Edge, store *graph.Store, i, j int) ([]Edit, bool) {
	a := path[j].Src
	b := path[i].Src

	lo, ok0 := store.Lookup(path[j-1].Src, j-1, b)
	if !ok0 {
		return nil, false
	}

	if i == j+1 {
		mid, ok1 := store.Lookup(b, j, a)
		hi, ok2 := store.Lookup(a, i, path[i].Dst)
		if !ok1 || !ok2 {
			return nil, false
		}
		return []Edit{{j - 1, lo}, {j, mid}, {i, hi}}, true
	}

	midJ, ok1 := store.Lookup(b, j, path[j].Dst)
	midI, ok2 := store.Lookup(path[i-1].Src, i-1, a)
	hi, ok3 := store.Lookup(a, i, path[i].Dst)
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}
	return []Edit{{j - 1, lo}, {j, midJ}, {i - 1, midI}, {i, hi}}, true
}

// delta returns (new edge prices sum) - (old edge prices sum) for the
// positions touched by edits.
func delta(path []graph.Edge, edits []Edit) int {
	d := 0
	for _, e := range edits {
		d += e.Edge.Price - path[e.Pos].Price
	}
	return d
}

// candidate is one fully evaluated, structurally valid (i,j) pair and its
// tabu status.
type candidate struct {
	move Move
	tabu bool
}

// enumerate walks every (i,j), 1 <= j < i <= D-2, building the valid ones.
func enumerate(path []graph.Edge, store *graph.Store, currentCost int, tabuM *semimatrix.Matrix) []candidate {
	d := len(path)
	var out []candidate
	for i := 1; i <= d-2; i++ {
		for j := 1; j < i; j++ {
			edits, ok := buildEdits(path, store, i, j)
			if !ok {
				continue
			}
			nc := currentCost + delta(path, edits)
			tb, err := tabuM.Applies(i, j)
			if err != nil {
				continue
			}
			out = append(out, candidate{
				move: Move{I: i, J: j, Edits: edits, NewCost: nc},
				tabu: tb,
			})
		}
	}
	return out
}

// Evaluate selects the driver's next move: the best improving move if it
// beats incumbentCost (aspiration overrides tabu status here), otherwise
// the least frequency-penalized non-tabu move. found is false if no
// structurally valid move exists at all, or every valid move is tabu and
// none beats the incumbent.
func Evaluate(
	path []graph.Edge,
	store *graph.Store,
	tabuM, freqM *semimatrix.Matrix,
	minPrice, currentCost, incumbentCost int,
) (Move, bool) {
	candidates := enumerate(path, store, currentCost, tabuM)
	if len(candidates) == 0 {
		return Move{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.move.NewCost < best.move.NewCost ||
			(c.move.NewCost == best.move.NewCost && less(c.move, best.move)) {
			best = c
		}
	}
	if best.move.NewCost < incumbentCost {
		return best.move, true
	}

	var penalized []candidate
	for _, c := range candidates {
		if !c.tabu {
			penalized = append(penalized, c)
		}
	}
	if len(penalized) == 0 {
		return Move{}, false
	}
	sort.SliceStable(penalized, func(a, b int) bool {
		pa := penalty(penalized[a].move, freqM, minPrice)
		pb := penalty(penalized[b].move, freqM, minPrice)
		if pa != pb {
			return pa < pb
		}
		return less(penalized[a].move, penalized[b].move)
	})
	return penalized[0].move, true
}

// LeastFrequentValidMove scans every structurally valid (i,j) pair and
// returns the one with the smallest recorded frequency, ignoring tabu
// status entirely. It is the diversification fallback: called when the
// search has stagnated, to force a move into an under-explored region of
// the neighbourhood regardless of whether it happens to be tabu.
func LeastFrequentValidMove(path []graph.Edge, store *graph.Store, freqM *semimatrix.Matrix, currentCost int) (Move, bool) {
	d := len(path)
	var best Move
	found := false
	var bestFreq int64

	for i := 1; i <= d-2; i++ {
		for j := 1; j < i; j++ {
			edits, ok := buildEdits(path, store, i, j)
			if !ok {
				continue
			}
			f, err := freqM.Get(i, j)
			if err != nil {
				continue
			}
			cand := Move{I: i, J: j, Edits: edits, NewCost: currentCost + delta(path, edits)}
			if !found || f < bestFreq || (f == bestFreq && less(cand, best)) {
				best, bestFreq, found = cand, f, true
			}
		}
	}
	return best, found
}

// penalty is cost(move) + minimal_edge_price * frequency(i,j).
func penalty(m Move, freqM *semimatrix.Matrix, minPrice int) int {
	f, err := freqM.Get(m.I, m.J)
	if err != nil {
		f = 0
	}
	return m.NewCost + minPrice*int(f)
}

// less breaks ties deterministically: smallest i, then smallest j.
func less(a, b Move) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}
