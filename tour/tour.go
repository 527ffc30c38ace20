package tour

import (
	"fmt"
	"strings"

	"github.com/flightcontest/solver/graph"
)

// Tour is a closed sequence of D edges: Path[k] is the flight taken on
// day k. Path[0].Src is the start node and Path[D-1].Dst must equal it too.
type Tour struct {
	Path []graph.Edge
}

// New wraps path without copying it.
func New(path []graph.Edge) Tour {
	return Tour{Path: path}
}

// Cost sums the price of every edge in the tour.
func (t Tour) Cost() int {
	sum := 0
	for _, e := range t.Path {
		sum += e.Price
	}
	return sum
}

// Validate enforces the invariants from the data model:
//   - exactly D edges,
//   - Path[k].Day == k for every k,
//   - Path[k].Dst == Path[k+1].Src for k < D-1,
//   - Path[0].Src == Path[D-1].Dst == start,
//   - the multiset of Path[k].Src has exactly D distinct values (Hamiltonian).
func (t Tour) Validate(d, start int) error {
	if len(t.Path) != d {
		return ErrWrongLength
	}
	for k, e := range t.Path {
		if e.Day != k {
			return ErrDayMismatch
		}
		if k < d-1 && e.Dst != t.Path[k+1].Src {
			return ErrBrokenChain
		}
	}
	if t.Path[0].Src != start || t.Path[d-1].Dst != start {
		return ErrNotClosed
	}

	seen := make([]bool, d)
	for _, e := range t.Path {
		if e.Src < 0 || e.Src >= d || seen[e.Src] {
			return ErrNotHamiltonian
		}
		seen[e.Src] = true
	}
	for _, v := range seen {
		if !v {
			return ErrNotHamiltonian
		}
	}
	return nil
}

// Snapshot returns an independent copy of the tour; the backing edge slice
// is never shared with the original, so later in-place mutation of one
// does not affect the other. The tabu driver takes one on every improving
// move (O(D)).
func (t Tour) Snapshot() Tour {
	out := make([]graph.Edge, len(t.Path))
	copy(out, t.Path)
	return Tour{Path: out}
}

// DebugString renders a compact "SRC->DST@day($price)" chain for tests/logs.
func (t Tour) DebugString() string {
	var sb strings.Builder
	for i, e := range t.Path {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d->%d@%d($%d)", e.Src, e.Dst, e.Day, e.Price)
	}
	return sb.String()
}
