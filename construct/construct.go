package construct

import (
	"github.com/flightcontest/solver/graph"
	"github.com/flightcontest/solver/tour"
)

// frame holds the candidate edges available at one day of the search,
// already sorted cheapest-first, and how far into them we have tried.
type frame struct {
	candidates []graph.Edge
	next       int
}

// engine carries the dense mutable state of one search: the path taken so
// far, which nodes are visited, and one frame per day currently open on
// the work stack.
type engine struct {
	store   *graph.Store
	start   int
	d       int
	visited []bool
	path    []graph.Edge
	frames  []frame
}

// Construct runs the greedy depth-first Hamiltonian search described by
// the package doc: cheapest candidates first, chronological backtracking,
// first feasible tour wins. It returns ErrInfeasible if the work stack
// empties before reaching day D.
func Construct(store *graph.Store, start, d int) (tour.Tour, error) {
	e := &engine{
		store:   store,
		start:   start,
		d:       d,
		visited: make([]bool, d),
		path:    make([]graph.Edge, 0, d),
		frames:  make([]frame, 0, d),
	}
	e.visited[start] = true

	for {
		day := len(e.path)
		if day == d {
			return tour.New(append([]graph.Edge(nil), e.path...)), nil
		}
		if day == len(e.frames) {
			e.frames = append(e.frames, e.buildFrame(day))
		}
		f := &e.frames[day]
		if f.next >= len(f.candidates) {
			if !e.backtrack() {
				return tour.Tour{}, ErrInfeasible
			}
			continue
		}
		edge := f.candidates[f.next]
		f.next++
		e.advance(edge)
	}
}

// buildFrame computes the candidate edges for the given day in ascending
// price order, filtered to destinations that are either unvisited, or
// equal to start on the final day (closing the loop).
func (e *engine) buildFrame(day int) frame {
	src := e.start
	if day > 0 {
		src = e.path[day-1].Dst
	}
	all := e.store.SortedOutgoing(src, day)
	out := make([]graph.Edge, 0, len(all))
	for _, edge := range all {
		if edge.Dst == e.start {
			if day == e.d-1 {
				out = append(out, edge)
			}
			continue
		}
		if !e.visited[edge.Dst] {
			out = append(out, edge)
		}
	}
	return frame{candidates: out}
}

// advance takes edge, extending the path by one day.
func (e *engine) advance(edge graph.Edge) {
	e.path = append(e.path, edge)
	e.visited[edge.Dst] = true
}

// backtrack drops the exhausted frame of the current day and pops the last
// edge taken, so the previous day's frame resumes at its next candidate,
// returning false once the first day's frame is itself exhausted (the
// whole search space has been tried).
//
// start is never unmarked as visited here, even though the closing edge's
// destination is start: start is visited for the entire search, from
// before day 0 through the final day, and must stay that way across
// backtracking for the Hamiltonian invariant to hold.
func (e *engine) backtrack() bool {
	day := len(e.path)
	e.frames = e.frames[:day]
	if day == 0 {
		return false
	}
	last := e.path[day-1]
	e.path = e.path[:day-1]
	if last.Dst != e.start {
		e.visited[last.Dst] = false
	}
	return true
}
