package graph

import "sort"

// Builder interns node codes into dense indices and accumulates edges during
// parsing. It is discarded once Build succeeds; the resulting Store never
// mutates again.
type Builder struct {
	codes   []string       // index -> code, in order of first appearance
	indices map[string]int // code -> index
	edges   []Edge         // raw edges, Src/Dst already resolved to indices
	maxDay  int            // highest day index seen + 1 (running day count)
	minPrice int           // smallest price seen across all edges; 0 if none
	haveEdge bool
}

// NewBuilder returns an empty Builder ready to intern nodes and accept edges.
func NewBuilder() *Builder {
	return &Builder{
		indices: make(map[string]int),
	}
}

// Intern returns the dense index for code, assigning a new one on first sight.
func (b *Builder) Intern(code string) (int, error) {
	if code == "" {
		return 0, ErrEmptyCode
	}
	if idx, ok := b.indices[code]; ok {
		return idx, nil
	}
	idx := len(b.codes)
	b.codes = append(b.codes, code)
	b.indices[code] = idx
	return idx, nil
}

// AddEdge records a directed route between already-interned src/dst indices.
// Duplicate (src, day, dst) triples overwrite earlier ones at Build time, per
// the input contract.
func (b *Builder) AddEdge(src, dst, day, price int) error {
	if day < 0 {
		return ErrDayOutOfRange
	}
	if price < 0 || price > MaxPrice {
		return ErrPriceOutOfRange
	}
	b.edges = append(b.edges, Edge{Src: src, Dst: dst, Day: day, Price: price})
	if day+1 > b.maxDay {
		b.maxDay = day + 1
	}
	if !b.haveEdge || price < b.minPrice {
		b.minPrice = price
		b.haveEdge = true
	}
	return nil
}

// Build freezes the accumulated nodes and edges into an immutable Store.
// It enforces the N == D precondition from the input contract: the number
// of distinct node codes must equal the highest day index plus one.
func (b *Builder) Build(startCode string) (*Store, int, error) {
	if len(b.edges) == 0 {
		return nil, 0, ErrEmptyInstance
	}
	n := len(b.codes)
	d := b.maxDay
	if n != d {
		return nil, 0, ErrDimensionMismatch
	}
	startIdx, ok := b.indices[startCode]
	if !ok {
		return nil, 0, ErrNoStart
	}

	table := make([]*Edge, n*n*n)
	for i := range b.edges {
		e := b.edges[i]
		if e.Day >= d {
			return nil, 0, ErrDayOutOfRange
		}
		table[idx(n, e.Src, e.Day, e.Dst)] = &b.edges[i]
	}

	s := &Store{
		n:        n,
		codes:    append([]string(nil), b.codes...),
		table:    table,
		minPrice: b.minPrice,
	}
	return s, startIdx, nil
}

// idx computes the flat offset into a dense n*n*n table for (src, day, dst).
func idx(n, src, day, dst int) int {
	return (src*n+day)*n + dst
}

// Store is an immutable day-indexed adjacency store: O(1) lookup by
// (src, day, dst), backed by a flat n*n*n array of optional edge pointers.
type Store struct {
	n        int
	codes    []string
	table    []*Edge
	minPrice int
}

// N returns the number of distinct nodes (equivalently, the tour length D).
func (s *Store) N() int { return s.n }

// Code returns the original textual node code for a dense index.
func (s *Store) Code(idx int) (string, error) {
	if idx < 0 || idx >= s.n {
		return "", ErrUnknownNode
	}
	return s.codes[idx], nil
}

// MinPrice returns the smallest edge price observed across the whole
// instance at parse time; used to scale the frequency-diversification
// penalty in package neighbourhood.
func (s *Store) MinPrice() int { return s.minPrice }

// Lookup returns the edge stored under (src, day, dst), if any.
func (s *Store) Lookup(src, day, dst int) (Edge, bool) {
	if src < 0 || src >= s.n || day < 0 || day >= s.n || dst < 0 || dst >= s.n {
		return Edge{}, false
	}
	e := s.table[idx(s.n, src, day, dst)]
	if e == nil {
		return Edge{}, false
	}
	return *e, true
}

// IterOutgoing returns every edge available from src on the given day, in no
// particular order. Callers that need a specific order (e.g. ascending
// price) must sort explicitly; the store never hides an implicit ordering.
func (s *Store) IterOutgoing(src, day int) []Edge {
	if src < 0 || src >= s.n || day < 0 || day >= s.n {
		return nil
	}
	out := make([]Edge, 0, s.n)
	base := (src*s.n + day) * s.n
	for dst := 0; dst < s.n; dst++ {
		if e := s.table[base+dst]; e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// sortByPriceAsc returns edges sorted ascending by price, tie-broken by
// destination index for determinism.
func sortByPriceAsc(edges []Edge) []Edge {
	out := append([]Edge(nil), edges...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].Dst < out[j].Dst
	})
	return out
}

// SortedOutgoing returns IterOutgoing(src, day) sorted ascending by price
// (cheapest first), tie-broken by destination index.
func (s *Store) SortedOutgoing(src, day int) []Edge {
	return sortByPriceAsc(s.IterOutgoing(src, day))
}
