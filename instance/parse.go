package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/flightcontest/solver/graph"
)

// Parse reads the header line (the start node's code) followed by one
// "SRC DST DAY PRICE" edge per line, and builds a graph.Store from them.
// It returns the store, the start node's dense index, and D (the store's
// node count, which graph.Builder.Build requires to equal the highest day
// index plus one).
func Parse(r io.Reader) (*graph.Store, int, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	startCode, ok := nextNonEmpty(sc)
	if !ok {
		return nil, 0, 0, ErrEmptyInput
	}

	b := graph.NewBuilder()
	for {
		line, ok := nextNonEmpty(sc)
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, 0, 0, ErrMalformedLine
		}
		day, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, 0, 0, ErrMalformedField
		}
		price, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, 0, 0, ErrMalformedField
		}
		src, err := b.Intern(fields[0])
		if err != nil {
			return nil, 0, 0, err
		}
		dst, err := b.Intern(fields[1])
		if err != nil {
			return nil, 0, 0, err
		}
		if err := b.AddEdge(src, dst, day, price); err != nil {
			return nil, 0, 0, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, 0, err
	}

	store, start, err := b.Build(startCode)
	if err != nil {
		return nil, 0, 0, err
	}
	return store, start, store.N(), nil
}

// nextNonEmpty scans forward to the next line with non-whitespace content.
func nextNonEmpty(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}
