package instance

import (
	"fmt"
	"io"

	"github.com/flightcontest/solver/graph"
	"github.com/flightcontest/solver/tour"
)

// Write renders the total cost on the first line, followed by one
// "SRC DST DAY PRICE" line per edge of t, in day order, using the
// original textual node codes.
func Write(w io.Writer, store *graph.Store, t tour.Tour) error {
	if _, err := fmt.Fprintln(w, t.Cost()); err != nil {
		return err
	}
	for _, e := range t.Path {
		src, err := store.Code(e.Src)
		if err != nil {
			return err
		}
		dst, err := store.Code(e.Dst)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s %d %d\n", src, dst, e.Day, e.Price); err != nil {
			return err
		}
	}
	return nil
}
