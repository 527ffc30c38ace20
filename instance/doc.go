// Package instance reads the problem instance from an input stream and
// renders the final answer to an output stream. The wire format is
// deliberately simple — a header line plus one space-separated edge per
// line — so it is read directly with bufio.Scanner and strings.Fields
// rather than through a general CSV library.
package instance
