package graph

import "errors"

// Sentinel errors. Callers should compare with errors.Is; do not wrap these
// with fmt.Errorf where the sentinel alone is sufficient context.
var (
	// ErrEmptyCode indicates an attempt to intern an empty node code.
	ErrEmptyCode = errors.New("graph: node code must be non-empty")

	// ErrDayOutOfRange indicates an edge's day index falls outside [0, D).
	ErrDayOutOfRange = errors.New("graph: day index out of range")

	// ErrPriceOutOfRange indicates an edge price exceeds the wire limit (2^16-1).
	ErrPriceOutOfRange = errors.New("graph: price exceeds maximum of 65535")

	// ErrUnknownNode indicates a node index outside [0, D).
	ErrUnknownNode = errors.New("graph: unknown node index")

	// ErrDimensionMismatch indicates the discovered node count does not equal
	// the discovered day count, violating the N == D precondition.
	ErrDimensionMismatch = errors.New("graph: node count does not match day count")

	// ErrNoStart indicates the header start code was never seen among the edges.
	ErrNoStart = errors.New("graph: start code never appears as a node")

	// ErrEmptyInstance indicates zero edges were parsed.
	ErrEmptyInstance = errors.New("graph: no edges in instance")
)
