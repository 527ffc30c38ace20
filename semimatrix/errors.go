package semimatrix

import "errors"

var (
	// ErrBadDimension indicates New was called with d < 2.
	ErrBadDimension = errors.New("semimatrix: dimension must be at least 2")

	// ErrIndexOrder indicates a cell was addressed with i <= j, violating
	// the i > j >= 0 packed-triangle convention.
	ErrIndexOrder = errors.New("semimatrix: index pair must satisfy i > j")

	// ErrIndexRange indicates i or j fell outside [0, d).
	ErrIndexRange = errors.New("semimatrix: index out of range")
)
