package tour

import "errors"

var (
	// ErrWrongLength indicates the path does not have exactly D edges.
	ErrWrongLength = errors.New("tour: path does not have exactly D edges")

	// ErrDayMismatch indicates path[k].Day != k for some k.
	ErrDayMismatch = errors.New("tour: edge day does not match its position")

	// ErrBrokenChain indicates path[k].Dst != path[k+1].Src for some k.
	ErrBrokenChain = errors.New("tour: edges do not chain into a closed path")

	// ErrNotClosed indicates the tour does not start and end at start.
	ErrNotClosed = errors.New("tour: path does not start and end at start")

	// ErrNotHamiltonian indicates some node is visited more than once (or
	// some node is never visited).
	ErrNotHamiltonian = errors.New("tour: path does not visit every node exactly once")
)
