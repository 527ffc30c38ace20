package instance

import "errors"

var (
	// ErrEmptyInput indicates the stream had no header line at all.
	ErrEmptyInput = errors.New("instance: empty input, missing start node header")

	// ErrMalformedLine indicates an edge line did not have exactly four
	// whitespace-separated fields.
	ErrMalformedLine = errors.New("instance: malformed edge line, expected SRC DST DAY PRICE")

	// ErrMalformedField indicates DAY or PRICE failed to parse as an
	// integer.
	ErrMalformedField = errors.New("instance: malformed integer field")
)
