package problem

import "errors"

var (
	// ErrSyntax marks a token that is neither an integer nor, in a cost
	// grid, a closed-route marker.
	ErrSyntax = errors.New("problem: malformed value")

	// ErrEmpty is returned for input with no values at all.
	ErrEmpty = errors.New("problem: empty input")

	// ErrCountMismatch is returned when declared supply/demand point counts
	// disagree with the data, or when the cost grid does not fit the vectors.
	ErrCountMismatch = errors.New("problem: point counts do not match the data")

	// ErrFormat is returned for an unknown or malformed document format.
	ErrFormat = errors.New("problem: unsupported input format")
)
