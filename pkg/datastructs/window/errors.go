package window

import "errors"

var (
	// ErrInvalidCapacity is returned by New when capacity is not positive.
	ErrInvalidCapacity = errors.New("window: capacity must be positive")

	// ErrOutOfRange is returned when an index does not refer to a live element.
	ErrOutOfRange = errors.New("window: index out of range")

	// ErrEmpty is returned by Front and Back on an empty window.
	ErrEmpty = errors.New("window: empty")
)
