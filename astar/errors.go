package astar

import "errors"

var (
	// ErrInvalidGraph covers malformed graph construction input.
	ErrInvalidGraph = errors.New("astar: invalid graph")

	// ErrOutOfRange covers a start/end/cost-map argument that doesn't match
	// the graph it is used against.
	ErrOutOfRange = errors.New("astar: out of range")
)
