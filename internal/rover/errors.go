package rover

import "errors"

// Configuration errors returned by New and SetPosition.
var (
	// ErrMalformedBoundaries indicates a boundary spec that is not two non-negative integers.
	ErrMalformedBoundaries = errors.New("rover: malformed boundaries")

	// ErrMalformedPosition indicates a position spec that is not "x y H".
	ErrMalformedPosition = errors.New("rover: malformed position")

	// ErrUnknownHeading indicates a heading symbol outside N, E, S, W.
	ErrUnknownHeading = errors.New("rover: unknown heading")
)
