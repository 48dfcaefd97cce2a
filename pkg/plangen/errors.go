package plangen

import "errors"

var (
	// ErrUnsupportedPosition is returned when a position string is not one of
	// the endgame configurations the planner templates cover.
	ErrUnsupportedPosition = errors.New("unsupported endgame position")

	// ErrUnknownEndgame is returned by catalog lookups that match neither a
	// display name nor a valid 1-based ordinal.
	ErrUnknownEndgame = errors.New("unknown predefined endgame")

	// ErrMissingValue is returned by renders in MissingFail mode when a
	// placeholder has no entry in the value map.
	ErrMissingValue = errors.New("template placeholder has no value")
)
