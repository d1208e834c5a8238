package marching

import "errors"

var (
	// ErrNilField indicates Extract was called without a field evaluator.
	ErrNilField = errors.New("marching: field evaluator must not be nil")
	// ErrBadResolution indicates a resolution below one cell per axis.
	ErrBadResolution = errors.New("marching: resolution must be at least 1")
)
