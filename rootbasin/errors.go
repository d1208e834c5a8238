package rootbasin

import "errors"

var (
	// ErrConstantPolynomial indicates a degree-0 polynomial: it has no
	// roots, so there are no basins to classify.
	ErrConstantPolynomial = errors.New("rootbasin: polynomial must have degree at least 1")
	// ErrBadResolution indicates a resolution below one cell per axis.
	ErrBadResolution = errors.New("rootbasin: resolution must be at least 1")
)
