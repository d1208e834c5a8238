package cpolar

import "errors"

var (
	// ErrParse indicates text that matches none of the recognized
	// complex-number grammars (pure real, pure imaginary, or signed
	// rectangular pair). It is the only error this package produces;
	// numerically degenerate inputs propagate as NaN/Inf values instead.
	ErrParse = errors.New("cpolar: unrecognized complex number format")
)
