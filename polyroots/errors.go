package polyroots

import "errors"

var (
	// ErrNoCoefficients indicates an attempt to construct a polynomial
	// from a zero-length coefficient sequence; even the zero polynomial
	// needs its constant term.
	ErrNoCoefficients = errors.New("polyroots: polynomial requires at least one coefficient")
)
