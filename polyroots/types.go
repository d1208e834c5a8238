// Package polyroots defines the Polynomial type and root-finder options
// for the polyroots subpackage of github.com/katalvlaran/numgeo.
package polyroots

import "github.com/katalvlaran/numgeo/cpolar"

// Defaults for the Durand–Kerner root finder.
const (
	// DefaultMaxIterations bounds the number of refinement sweeps.
	DefaultMaxIterations = 100
	// DefaultTolerance is the maximum-correction magnitude below which
	// the sweep loop terminates early.
	DefaultTolerance = 1e-10
)

// Options configures FindRoots.
//
// Fields:
//   - MaxIterations — hard cap on refinement sweeps; values < 1 fall back
//     to DefaultMaxIterations.
//   - Tolerance     — early-exit threshold on the largest per-candidate
//     correction; values ≤ 0 fall back to DefaultTolerance.
//
// A nil *Options passed to FindRoots means DefaultOptions(). Option
// handling never errors: the root finder has no failure surface, and
// numerically hopeless inputs (clustered roots) propagate NaN/Inf
// through the returned values instead.
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultOptions returns the root-finder defaults:
// MaxIterations=100, Tolerance=1e-10.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Polynomial is an immutable complex polynomial. Coefficients are stored
// constant-term first: index k holds the coefficient of zᵏ, and the
// degree is len(coefficients) − 1. Construct with New or FromRoots; a
// zero-length coefficient sequence is invalid.
type Polynomial struct {
	coeffs []cpolar.Complex
}
