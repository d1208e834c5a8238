// Package rootbasin defines options, results and sentinel errors for the
// rootbasin subpackage of github.com/katalvlaran/numgeo.
package rootbasin

import "github.com/katalvlaran/numgeo/cpolar"

// Defaults for basin classification.
const (
	// DefaultResolution is the per-axis cell count of the sample grid;
	// the grid holds (DefaultResolution+1)² samples.
	DefaultResolution = 64
	// DefaultMaxIterations caps the Newton steps per sample.
	DefaultMaxIterations = 50
	// DefaultTolerance is the step magnitude below which a sample counts
	// as converged.
	DefaultTolerance = 1e-9
)

// Options configures Classify.
//
// Fields:
//   - Resolution    — cells per axis; (Resolution+1)² samples. Must be ≥ 1.
//   - MaxIterations — Newton-step cap per sample; values < 1 fall back to
//     DefaultMaxIterations.
//   - Tolerance     — convergence threshold on the step magnitude; values
//     ≤ 0 fall back to DefaultTolerance.
//   - Workers       — goroutines classifying rows concurrently; values
//     < 2 mean sequential execution. Samples are independent, so the
//     result is identical for any worker count.
type Options struct {
	Resolution    int
	MaxIterations int
	Tolerance     float64
	Workers       int
}

// DefaultOptions returns the classification defaults:
// Resolution=64, MaxIterations=50, Tolerance=1e-9, sequential execution.
func DefaultOptions() Options {
	return Options{
		Resolution:    DefaultResolution,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Workers:       1,
	}
}

// Classification is the per-sample basin assignment for one viewport.
//
// Index and Steps are (Resolution+1)×(Resolution+1), row-major from the
// bottom of the bounds: Index[j][i] holds the index into Roots of the
// root nearest to the converged iterate for the sample at column i, row
// j, or −1 when the iteration never settled. Steps[j][i] holds the
// Newton steps spent on that sample; shading typically maps it to
// brightness.
type Classification struct {
	Roots []cpolar.Complex
	Index [][]int
	Steps [][]int
}
