// Package marching defines the field contract, geometry types and
// options for the marching subpackage of github.com/katalvlaran/numgeo.
package marching

// Defaults for contour extraction.
const (
	// DefaultResolution is the per-axis cell count used when callers have
	// no frame-time budget of their own.
	DefaultResolution = 20
	// DefaultThreshold is the |value| band around zero inside which a
	// corner counts as on the contour.
	DefaultThreshold = 0.01
)

// Field is the scalar-field evaluator supplied by the caller, typically
// backed by an expression-evaluation subsystem. It must be pure and
// side-effect-free; Extract calls it exactly (resolution+1)² times.
type Field func(x, y float64) float64

// Point is a location in world coordinates.
type Point struct {
	X, Y float64
}

// Segment is a single contour line segment between two world-coordinate
// points. Segments are unordered and unconnected; no adjacency or
// polyline structure is built.
type Segment struct {
	A, B Point
}

// Bounds is the sampling rectangle in world coordinates, supplied by an
// external viewport/camera component. A rectangle with XMin ≥ XMax or
// YMin ≥ YMax is degenerate and yields an empty result.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Options configures contour extraction.
//
// Fields:
//   - Resolution — cells per axis; the node grid is (Resolution+1)².
//     Must be ≥ 1.
//   - Level      — the target contour value c; nodes store f(x,y) − c.
//   - Threshold  — half-width of the "on the contour" band in the corner
//     classification; values ≤ 0 fall back to DefaultThreshold.
//
// Example:
//
//	opts := marching.DefaultOptions()
//	opts.Resolution = 100 // 10,201 field evaluations
//	opts.Level = 1
//
//	res, err := marching.Extract(f, bounds, opts)
type Options struct {
	Resolution int
	Level      float64
	Threshold  float64
}

// DefaultOptions returns the extraction defaults:
// Resolution=20, Level=0, Threshold=0.01.
func DefaultOptions() Options {
	return Options{
		Resolution: DefaultResolution,
		Threshold:  DefaultThreshold,
	}
}

// Result carries the extracted contour plus the diagnostics interactive
// callers budget against.
//
// Evaluations is always (GridSize+1)² for non-degenerate bounds; it is
// the exact number of Field calls performed.
type Result struct {
	Segments    []Segment
	GridSize    int
	Evaluations int
}
