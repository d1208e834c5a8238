// Package marching extracts implicit-curve contours from scalar fields
// with the marching-squares algorithm: given f(x,y), a target level c and
// a bounded viewport, it emits line segments approximating the level set
// {(x,y) : f(x,y) = c}.
//
// 🚀 How it works:
//
//	1. Sample f on a uniform (resolution+1)×(resolution+1) node grid over
//	   the bounds, storing f(x,y) − level at each node — exactly
//	   (resolution+1)² evaluator calls, no more, no less.
//	2. Classify each of the resolution² cells into one of 16 cases from a
//	   4-bit index over its corners (bottom-left, bottom-right, top-right,
//	   top-left). A corner is "inside" when |value| < Threshold OR
//	   value > 0 — this asymmetric tie-break is part of the contract.
//	3. Interpolate zero crossings along cell edges linearly, clamping the
//	   crossing fraction to 0.5 when adjacent corner values are nearly
//	   equal.
//	4. Emit zero, one or two segments per cell from a fixed 16-entry case
//	   table. The ambiguous saddle cases (5 and 10) emit two independent
//	   diagonal segments without center-sampling disambiguation.
//
// ✨ Key guarantees:
//   - Deterministic — identical inputs yield bit-identical segments.
//   - Bounded — exactly (resolution+1)² field evaluations, reported in
//     Result.Evaluations so interactive callers can budget resolution
//     against their frame time.
//   - Non-failing geometry — bounds that miss the level set produce an
//     empty segment set; degenerate (zero-area or inverted) bounds
//     produce an empty result, never an error.
//
// Output is an unordered, unconnected segment collection: no polyline
// stitching, loop detection or topology reconstruction is performed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numgeo/marching"
//
//	circle := func(x, y float64) float64 { return x*x + y*y }
//	opts := marching.DefaultOptions()
//	opts.Level = 1 // trace x²+y² = 1
//
//	res, err := marching.Extract(circle, marching.Bounds{XMin: -2, XMax: 2, YMin: -2, YMax: 2}, opts)
//	if err != nil {
//	  // handle ErrNilField / ErrBadResolution
//	}
//	fmt.Println(len(res.Segments), res.Evaluations)
//
// Performance:
//
//   - Time:   O(resolution²) plus (resolution+1)² evaluator calls
//   - Memory: O(resolution²) for the node grid and emitted segments
//
// See example_test.go for runnable walkthroughs.
package marching
