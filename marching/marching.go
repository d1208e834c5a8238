package marching

import "math"

// Cell edges, indexed clockwise from the bottom.
const (
	edgeBottom = iota
	edgeRight
	edgeTop
	edgeLeft
)

// nearEqual is the corner-value gap below which the edge crossing is
// clamped to the midpoint instead of interpolated.
const nearEqual = 1e-12

// caseTable maps the 4-bit corner classification (bit 0 = bottom-left,
// bit 1 = bottom-right, bit 2 = top-right, bit 3 = top-left) to the edge
// pairs crossed by the contour. Cases 0 and 15 emit nothing; the
// ambiguous saddle cases 5 and 10 emit two independent diagonal segments
// with no center-sampling disambiguation.
var caseTable = [16][][2]int{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeRight, edgeTop}},
	5:  {{edgeLeft, edgeBottom}, {edgeRight, edgeTop}},
	6:  {{edgeBottom, edgeTop}},
	7:  {{edgeLeft, edgeTop}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeBottom, edgeTop}},
	10: {{edgeBottom, edgeRight}, {edgeTop, edgeLeft}},
	11: {{edgeRight, edgeTop}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

// Extract runs marching squares over f − opts.Level on the given bounds.
//
// The node grid has (Resolution+1)² samples and f is called exactly once
// per node; Result.Evaluations reports that count. Degenerate bounds
// (XMin ≥ XMax or YMin ≥ YMax) return an empty result without sampling.
// Returns ErrNilField or ErrBadResolution on invalid options; the
// algorithm itself has no failure modes.
//
// Complexity: O(Resolution²) time, O(Resolution²) memory.
func Extract(f Field, b Bounds, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilField
	}
	n := opts.Resolution
	if n < 1 {
		return Result{}, ErrBadResolution
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	res := Result{GridSize: n}
	if b.XMin >= b.XMax || b.YMin >= b.YMax {
		return res, nil
	}

	dx := (b.XMax - b.XMin) / float64(n)
	dy := (b.YMax - b.YMin) / float64(n)

	// Sample f − level on every grid node.
	vals := make([][]float64, n+1)
	for j := 0; j <= n; j++ {
		y := b.YMin + float64(j)*dy
		row := make([]float64, n+1)
		for i := 0; i <= n; i++ {
			row[i] = f(b.XMin+float64(i)*dx, y) - opts.Level
		}
		vals[j] = row
	}
	res.Evaluations = (n + 1) * (n + 1)

	// Classify each cell and emit segments per the case table.
	for j := 0; j < n; j++ {
		y0 := b.YMin + float64(j)*dy
		for i := 0; i < n; i++ {
			x0 := b.XMin + float64(i)*dx

			bl := vals[j][i]
			br := vals[j][i+1]
			tr := vals[j+1][i+1]
			tl := vals[j+1][i]

			idx := 0
			if inside(bl, threshold) {
				idx |= 1
			}
			if inside(br, threshold) {
				idx |= 2
			}
			if inside(tr, threshold) {
				idx |= 4
			}
			if inside(tl, threshold) {
				idx |= 8
			}
			pairs := caseTable[idx]
			if pairs == nil {
				continue
			}

			// Crossing points on all four cell edges.
			crossings := [4]Point{
				edgeBottom: {X: x0 + crossing(bl, br)*dx, Y: y0},
				edgeRight:  {X: x0 + dx, Y: y0 + crossing(br, tr)*dy},
				edgeTop:    {X: x0 + crossing(tl, tr)*dx, Y: y0 + dy},
				edgeLeft:   {X: x0, Y: y0 + crossing(bl, tl)*dy},
			}
			for _, pair := range pairs {
				res.Segments = append(res.Segments, Segment{
					A: crossings[pair[0]],
					B: crossings[pair[1]],
				})
			}
		}
	}

	return res, nil
}

// inside implements the corner classification |v| < threshold OR v > 0.
// The asymmetry (strict > against a symmetric band around zero) is a
// deliberate tie-breaking policy and must not be "corrected".
func inside(v, threshold float64) bool {
	return math.Abs(v) < threshold || v > 0
}

// crossing returns the zero-crossing fraction −v0/(v1−v0) between two
// adjacent corner values, clamped to 0.5 when the values are nearly
// equal to avoid dividing by near-zero.
func crossing(v0, v1 float64) float64 {
	if math.Abs(v1-v0) < nearEqual {
		return 0.5
	}

	return -v0 / (v1 - v0)
}
