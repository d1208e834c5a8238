package polyroots

import (
	"math"

	"github.com/katalvlaran/numgeo/cpolar"
)

// FindRoots returns all deg(P) roots of the polynomial.
//
// Description:
//
//	Degree 0 has no roots and returns an empty slice. Degree 1 is solved
//	in closed form as −c₀/c₁. Degree ≥ 2 uses Durand–Kerner simultaneous
//	iteration: deg(P) candidates start evenly spaced on the unit circle
//	at angles 2πk/deg, and every sweep refines each candidate by
//
//	  zᵢ ← zᵢ − P(zᵢ) / Π_{j≠i} (zᵢ − zⱼ)
//
//	with the product taken over the previous sweep's candidate snapshot,
//	so results do not depend on candidate order. The loop exits early
//	once the largest correction magnitude falls below opts.Tolerance,
//	and otherwise stops after opts.MaxIterations sweeps.
//
// A nil opts means DefaultOptions(). Root order is implementation-
// defined and follows the convergence path, not any sorted order.
//
// Known limitation: for closely clustered or repeated roots the
// denominator product can approach zero; the resulting NaN/Inf values
// propagate into the returned slice per IEEE-754 semantics. No
// perturbation fallback is applied.
//
// Complexity: O(MaxIterations·deg²) time, O(deg) memory.
func (p Polynomial) FindRoots(opts *Options) []cpolar.Complex {
	maxIter := DefaultMaxIterations
	tol := DefaultTolerance
	if opts != nil {
		if opts.MaxIterations >= 1 {
			maxIter = opts.MaxIterations
		}
		if opts.Tolerance > 0 {
			tol = opts.Tolerance
		}
	}

	deg := p.Degree()
	switch deg {
	case 0:
		return nil
	case 1:
		return []cpolar.Complex{p.coeffs[0].MulScalar(-1).Div(p.coeffs[1])}
	}

	// Seed candidates evenly on the unit circle.
	cur := make([]cpolar.Complex, deg)
	for k := range cur {
		cur[k] = cpolar.FromPolar(1, 2*math.Pi*float64(k)/float64(deg))
	}

	next := make([]cpolar.Complex, deg)
	for iter := 0; iter < maxIter; iter++ {
		maxDelta := 0.0
		for i, zi := range cur {
			den := cpolar.Real(1)
			for j, zj := range cur {
				if j == i {
					continue
				}
				den = den.Mul(zi.Sub(zj))
			}
			delta := p.Evaluate(zi).Div(den)
			next[i] = zi.Sub(delta)
			if d := delta.Abs(); d > maxDelta {
				maxDelta = d
			}
		}
		cur, next = next, cur
		if maxDelta < tol {
			break
		}
	}

	return cur
}
