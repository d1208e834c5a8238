// Package rootbasin classifies grid samples of the complex plane by the
// polynomial root their Newton iteration converges to — the input a
// Newton-fractal colorer needs, without any color or image concerns.
//
// 🚀 What is rootbasin?
//
//	The downstream consumer of polyroots.FindRoots: for each sample z₀ on
//	a viewport grid it iterates
//
//	  z ← z − P(z)/P′(z)
//
//	until the step size drops below Tolerance or MaxIterations is
//	reached, then records the index of the nearest root (or −1 when the
//	iteration never settles) together with the iteration count used for
//	shading.
//
// ✨ Key guarantees:
//   - Deterministic — samples are independent, so the classification is
//     bit-identical whether computed on one worker or many.
//   - Non-failing numerics — samples that hit P′(z) ≈ 0 pick up NaN/Inf
//     through IEEE-754 division, stop converging and classify as −1;
//     nothing panics.
//   - Bounded — exactly (Resolution+1)² samples, each capped at
//     MaxIterations Newton steps.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numgeo/rootbasin"
//
//	p := polyroots.FromRoots(cpolar.Real(1), cpolar.Real(-1)) // z² − 1
//	opts := rootbasin.DefaultOptions()
//	opts.Workers = 4 // rows fan out to goroutines
//
//	cls, err := rootbasin.Classify(p, marching.Bounds{XMin: -2, XMax: 2, YMin: -2, YMax: 2}, opts)
//	if err != nil {
//	  // handle ErrConstantPolynomial / ErrBadResolution
//	}
//	idx := cls.Index[j][i] // root index for sample (i, j), −1 if unsettled
//
// Performance:
//
//   - Time:   O(Resolution² · MaxIterations · deg) worst case
//   - Memory: O(Resolution²)
//
// See example_test.go for a runnable walkthrough.
package rootbasin
