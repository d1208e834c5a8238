// Package polyroots provides polynomials over the complex field:
// evaluation, differentiation, construction from roots, and root
// extraction via Durand–Kerner simultaneous iteration.
//
// 🚀 What is polyroots?
//
//	The algebra layer of numgeo, consumed by fractal-coloring and
//	curve-construction callers:
//	  • Evaluate — Σ cₖ·zᵏ with a running-power accumulator
//	  • Derivative — coefficient shift, constant → zero polynomial
//	  • FromRoots — rebuild coefficients as Π (z − rᵢ)
//	  • FindRoots — all deg(P) roots at once, no deflation
//
// ✨ How does FindRoots work?
//
//	Degree 0 has no roots and degree 1 is closed-form. For degree ≥ 2 the
//	Durand–Kerner (Weierstrass) method seeds deg(P) candidates evenly on
//	the unit circle and refines them together:
//
//	  zᵢ ← zᵢ − P(zᵢ) / Π_{j≠i} (zᵢ − zⱼ)
//
//	Sweeps repeat until the largest per-candidate correction drops below
//	Tolerance or MaxIterations is reached. Candidates are updated against
//	a snapshot of the previous sweep, so results are deterministic and
//	independent of candidate order.
//
// ⚠️ Known limitation (preserved by design): convergence is not
// guaranteed for closely clustered or repeated roots — the denominator
// product approaches zero and NaN/Inf values propagate through the
// result per IEEE-754 semantics. No perturbation fallback is applied;
// detection and recovery belong to the caller.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numgeo/polyroots"
//
//	// z² − 1
//	p, err := polyroots.New(cpolar.Real(-1), cpolar.Real(0), cpolar.Real(1))
//	if err != nil {
//	  // handle ErrNoCoefficients
//	}
//	roots := p.FindRoots(nil) // {1, −1} in implementation-defined order
//
// Performance:
//
//   - Evaluate:   O(deg)
//   - FindRoots:  O(iterations·deg²)
//   - FromRoots:  O(len(roots)²)
//
// See example_test.go for runnable walkthroughs.
package polyroots
