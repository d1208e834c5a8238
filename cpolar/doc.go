// Package cpolar provides an immutable complex-number value type with
// rectangular and polar views, exact component-wise arithmetic, and
// principal-branch elementary functions.
//
// 🚀 What is cpolar?
//
//	The element type underneath numgeo's polynomial and fractal machinery:
//	  • Rectangular arithmetic: Add, Sub, Mul, Div (+ scalar variants)
//	  • Polar views: Abs, Angle ∈ (-π, π], FromPolar, Conj
//	  • Principal-branch functions: Pow (real exponent), Exp, Log, Sqrt, Sin, Cos
//	  • Text round-trip: ParseComplex("3+4i") ⇄ String()
//	  • Tolerant comparison: Equals(w, eps) for derived floating-point values
//
// ✨ Key guarantees:
//   - Value semantics — every operation returns a new Complex; nothing is
//     ever mutated, so instances are safe to share across goroutines.
//   - No numeric panics — dividing by a zero-magnitude value yields
//     Inf/NaN components under IEEE-754 semantics; callers guard zero
//     divisors themselves. Only ParseComplex can return an error.
//   - Principal branch — Pow, Log and Sqrt pick the single-valued branch
//     with angle in (-π, π]. For non-integer exponents on negative-real
//     inputs Pow therefore returns one of several algebraic roots; this is
//     the documented convention, not a defect.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numgeo/cpolar"
//
//	z, err := cpolar.ParseComplex("3+4i")
//	if err != nil {
//	  // handle cpolar.ErrParse
//	}
//	fmt.Println(z.Abs())          // 5
//	w := z.Mul(z.Conj())          // 25+0i
//	r := cpolar.New(-1, 0).Sqrt() // 0+1i (principal branch)
//
// All operations run in O(1) time and allocate nothing beyond the
// returned value.
//
// See example_test.go for runnable walkthroughs.
package cpolar
