// Package cpolar defines the Complex value type and comparison defaults
// for the cpolar subpackage of github.com/katalvlaran/numgeo.
package cpolar

import "math"

// DefaultEpsilon is the absolute tolerance used by Equals when callers
// have no better bound for the accumulated rounding of their computation.
const DefaultEpsilon = 1e-10

// Complex is an immutable complex number in rectangular form.
// Re and Im are the real and imaginary components; every operation
// returns a new value and never mutates the receiver, so Complex values
// may be freely copied and shared across goroutines.
type Complex struct {
	Re, Im float64
}

// New constructs the complex number re + im·i.
// Complexity: O(1).
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real constructs the purely real complex number x + 0i.
// Complexity: O(1).
func Real(x float64) Complex {
	return Complex{Re: x}
}

// Imag constructs the purely imaginary complex number 0 + y·i.
// Complexity: O(1).
func Imag(y float64) Complex {
	return Complex{Im: y}
}

// FromPolar constructs the complex number with the given magnitude and
// angle (radians): mag·cos(angle) + mag·sin(angle)·i.
// Complexity: O(1).
func FromPolar(mag, angle float64) Complex {
	return Complex{
		Re: mag * math.Cos(angle),
		Im: mag * math.Sin(angle),
	}
}

// FromComplex128 converts a native complex128 into a Complex.
// Complexity: O(1).
func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Complex128 converts c into a native complex128 for interop with
// math/cmplx-based pipelines.
// Complexity: O(1).
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Equals reports whether c and w agree component-wise within the absolute
// tolerance eps. Exact equality is meaningless for derived floating-point
// results; pass DefaultEpsilon unless the caller tracks a tighter bound.
// Complexity: O(1).
func (c Complex) Equals(w Complex, eps float64) bool {
	return math.Abs(c.Re-w.Re) < eps && math.Abs(c.Im-w.Im) < eps
}
