package cpolar

import "math"

// Add returns c + w, component-wise.
// Complexity: O(1).
func (c Complex) Add(w Complex) Complex {
	return Complex{Re: c.Re + w.Re, Im: c.Im + w.Im}
}

// Sub returns c − w, component-wise.
// Complexity: O(1).
func (c Complex) Sub(w Complex) Complex {
	return Complex{Re: c.Re - w.Re, Im: c.Im - w.Im}
}

// MulScalar returns s·c, scaling both components by the real scalar s.
// Complexity: O(1).
func (c Complex) MulScalar(s float64) Complex {
	return Complex{Re: c.Re * s, Im: c.Im * s}
}

// Mul returns c·w using the standard cross/sum formula
// (ac − bd) + (ad + bc)i.
// Complexity: O(1).
func (c Complex) Mul(w Complex) Complex {
	return Complex{
		Re: c.Re*w.Re - c.Im*w.Im,
		Im: c.Re*w.Im + c.Im*w.Re,
	}
}

// DivScalar returns c/s. Dividing by zero yields Inf/NaN components under
// IEEE-754 semantics; callers guard zero divisors themselves.
// Complexity: O(1).
func (c Complex) DivScalar(s float64) Complex {
	return Complex{Re: c.Re / s, Im: c.Im / s}
}

// Div returns c/w, computed by multiplying with the conjugate of w and
// dividing by |w|². If w has zero magnitude the components become
// Inf/NaN under IEEE-754 semantics — by contract this never panics or
// errors; callers guard zero divisors themselves.
// Complexity: O(1).
func (c Complex) Div(w Complex) Complex {
	den := w.Re*w.Re + w.Im*w.Im
	return Complex{
		Re: (c.Re*w.Re + c.Im*w.Im) / den,
		Im: (c.Im*w.Re - c.Re*w.Im) / den,
	}
}

// Conj returns the complex conjugate a − bi.
// Complexity: O(1).
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Abs returns the magnitude √(a² + b²).
// Complexity: O(1).
func (c Complex) Abs() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Angle returns the argument atan2(b, a) in (-π, π].
// Complexity: O(1).
func (c Complex) Angle() float64 {
	return math.Atan2(c.Im, c.Re)
}

// Pow raises c to the real exponent n (possibly fractional or negative)
// via the polar form: magnitude^n at angle n·arg(c). This is the
// principal branch; for non-integer n on negative-real inputs it returns
// one of several algebraic roots — a documented convention, not a defect.
// Complexity: O(1).
func (c Complex) Pow(n float64) Complex {
	return FromPolar(math.Pow(c.Abs(), n), c.Angle()*n)
}

// Exp returns e^c = e^a·(cos b + i·sin b).
// Complexity: O(1).
func (c Complex) Exp() Complex {
	scale := math.Exp(c.Re)
	return Complex{
		Re: scale * math.Cos(c.Im),
		Im: scale * math.Sin(c.Im),
	}
}

// Log returns the principal-branch natural logarithm
// log|c| + i·arg(c), with the imaginary part in (-π, π].
// Log of zero yields -Inf + NaN·i under IEEE-754 semantics.
// Complexity: O(1).
func (c Complex) Log() Complex {
	return Complex{Re: math.Log(c.Abs()), Im: c.Angle()}
}

// Sqrt returns the principal-branch square root via polar halving:
// √|c| at angle arg(c)/2.
// Complexity: O(1).
func (c Complex) Sqrt() Complex {
	return FromPolar(math.Sqrt(c.Abs()), c.Angle()/2)
}

// Sin returns sin(c) = sin(a)·cosh(b) + i·cos(a)·sinh(b).
// Complexity: O(1).
func (c Complex) Sin() Complex {
	return Complex{
		Re: math.Sin(c.Re) * math.Cosh(c.Im),
		Im: math.Cos(c.Re) * math.Sinh(c.Im),
	}
}

// Cos returns cos(c) = cos(a)·cosh(b) − i·sin(a)·sinh(b).
// Complexity: O(1).
func (c Complex) Cos() Complex {
	return Complex{
		Re: math.Cos(c.Re) * math.Cosh(c.Im),
		Im: -math.Sin(c.Re) * math.Sinh(c.Im),
	}
}
