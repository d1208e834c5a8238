package polyroots

import "github.com/katalvlaran/numgeo/cpolar"

// New constructs a Polynomial from coefficients in ascending-power
// order: New(c0, c1, c2) represents c0 + c1·z + c2·z².
// The input is copied to keep the value immutable.
// Returns ErrNoCoefficients on an empty sequence.
// Complexity: O(deg).
func New(coeffs ...cpolar.Complex) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, ErrNoCoefficients
	}
	cp := make([]cpolar.Complex, len(coeffs))
	copy(cp, coeffs)

	return Polynomial{coeffs: cp}, nil
}

// FromRoots reconstructs the monic polynomial Π (z − rᵢ) by repeatedly
// multiplying an accumulator polynomial by each linear factor, starting
// from the constant polynomial 1. An empty root list yields 1.
// Complexity: O(len(roots)²).
func FromRoots(roots ...cpolar.Complex) Polynomial {
	acc := []cpolar.Complex{cpolar.Real(1)}
	for _, r := range roots {
		// acc ← acc · (z − r): next[k] = acc[k-1] − r·acc[k].
		next := make([]cpolar.Complex, len(acc)+1)
		for k := range next {
			var v cpolar.Complex
			if k > 0 {
				v = acc[k-1]
			}
			if k < len(acc) {
				v = v.Sub(r.Mul(acc[k]))
			}
			next[k] = v
		}
		acc = next
	}

	return Polynomial{coeffs: acc}
}

// Degree returns len(coefficients) − 1. The zero value of Polynomial is
// not constructible through the public API, so Degree is always ≥ 0.
// Complexity: O(1).
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficient sequence, constant term
// first. The copy keeps the polynomial immutable.
// Complexity: O(deg).
func (p Polynomial) Coefficients() []cpolar.Complex {
	cp := make([]cpolar.Complex, len(p.coeffs))
	copy(cp, p.coeffs)

	return cp
}

// Evaluate computes P(z) = Σ cₖ·zᵏ by accumulating a running power of z
// across the coefficient sweep. The accumulation order is part of the
// contract: it fixes the floating-point rounding sequence, keeping
// results bit-identical across calls.
// Complexity: O(deg).
func (p Polynomial) Evaluate(z cpolar.Complex) cpolar.Complex {
	var sum cpolar.Complex
	pow := cpolar.Real(1)
	for _, c := range p.coeffs {
		sum = sum.Add(c.Mul(pow))
		pow = pow.Mul(z)
	}

	return sum
}

// Derivative returns P′, the polynomial with coefficients (k+1)·c_{k+1}
// for k = 0..deg−1. The derivative of a constant is the zero polynomial.
// Complexity: O(deg).
func (p Polynomial) Derivative() Polynomial {
	if p.Degree() == 0 {
		return Polynomial{coeffs: []cpolar.Complex{cpolar.Real(0)}}
	}
	d := make([]cpolar.Complex, p.Degree())
	for k := range d {
		d[k] = p.coeffs[k+1].MulScalar(float64(k + 1))
	}

	return Polynomial{coeffs: d}
}
