package cpolar_test

import (
	"testing"

	"github.com/katalvlaran/numgeo/cpolar"
)

var sinkComplex cpolar.Complex

// BenchmarkComplex_Mul measures raw rectangular multiplication, the hot
// operation inside polynomial evaluation.
func BenchmarkComplex_Mul(b *testing.B) {
	z := cpolar.New(1.2, -0.7)
	w := cpolar.New(-0.3, 0.9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComplex = z.Mul(w)
	}
}

// BenchmarkComplex_Div measures conjugate-method division.
func BenchmarkComplex_Div(b *testing.B) {
	z := cpolar.New(1.2, -0.7)
	w := cpolar.New(-0.3, 0.9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComplex = z.Div(w)
	}
}

// BenchmarkComplex_Pow measures the polar-form fractional power path.
func BenchmarkComplex_Pow(b *testing.B) {
	z := cpolar.New(1.2, -0.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComplex = z.Pow(2.5)
	}
}

// BenchmarkParseComplex measures the full rectangular-pair parse path.
func BenchmarkParseComplex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		z, err := cpolar.ParseComplex("-2.5+0.75i")
		if err != nil {
			b.Fatalf("ParseComplex failed: %v", err)
		}
		sinkComplex = z
	}
}
