package polyroots_test

import (
	"testing"

	"github.com/katalvlaran/numgeo/cpolar"
	"github.com/katalvlaran/numgeo/polyroots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRootsMatch checks that got is a permutation of want within eps:
// every found root lies within eps of some expected root.
func assertRootsMatch(t *testing.T, want, got []cpolar.Complex, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "root count must equal polynomial degree")
	for _, g := range got {
		matched := false
		for _, w := range want {
			if g.Equals(w, eps) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "root %v matches no expected root %v", g, want)
	}
}

// TestFindRoots_Degree0 verifies a constant polynomial has no roots.
func TestFindRoots_Degree0(t *testing.T) {
	p, err := polyroots.New(cpolar.Real(5))
	require.NoError(t, err)
	assert.Empty(t, p.FindRoots(nil), "constants have no roots")
}

// TestFindRoots_Degree1 verifies the closed-form linear solution
// root = −c₀/c₁, including a complex coefficient pair.
func TestFindRoots_Degree1(t *testing.T) {
	// 2z − 4 = 0 → z = 2
	p, err := polyroots.New(cpolar.Real(-4), cpolar.Real(2))
	require.NoError(t, err)
	roots := p.FindRoots(nil)
	require.Len(t, roots, 1)
	assert.True(t, roots[0].Equals(cpolar.Real(2), 1e-12))

	// (1+i)z + (2−2i) = 0 → z = −(2−2i)/(1+i) = −(2−2i)(1−i)/2 = 2i
	q, err := polyroots.New(cpolar.New(2, -2), cpolar.New(1, 1))
	require.NoError(t, err)
	roots = q.FindRoots(nil)
	require.Len(t, roots, 1)
	assert.True(t, roots[0].Equals(cpolar.Imag(2), 1e-12), "got %v", roots[0])
}

// TestFindRoots_Quadratic checks z² − 1 → {1, −1}.
func TestFindRoots_Quadratic(t *testing.T) {
	p, err := polyroots.New(cpolar.Real(-1), cpolar.Real(0), cpolar.Real(1))
	require.NoError(t, err)
	assertRootsMatch(t,
		[]cpolar.Complex{cpolar.Real(1), cpolar.Real(-1)},
		p.FindRoots(nil), 1e-6)
}

// TestFindRoots_CubeRootsOfUnity checks z³ − 1 against the three cube
// roots of unity.
func TestFindRoots_CubeRootsOfUnity(t *testing.T) {
	p, err := polyroots.New(cpolar.Real(-1), cpolar.Real(0), cpolar.Real(0), cpolar.Real(1))
	require.NoError(t, err)
	want := []cpolar.Complex{
		cpolar.Real(1),
		cpolar.New(-0.5, 0.8660254037844386),
		cpolar.New(-0.5, -0.8660254037844387),
	}
	assertRootsMatch(t, want, p.FindRoots(nil), 1e-6)
}

// TestFindRoots_ReconstructionProperty is the round-trip law:
// FromRoots(R).FindRoots() recovers R (as a set) for well-separated
// roots.
func TestFindRoots_ReconstructionProperty(t *testing.T) {
	cases := [][]cpolar.Complex{
		{cpolar.New(2, 0), cpolar.New(-1, 1), cpolar.New(0.5, -2)},
		{cpolar.New(1, 1), cpolar.New(-2, 0.5), cpolar.New(3, -1), cpolar.New(0, -2)},
		{cpolar.New(0.3, 0), cpolar.New(1.7, 0), cpolar.New(-1.2, 0.8), cpolar.New(-1.2, -0.8), cpolar.New(2.5, -1.5)},
		{cpolar.New(0.5, 0), cpolar.New(0.65, 0), cpolar.New(-0.8, 0.3)}, // 0.15 apart, still separated
	}
	for _, roots := range cases {
		p := polyroots.FromRoots(roots...)
		assertRootsMatch(t, roots, p.FindRoots(nil), 1e-6)
	}
}

// TestFindRoots_Deterministic verifies bit-identical results across
// repeated invocations with identical inputs.
func TestFindRoots_Deterministic(t *testing.T) {
	p := polyroots.FromRoots(cpolar.New(1, 1), cpolar.New(-2, 0.5), cpolar.New(3, -1))
	first := p.FindRoots(nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.FindRoots(nil), "identical inputs must yield bit-identical roots")
	}
}

// TestFindRoots_IterationBudget verifies the MaxIterations cap is
// honored: a single sweep is not enough to converge from the unit-circle
// seeds, so the answer differs from the converged one.
func TestFindRoots_IterationBudget(t *testing.T) {
	p := polyroots.FromRoots(cpolar.New(2, 0), cpolar.New(-1, 1), cpolar.New(0.5, -2))

	tight := polyroots.Options{MaxIterations: 1, Tolerance: polyroots.DefaultTolerance}
	loose := p.FindRoots(nil)
	capped := p.FindRoots(&tight)
	require.Len(t, capped, 3)
	assert.NotEqual(t, loose, capped, "one sweep must not match the converged result")
}
