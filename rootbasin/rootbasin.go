package rootbasin

import (
	"sync"

	"github.com/katalvlaran/numgeo/cpolar"
	"github.com/katalvlaran/numgeo/marching"
	"github.com/katalvlaran/numgeo/polyroots"
)

// Classify runs Newton iteration from every sample of a uniform
// (Resolution+1)² grid over the bounds and assigns each sample to the
// nearest of p's roots.
//
// The root set comes from p.FindRoots with its defaults; its
// implementation-defined order fixes the meaning of the returned
// indices. Samples whose iteration never reaches Tolerance (including
// those that pick up NaN/Inf from a vanishing derivative) are assigned
// −1. Degenerate bounds (XMin ≥ XMax or YMin ≥ YMax) yield empty grids.
//
// Workers > 1 distributes rows across goroutines; rows write to disjoint
// slices, so the classification is bit-identical for any worker count.
//
// Complexity: O(Resolution²·MaxIterations·deg) time, O(Resolution²) memory.
func Classify(p polyroots.Polynomial, b marching.Bounds, opts Options) (Classification, error) {
	if p.Degree() < 1 {
		return Classification{}, ErrConstantPolynomial
	}
	n := opts.Resolution
	if n < 1 {
		return Classification{}, ErrBadResolution
	}
	maxIter := opts.MaxIterations
	if maxIter < 1 {
		maxIter = DefaultMaxIterations
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	workers := opts.Workers
	if workers < 2 {
		workers = 1
	}

	cls := Classification{Roots: p.FindRoots(nil)}
	if b.XMin >= b.XMax || b.YMin >= b.YMax {
		return cls, nil
	}

	deriv := p.Derivative()
	dx := (b.XMax - b.XMin) / float64(n)
	dy := (b.YMax - b.YMin) / float64(n)

	cls.Index = make([][]int, n+1)
	cls.Steps = make([][]int, n+1)

	classifyRow := func(j int) {
		idxRow := make([]int, n+1)
		stepRow := make([]int, n+1)
		y := b.YMin + float64(j)*dy
		for i := 0; i <= n; i++ {
			z := cpolar.New(b.XMin+float64(i)*dx, y)
			idxRow[i], stepRow[i] = settle(p, deriv, z, cls.Roots, maxIter, tol)
		}
		cls.Index[j] = idxRow
		cls.Steps[j] = stepRow
	}

	if workers == 1 {
		for j := 0; j <= n; j++ {
			classifyRow(j)
		}

		return cls, nil
	}

	// Fan rows out to a fixed worker pool; each row owns its slices.
	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				classifyRow(j)
			}
		}()
	}
	for j := 0; j <= n; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	return cls, nil
}

// settle iterates z ← z − P(z)/P′(z) until the step magnitude falls
// below tol, then returns the index of the nearest root and the steps
// spent. A sample that never settles returns (−1, maxIter).
func settle(p, deriv polyroots.Polynomial, z cpolar.Complex, roots []cpolar.Complex, maxIter int, tol float64) (int, int) {
	for step := 0; step < maxIter; step++ {
		delta := p.Evaluate(z).Div(deriv.Evaluate(z))
		z = z.Sub(delta)
		if delta.Abs() < tol {
			return nearest(z, roots), step + 1
		}
	}

	return -1, maxIter
}

// nearest returns the index of the root closest to z.
func nearest(z cpolar.Complex, roots []cpolar.Complex) int {
	best := 0
	bestDist := z.Sub(roots[0]).Abs()
	for k := 1; k < len(roots); k++ {
		if d := z.Sub(roots[k]).Abs(); d < bestDist {
			best = k
			bestDist = d
		}
	}

	return best
}
