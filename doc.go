// Package numgeo is the numerical geometry engine behind interactive
// mathematical-animation tooling — complex arithmetic, polynomial
// root-finding and implicit-curve contour extraction.
//
// 🚀 What is numgeo?
//
//	A small, pure-Go computation core that brings together:
//		• Complex values: immutable rectangular/polar arithmetic & principal-branch
//		  transcendentals (Exp, Log, Sqrt, Sin, Cos, fractional Pow)
//		• Polynomials: evaluation, differentiation, construction from roots,
//		  Durand–Kerner simultaneous root iteration
//		• Contours: marching-squares extraction of f(x,y)=c level sets
//		• Basins: Newton-iteration classification of samples by nearest root
//
// ✨ Why choose numgeo?
//
//   - Predictable numerics – IEEE-754 degeneracies propagate as NaN/Inf,
//     never as panics; only malformed text input ever returns an error
//   - Deterministic – identical inputs yield bit-identical outputs,
//     safe for real-time redraw loops
//   - Pure Go – no cgo, no hidden deps; values are immutable and safe to
//     share across goroutines without synchronization
//
// Under the hood, everything is organized in four subpackages:
//
//	cpolar/    — the Complex value type, parsing, polar views
//	polyroots/ — complex polynomials & the Durand–Kerner root finder
//	marching/  — marching-squares contour extraction over scalar fields
//	rootbasin/ — Newton-basin sample classification (fractal coloring input)
//
// Quick ASCII example:
//
//	    f(x,y) = x²+y² , level 1
//	       ┌───────┐
//	       │  ╭─╮  │
//	       │  ╰─╯  │        → unordered line segments tracing the unit circle
//	       └───────┘
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/numgeo
package numgeo
