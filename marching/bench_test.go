package marching_test

import (
	"testing"

	"github.com/katalvlaran/numgeo/marching"
)

var sinkResult marching.Result

// benchmarkExtract traces the unit circle at the given resolution; this
// is the real-time redraw path, so the resolution-100 variant doubles as
// the frame-budget regression guard.
func benchmarkExtract(b *testing.B, resolution int) {
	opts := marching.DefaultOptions()
	opts.Level = 1
	opts.Resolution = resolution
	bounds := marching.Bounds{XMin: -2, XMax: 2, YMin: -2, YMax: 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := marching.Extract(circleField, bounds, opts)
		if err != nil {
			b.Fatalf("Extract failed: %v", err)
		}
		sinkResult = res
	}
}

// BenchmarkExtract_Resolution20 times the default interactive setting.
func BenchmarkExtract_Resolution20(b *testing.B) {
	benchmarkExtract(b, 20)
}

// BenchmarkExtract_Resolution100 times the high-quality setting
// (10,201 evaluations per frame).
func BenchmarkExtract_Resolution100(b *testing.B) {
	benchmarkExtract(b, 100)
}
