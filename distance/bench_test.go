package distance_test

import (
	"testing"

	"github.com/katalvlaran/duopath/distance"
)

func BenchmarkCompute_Exact(b *testing.B) {
	g := randomGraph(b, 500, 0.01, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Compute(g)
	}
}

func BenchmarkCompute_Capped(b *testing.B) {
	g := randomGraph(b, 500, 0.01, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Compute(g, distance.WithCap(2, 0, 1))
	}
}
