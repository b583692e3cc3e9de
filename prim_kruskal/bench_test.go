package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/windgrid/prim_kruskal"
)

// BenchmarkKruskal measures a random grid with 500 nodes and 2000 lines.
func BenchmarkKruskal(b *testing.B) {
	g := buildRandomGrid(42, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same grid grown from each region's first node.
func BenchmarkPrim(b *testing.B) {
	g := buildRandomGrid(42, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g)
	}
}
