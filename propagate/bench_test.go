package propagate_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/linkgrid/builder"
	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/propagate"
)

// BenchmarkDeform measures one corner drag on a fresh 64×64 grid per iteration.
func BenchmarkDeform(b *testing.B) {
	size := lattice.Index{X: 64, Y: 64, Z: 1}
	base, err := builder.Build(size)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := base.Clone()
		e, err := propagate.New(s, reference())
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		b.StartTimer()
		if _, err := e.Deform(r2.Vec{X: -2, Y: -2}, lattice.Index{}); err != nil {
			b.Fatalf("Deform failed: %v", err)
		}
	}
}
