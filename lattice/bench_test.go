package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/schelling/lattice"
)

// BenchmarkNew measures random placement on a 200×200 lattice at 90% density.
// Complexity: O(L²)
func BenchmarkNew(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lattice.New(200, 18000, 2, rng)
	}
}

// BenchmarkPartition measures the per-pass O(L²) rebuild of cell lists.
// Complexity: O(L²)
func BenchmarkPartition(b *testing.B) {
	l, err := lattice.New(200, 18000, 2, rand.New(rand.NewSource(42)))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Partition()
	}
}
