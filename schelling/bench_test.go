package schelling_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/schelling/lattice"
	"github.com/katalvlaran/schelling/neighborhood"
	"github.com/katalvlaran/schelling/schelling"
)

func BenchmarkRun(b *testing.B) {
	for _, size := range []int{20, 50, 100} {
		perType := size * size * 4 / 10
		b.Run(fmt.Sprintf("L=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := schelling.New(size, perType, 2, schelling.WithSeed(int64(i)))
				if err != nil {
					b.Fatal(err)
				}
				if _, err := m.Run(100, []float64{0.5, 0.5}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRatio(b *testing.B) {
	l, err := schelling.New(100, 4000, 2, schelling.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	lat, err := lattice.FromOccupants(l.Occupancy(), 2)
	if err != nil {
		b.Fatal(err)
	}
	cells := lat.Occupied()[0]
	for _, layers := range []int{1, 2, 3} {
		ix, err := neighborhood.New(100, layers)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("layers=%d", layers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = schelling.Ratio(lat, ix, cells[i%len(cells)], 0, true)
			}
		})
	}
}

func BenchmarkSegregationIndex(b *testing.B) {
	m, err := schelling.New(100, 4000, 2, schelling.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	lat, err := lattice.FromOccupants(m.Occupancy(), 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = schelling.SegregationIndex(lat, true)
	}
}
