package schelling

import (
	"math/rand"

	"github.com/katalvlaran/schelling/lattice"
	"github.com/katalvlaran/schelling/neighborhood"
)

// Ratio returns the share of c's occupied neighbors whose type equals typ.
// Empty neighbors are left out of the denominator; if no neighbor is
// occupied the result is 1 when aloneHappy is set and 0 otherwise.
//
// l and ix must describe the same lattice size.
// Complexity: O(d), d = ix.Degree().
func Ratio(l *lattice.Lattice, ix *neighborhood.Index, c lattice.Cell, typ lattice.Occupant, aloneHappy bool) float64 {
	nbrs := ix.Neighbors(c)
	same, occupied := 0, len(nbrs)
	for _, n := range nbrs {
		switch l.At(n) {
		case typ:
			same++
		case lattice.Empty:
			occupied--
		}
	}
	if occupied == 0 {
		if aloneHappy {
			return 1
		}
		return 0
	}
	return float64(same) / float64(occupied)
}

// shuffleCells performs an in-place Fisher–Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) extra space.
func shuffleCells(a []lattice.Cell, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// flatten concatenates the per-type cell lists into one fresh slice.
func flatten(byType [][]lattice.Cell) []lattice.Cell {
	n := 0
	for _, cells := range byType {
		n += len(cells)
	}
	out := make([]lattice.Cell, 0, n)
	for _, cells := range byType {
		out = append(out, cells...)
	}
	return out
}
