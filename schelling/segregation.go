package schelling

import (
	"github.com/katalvlaran/schelling/lattice"
	"github.com/katalvlaran/schelling/neighborhood"
)

// SegregationIndex returns the mean same-type ratio of every agent over its
// 8-cell radius-1 neighborhood, using the same empty-exclusion and aloneHappy
// policy as Ratio. It ignores the radius used for relocation.
//
// Result is in [0,1]: 1 when every agent's occupied neighbors share its type.
// A lattice without agents yields 0.
// Complexity: O(L²).
func SegregationIndex(l *lattice.Lattice, aloneHappy bool) float64 {
	ix, err := neighborhood.New(l.Size(), neighborhood.DefaultLayers)
	if err != nil {
		// unreachable: a constructed lattice has Size() >= 1
		return 0
	}

	sum, agents := 0.0, 0
	for typ, cells := range l.Occupied() {
		for _, c := range cells {
			sum += Ratio(l, ix, c, lattice.Occupant(typ), aloneHappy)
			agents++
		}
	}
	if agents == 0 {
		return 0
	}
	return sum / float64(agents)
}
