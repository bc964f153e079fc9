package schelling_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schelling/lattice"
	"github.com/katalvlaran/schelling/neighborhood"
	"github.com/katalvlaran/schelling/schelling"
)

const E = lattice.Empty

func mustLattice(t *testing.T, rows [][]lattice.Occupant, types int) *lattice.Lattice {
	t.Helper()
	l, err := lattice.FromOccupants(rows, types)
	require.NoError(t, err)
	return l
}

func mustIndex(t *testing.T, size, layers int) *neighborhood.Index {
	t.Helper()
	ix, err := neighborhood.New(size, layers)
	require.NoError(t, err)
	return ix
}

// TestRatio_AloneAgent verifies the aloneHappy policy for an agent whose
// neighbors are all empty, for every possible type.
func TestRatio_AloneAgent(t *testing.T) {
	for typ := lattice.Occupant(0); typ < 3; typ++ {
		rows := [][]lattice.Occupant{
			{E, E, E},
			{E, typ, E},
			{E, E, E},
		}
		l := mustLattice(t, rows, 3)
		ix := mustIndex(t, 3, 1)
		c := lattice.Cell{X: 1, Y: 1}

		require.Equal(t, 1.0, schelling.Ratio(l, ix, c, typ, true), "type %d happy", typ)
		require.Equal(t, 0.0, schelling.Ratio(l, ix, c, typ, false), "type %d unhappy", typ)
	}
}

// TestRatio_ExcludesEmpties checks that empty neighbors leave the denominator.
func TestRatio_ExcludesEmpties(t *testing.T) {
	l := mustLattice(t, [][]lattice.Occupant{
		{0, 0, 1},
		{E, 0, 1},
		{E, E, 0},
	}, 2)
	ix := mustIndex(t, 3, 1)

	// centre: 3 same, 2 other, 3 empty
	require.InDelta(t, 3.0/5.0, schelling.Ratio(l, ix, lattice.Cell{X: 1, Y: 1}, 0, true), 1e-12)
	// the same neighborhood judged as a type-1 agent
	require.InDelta(t, 2.0/5.0, schelling.Ratio(l, ix, lattice.Cell{X: 1, Y: 1}, 1, true), 1e-12)
}

// TestRatio_FullyOccupied uses the plain denominator of 8.
func TestRatio_FullyOccupied(t *testing.T) {
	l := mustLattice(t, [][]lattice.Occupant{
		{1, 1, 1},
		{0, 0, 1},
		{0, 0, 1},
	}, 2)
	ix := mustIndex(t, 3, 1)
	require.InDelta(t, 3.0/8.0, schelling.Ratio(l, ix, lattice.Cell{X: 1, Y: 1}, 0, false), 1e-12)
}

// TestRatio_RepeatedNeighbors counts wrapped duplicates once per occurrence.
func TestRatio_RepeatedNeighbors(t *testing.T) {
	// On a 2×2 torus the diagonal cell appears 4 times and each orthogonal one twice.
	l := mustLattice(t, [][]lattice.Occupant{
		{0, 1},
		{E, 0},
	}, 2)
	ix := mustIndex(t, 2, 1)
	require.InDelta(t, 4.0/6.0, schelling.Ratio(l, ix, lattice.Cell{X: 0, Y: 0}, 0, true), 1e-12)
}

// TestRatio_WiderNeighborhood compares radius 1 and radius 2 on one layout.
func TestRatio_WiderNeighborhood(t *testing.T) {
	rows := make([][]lattice.Occupant, 7)
	for y := range rows {
		rows[y] = make([]lattice.Occupant, 7)
		for x := range rows[y] {
			rows[y][x] = E
		}
	}
	c := lattice.Cell{X: 3, Y: 3}
	rows[3][3] = 0
	rows[2][3] = 0 // radius 1, same
	rows[4][4] = 1 // radius 1, other
	rows[1][1] = 1 // radius 2 only
	rows[5][3] = 1 // radius 2 only
	rows[3][5] = 0 // radius 2 only
	l := mustLattice(t, rows, 2)

	require.InDelta(t, 1.0/2.0, schelling.Ratio(l, mustIndex(t, 7, 1), c, 0, true), 1e-12)
	require.InDelta(t, 2.0/5.0, schelling.Ratio(l, mustIndex(t, 7, 2), c, 0, true), 1e-12)
}

// TestRatio_Range samples random lattices and checks 0 ≤ ratio ≤ 1.
func TestRatio_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		l, err := lattice.New(9, 1+rng.Intn(20), 3, rng)
		require.NoError(t, err)
		ix := mustIndex(t, 9, 1+rng.Intn(3))
		for typ, cells := range l.Occupied() {
			for _, c := range cells {
				r := schelling.Ratio(l, ix, c, lattice.Occupant(typ), trial%2 == 0)
				require.True(t, r >= 0 && r <= 1, "ratio %v out of range", r)
			}
		}
	}
}
