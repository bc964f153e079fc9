package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schelling/lattice"
	"github.com/katalvlaran/schelling/neighborhood"
)

// TestNew_Errors verifies that New rejects non-positive sizes and radii.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name         string
		size, layers int
		err          error
	}{
		{"ZeroSize", 0, 1, neighborhood.ErrBadSize},
		{"NegativeSize", -2, 1, neighborhood.ErrBadSize},
		{"ZeroLayers", 4, 0, neighborhood.ErrBadLayers},
		{"NegativeLayers", 4, -1, neighborhood.ErrBadLayers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := neighborhood.New(tc.size, tc.layers)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestOffsets checks count, order and exclusion of the origin.
func TestOffsets(t *testing.T) {
	require.Nil(t, neighborhood.Offsets(0))

	one := neighborhood.Offsets(1)
	require.Equal(t, [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}, one)

	for layers := 1; layers <= 5; layers++ {
		offs := neighborhood.Offsets(layers)
		require.Len(t, offs, neighborhood.Degree(layers))
		seen := make(map[[2]int]bool, len(offs))
		for _, d := range offs {
			require.NotEqual(t, [2]int{0, 0}, d)
			require.LessOrEqual(t, abs(d[0]), layers)
			require.LessOrEqual(t, abs(d[1]), layers)
			require.False(t, seen[d], "offset %v repeated", d)
			seen[d] = true
		}
	}
}

// TestDegree pins the (2·layers+1)² − 1 formula.
func TestDegree(t *testing.T) {
	assert.Equal(t, 8, neighborhood.Degree(1))
	assert.Equal(t, 24, neighborhood.Degree(2))
	assert.Equal(t, 48, neighborhood.Degree(3))
}

// TestNeighbors_Wraparound checks the four corners of a 5×5 torus at radius 1.
func TestNeighbors_Wraparound(t *testing.T) {
	ix, err := neighborhood.New(5, 1)
	require.NoError(t, err)
	require.Equal(t, 5, ix.Size())
	require.Equal(t, 1, ix.Layers())
	require.Equal(t, 8, ix.Degree())

	cases := []struct {
		cell lattice.Cell
		want []lattice.Cell
	}{
		{lattice.Cell{X: 0, Y: 0}, []lattice.Cell{
			{X: 4, Y: 4}, {X: 4, Y: 0}, {X: 4, Y: 1},
			{X: 0, Y: 4}, {X: 0, Y: 1},
			{X: 1, Y: 4}, {X: 1, Y: 0}, {X: 1, Y: 1},
		}},
		{lattice.Cell{X: 4, Y: 4}, []lattice.Cell{
			{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 3, Y: 0},
			{X: 4, Y: 3}, {X: 4, Y: 0},
			{X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 0},
		}},
		{lattice.Cell{X: 4, Y: 0}, []lattice.Cell{
			{X: 3, Y: 4}, {X: 3, Y: 0}, {X: 3, Y: 1},
			{X: 4, Y: 4}, {X: 4, Y: 1},
			{X: 0, Y: 4}, {X: 0, Y: 0}, {X: 0, Y: 1},
		}},
		{lattice.Cell{X: 0, Y: 4}, []lattice.Cell{
			{X: 4, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 0},
			{X: 0, Y: 3}, {X: 0, Y: 0},
			{X: 1, Y: 3}, {X: 1, Y: 4}, {X: 1, Y: 0},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.cell.String(), func(t *testing.T) {
			require.Equal(t, tc.want, ix.Neighbors(tc.cell))
		})
	}
}

// TestNeighbors_InBoundsAndSymmetric checks, for several radii, that every
// neighbor is in bounds and that the relation is symmetric with multiplicity.
func TestNeighbors_InBoundsAndSymmetric(t *testing.T) {
	for _, tc := range []struct{ size, layers int }{{6, 1}, {7, 2}, {9, 3}, {3, 2}, {1, 1}} {
		ix, err := neighborhood.New(tc.size, tc.layers)
		require.NoError(t, err)

		count := make(map[[2]lattice.Cell]int)
		for x := 0; x < tc.size; x++ {
			for y := 0; y < tc.size; y++ {
				c := lattice.Cell{X: x, Y: y}
				nbrs := ix.Neighbors(c)
				require.Len(t, nbrs, neighborhood.Degree(tc.layers))
				for _, n := range nbrs {
					require.True(t, n.X >= 0 && n.X < tc.size && n.Y >= 0 && n.Y < tc.size,
						"neighbor %v of %v out of bounds for L=%d", n, c, tc.size)
					count[[2]lattice.Cell{c, n}]++
				}
			}
		}
		for pair, k := range count {
			require.Equal(t, k, count[[2]lattice.Cell{pair[1], pair[0]}],
				"asymmetric pair %v at L=%d layers=%d", pair, tc.size, tc.layers)
		}
	}
}

// TestNeighbors_SmallTorus documents revisits when the window exceeds the grid.
func TestNeighbors_SmallTorus(t *testing.T) {
	ix, err := neighborhood.New(1, 1)
	require.NoError(t, err)
	self := lattice.Cell{X: 0, Y: 0}
	for _, n := range ix.Neighbors(self) {
		require.Equal(t, self, n)
	}

	ix, err = neighborhood.New(2, 1)
	require.NoError(t, err)
	nbrs := ix.Neighbors(lattice.Cell{X: 0, Y: 0})
	require.Len(t, nbrs, 8)
	require.NotContains(t, nbrs, lattice.Cell{X: 0, Y: 0})
}

// TestOffsets_Copy ensures callers cannot mutate the index geometry.
func TestOffsets_Copy(t *testing.T) {
	ix, err := neighborhood.New(4, 1)
	require.NoError(t, err)
	offs := ix.Offsets()
	offs[0] = [2]int{9, 9}
	require.Equal(t, [2]int{-1, -1}, ix.Offsets()[0])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
