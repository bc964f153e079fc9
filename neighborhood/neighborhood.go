package neighborhood

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/schelling/lattice"
)

// Sentinel errors for index construction.
var (
	// ErrBadSize indicates a non-positive lattice side length.
	ErrBadSize = errors.New("neighborhood: lattice size must be positive")
	// ErrBadLayers indicates a neighborhood radius below 1.
	ErrBadLayers = errors.New("neighborhood: layers must be at least 1")
)

// DefaultLayers is the radius of the classic 8-cell Moore neighborhood.
const DefaultLayers = 1

// Index is the immutable neighbor table of a toroidal lattice.
// table[x*size+y] holds the neighbors of cell (x, y) in Offsets order.
type Index struct {
	size    int
	layers  int
	offsets [][2]int
	table   [][]lattice.Cell
}

// Degree returns the neighbor count for a radius: (2·layers+1)² − 1.
// Complexity: O(1).
func Degree(layers int) int {
	side := 2*layers + 1
	return side*side - 1
}

// Offsets returns every (dx, dy) with −layers ≤ dx, dy ≤ layers except (0, 0),
// ordered by dx then dy. layers < 1 yields nil.
// Complexity: O(d).
func Offsets(layers int) [][2]int {
	if layers < 1 {
		return nil
	}
	out := make([][2]int, 0, Degree(layers))
	for dx := -layers; dx <= layers; dx++ {
		for dy := -layers; dy <= layers; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, [2]int{dx, dy})
		}
	}
	return out
}

// New builds the neighbor table of a size×size torus for the given radius.
// Returns ErrBadSize if size < 1 and ErrBadLayers if layers < 1.
// Complexity: O(L²·d) time and memory.
func New(size, layers int) (*Index, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	if layers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLayers, layers)
	}

	offsets := Offsets(layers)
	table := make([][]lattice.Cell, size*size)
	// One backing array keeps the table contiguous.
	backing := make([]lattice.Cell, size*size*len(offsets))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			i := x*size + y
			row := backing[i*len(offsets) : (i+1)*len(offsets) : (i+1)*len(offsets)]
			for k, d := range offsets {
				row[k] = lattice.Cell{X: wrap(x+d[0], size), Y: wrap(y+d[1], size)}
			}
			table[i] = row
		}
	}

	return &Index{
		size:    size,
		layers:  layers,
		offsets: offsets,
		table:   table,
	}, nil
}

// Neighbors returns the precomputed neighbors of c. The slice is shared and
// must not be modified. c must lie within the lattice.
// Complexity: O(1).
func (ix *Index) Neighbors(c lattice.Cell) []lattice.Cell {
	return ix.table[c.X*ix.size+c.Y]
}

// Size returns the lattice side length the index was built for.
func (ix *Index) Size() int { return ix.size }

// Layers returns the neighborhood radius.
func (ix *Index) Layers() int { return ix.layers }

// Degree returns the number of neighbors stored per cell.
func (ix *Index) Degree() int { return len(ix.offsets) }

// Offsets returns a copy of the offset vectors used to build the index.
func (ix *Index) Offsets() [][2]int {
	out := make([][2]int, len(ix.offsets))
	copy(out, ix.offsets)
	return out
}

// wrap reduces v into [0, n) for any sign of v.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
