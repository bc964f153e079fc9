package lattice

import (
	"fmt"
	"math/rand"
)

// New constructs a size×size lattice with perType agents of each of the
// given number of types, placed on distinct cells drawn uniformly without
// replacement. The first perType sampled cells get type 0, the next perType
// type 1, and so on; every other cell is Empty.
//
// Returns ErrConfiguration if size, perType or types is not positive,
// if perType·types exceeds size², or if rng is nil.
// Complexity: O(L²) time and memory.
func New(size, perType, types int, rng *rand.Rand) (*Lattice, error) {
	switch {
	case size < 1:
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrConfiguration, size)
	case perType < 1:
		return nil, fmt.Errorf("%w: agents per type must be positive, got %d", ErrConfiguration, perType)
	case types < 1:
		return nil, fmt.Errorf("%w: number of types must be positive, got %d", ErrConfiguration, types)
	case perType > size*size/types:
		return nil, fmt.Errorf("%w: %d agents of %d types do not fit on %d cells",
			ErrConfiguration, perType, types, size*size)
	case rng == nil:
		return nil, fmt.Errorf("%w: rng is required", ErrConfiguration)
	}

	total := size * size
	l := &Lattice{
		size:   size,
		types:  types,
		counts: make([]int, types),
		cells:  make([]Occupant, total),
	}
	for i := range l.cells {
		l.cells[i] = Empty
	}

	// A permutation prefix is a uniform sample without replacement.
	picks := rng.Perm(total)[:perType*types]
	for t := 0; t < types; t++ {
		for _, i := range picks[t*perType : (t+1)*perType] {
			l.cells[i] = Occupant(t)
		}
		l.counts[t] = perType
	}

	return l, nil
}

// FromOccupants builds a lattice from an explicit square layout, where
// rows[y][x] is the occupant of cell (x, y). It deep-copies the input.
// Every value must be Empty or a type index in [0, types).
//
// Intended for synthetic grids (tests, fixtures); New is the random constructor.
// Complexity: O(L²) time and memory.
func FromOccupants(rows [][]Occupant, types int) (*Lattice, error) {
	if types < 1 {
		return nil, fmt.Errorf("%w: number of types must be positive, got %d", ErrConfiguration, types)
	}
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: layout has no rows", ErrConfiguration)
	}
	l := &Lattice{
		size:   size,
		types:  types,
		counts: make([]int, types),
		cells:  make([]Occupant, size*size),
	}
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: layout must be square, row %d has %d cells, want %d",
				ErrConfiguration, y, len(row), size)
		}
		for x, o := range row {
			if o != Empty && (o < 0 || int(o) >= types) {
				return nil, fmt.Errorf("%w: occupant %d at %v outside [0,%d)",
					ErrConfiguration, int(o), Cell{x, y}, types)
			}
			l.cells[l.index(x, y)] = o
			if o != Empty {
				l.counts[o]++
			}
		}
	}

	return l, nil
}

// Size returns the side length L.
func (l *Lattice) Size() int { return l.size }

// Types returns the number of agent types.
func (l *Lattice) Types() int { return l.types }

// Population returns the total number of agents across all types.
func (l *Lattice) Population() int {
	n := 0
	for _, c := range l.counts {
		n += c
	}
	return n
}

// EmptyCount returns L² minus the population. It is constant for a lattice.
func (l *Lattice) EmptyCount() int {
	return len(l.cells) - l.Population()
}

// Counts returns a copy of the per-type agent counts.
func (l *Lattice) Counts() []int {
	out := make([]int, len(l.counts))
	copy(out, l.counts)
	return out
}

// InBounds reports whether c lies within the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < l.size && c.Y >= 0 && c.Y < l.size
}

// At returns the occupant of cell c. The cell must be in bounds.
// Complexity: O(1).
func (l *Lattice) At(c Cell) Occupant {
	return l.cells[l.index(c.X, c.Y)]
}

// Partition returns the empty cells and, for every type, the cells occupied
// by that type. Both are fresh slices in row-major order.
// Complexity: O(L²).
func (l *Lattice) Partition() (empty []Cell, byType [][]Cell) {
	empty = make([]Cell, 0, l.EmptyCount())
	byType = make([][]Cell, l.types)
	for t := range byType {
		byType[t] = make([]Cell, 0, l.counts[t])
	}
	for i, o := range l.cells {
		c := l.Coordinate(i)
		if o == Empty {
			empty = append(empty, c)
			continue
		}
		byType[o] = append(byType[o], c)
	}

	return empty, byType
}

// Occupied returns, per type, the cells currently occupied by that type.
// Complexity: O(L²).
func (l *Lattice) Occupied() [][]Cell {
	_, byType := l.Partition()
	return byType
}

// Move relocates the agent at from onto the empty cell to.
// Returns ErrInvariantViolation if either cell is out of bounds, from is
// Empty, or to is already occupied; the lattice is unchanged in that case.
// Complexity: O(1).
func (l *Lattice) Move(from, to Cell) error {
	if !l.InBounds(from) || !l.InBounds(to) {
		return fmt.Errorf("%w: move %v -> %v leaves the %dx%d lattice",
			ErrInvariantViolation, from, to, l.size, l.size)
	}
	src, dst := l.index(from.X, from.Y), l.index(to.X, to.Y)
	if l.cells[src] == Empty {
		return fmt.Errorf("%w: no agent at %v", ErrInvariantViolation, from)
	}
	if l.cells[dst] != Empty {
		return fmt.Errorf("%w: target %v already holds type %d",
			ErrInvariantViolation, to, int(l.cells[dst]))
	}
	l.cells[dst], l.cells[src] = l.cells[src], Empty

	return nil
}

// Snapshot returns a deep copy of the occupancy as rows[y][x].
// Complexity: O(L²).
func (l *Lattice) Snapshot() [][]Occupant {
	rows := make([][]Occupant, l.size)
	for y := range rows {
		rows[y] = make([]Occupant, l.size)
		for x := range rows[y] {
			rows[y][x] = l.cells[l.index(x, y)]
		}
	}
	return rows
}

// index maps (x,y) to the flat index x*size + y.
// Complexity: O(1).
func (l *Lattice) index(x, y int) int {
	return x*l.size + y
}

// Coordinate converts a flat index back to its cell.
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) Cell {
	return Cell{X: idx / l.size, Y: idx % l.size}
}
