package lattice

import "fmt"

// Occupant is the content of a single cell: Empty or a type index in [0, types).
type Occupant int

// Empty marks a cell with no agent.
const Empty Occupant = -1

// IsEmpty reports whether o is the Empty tag.
func (o Occupant) IsEmpty() bool { return o == Empty }

// String renders Empty as "." and type tags as their decimal index.
func (o Occupant) String() string {
	if o == Empty {
		return "."
	}
	return fmt.Sprintf("%d", int(o))
}

// Cell is a lattice coordinate. Identity is the coordinate pair itself.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Lattice is a square grid of Occupant values.
// Size is the side length L; types is the number of agent types.
// counts[t] is the number of agents of type t and never changes after construction.
// cells is x-major: cell (x, y) is cells[x*size+y].
type Lattice struct {
	size   int
	types  int
	counts []int
	cells  []Occupant
}
