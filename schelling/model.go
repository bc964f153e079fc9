package schelling

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/schelling/lattice"
)

// Model is one Schelling simulation: a lattice, its RNG and the run state.
// It exclusively owns the lattice and the empty-cell pool.
type Model struct {
	lat      *lattice.Lattice
	rng      *rand.Rand
	observer Observer
	logger   *slog.Logger

	status Status
	result Result
}

// New places perType agents of each of types types on a size×size torus.
// Returns ErrConfiguration if size, perType or types is not positive or if
// perType·types exceeds size².
// Complexity: O(L²).
func New(size, perType, types int, opts ...Option) (*Model, error) {
	cfg := newModelConfig(opts...)
	lat, err := lattice.New(size, perType, types, cfg.rng)
	if err != nil {
		return nil, err
	}
	return newModel(lat, cfg), nil
}

// NewFromLattice wraps an existing lattice, typically one built with
// lattice.FromOccupants. The Model takes ownership of l.
// Returns ErrConfiguration if l is nil.
func NewFromLattice(l *lattice.Lattice, opts ...Option) (*Model, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: lattice is nil", ErrConfiguration)
	}
	return newModel(l, newModelConfig(opts...)), nil
}

func newModel(l *lattice.Lattice, cfg modelConfig) *Model {
	return &Model{
		lat:      l,
		rng:      cfg.rng,
		observer: cfg.observer,
		logger:   cfg.logger,
		status:   Initializing,
	}
}

// Size returns the lattice side length.
func (m *Model) Size() int { return m.lat.Size() }

// Types returns the number of agent types.
func (m *Model) Types() int { return m.lat.Types() }

// Status returns the lifecycle state.
func (m *Model) Status() Status { return m.status }

// Cycles returns the number of completed passes.
func (m *Model) Cycles() int { return m.result.Cycles }

// Converged reports whether the run stopped on a pass with no moves.
func (m *Model) Converged() bool { return m.result.Converged }

// SegregationIndex returns the index computed at the end of Run, or 0 before.
func (m *Model) SegregationIndex() float64 { return m.result.SegregationIndex }

// Result returns the run outcome. It is the zero Result until Run finishes.
func (m *Model) Result() Result { return m.result }

// At returns the current occupant of c.
func (m *Model) At(c lattice.Cell) lattice.Occupant { return m.lat.At(c) }

// CellsByType returns fresh per-type lists of occupied cells.
func (m *Model) CellsByType() [][]lattice.Cell { return m.lat.Occupied() }

// Occupancy returns a copy of the grid as rows[y][x].
func (m *Model) Occupancy() [][]lattice.Occupant { return m.lat.Snapshot() }

// Counts returns the per-type agent counts.
func (m *Model) Counts() []int { return m.lat.Counts() }

// Clusters returns the current same-type clusters.
func (m *Model) Clusters() []Cluster { return Clusters(m.lat) }

// ClusterStats summarizes the current same-type clusters.
func (m *Model) ClusterStats() ClusterStats { return SummarizeClusters(m.lat) }
