package schelling

import (
	"fmt"

	"github.com/katalvlaran/schelling/lattice"
	"github.com/katalvlaran/schelling/neighborhood"
)

// Run executes the relocation loop until a pass moves nobody or maxIter
// passes have completed, then computes the segregation index.
//
// thresholds[t] is the minimum same-type ratio that lets an agent of type t
// stay; its length must equal Types() and every value must lie in [0,1].
// Parameters are validated before any state changes; on ErrConfiguration
// the Model stays in Initializing and Run may be retried.
//
// Each pass visits every agent present at the start of the pass in a fresh
// random order. An unhappy agent moves to a uniformly chosen empty cell and
// its old cell joins the pool at once, so later agents in the same pass see
// the move. When the lattice has no empty cell, unhappy agents stay.
//
// Returns ErrAlreadyRun on a second call and ErrInvariantViolation if the
// engine detects corrupted state.
// Complexity: O(passes · (L² + N·k·d)).
func (m *Model) Run(maxIter int, thresholds []float64, opts ...RunOption) (Result, error) {
	if m.status != Initializing {
		return m.result, fmt.Errorf("%w (status %s)", ErrAlreadyRun, m.status)
	}
	rc := newRunConfig(opts...)
	if err := m.validateRun(maxIter, thresholds, rc); err != nil {
		return Result{}, err
	}
	ix, err := neighborhood.New(m.lat.Size(), rc.layers)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	js := append([]float64(nil), thresholds...)

	m.status = Iterating
	m.logger.Info("run started",
		"size", m.lat.Size(),
		"types", m.lat.Types(),
		"population", m.lat.Population(),
		"max_iter", maxIter,
		"thresholds", js,
		"layers", rc.layers,
		"alone_happy", rc.aloneHappy,
	)

	m.observer.OnSetup(append([]float64(nil), js...), rc.layers, rc.aloneHappy)
	pool, byType := m.lat.Partition()
	candidates := flatten(byType)
	m.observer.OnSnapshot(byType, 0)

	wantPool := m.lat.EmptyCount()
	counts := m.lat.Counts()
	cycles := 0
	for {
		moved, err := m.pass(ix, pool, candidates, js, rc.aloneHappy)
		if err != nil {
			return m.fail(cycles, err)
		}
		cycles++

		pool, byType = m.lat.Partition()
		if err := checkPopulation(pool, byType, wantPool, counts); err != nil {
			return m.fail(cycles, err)
		}
		candidates = flatten(byType)
		m.logger.Debug("pass complete", "cycle", cycles, "moved", moved)
		m.observer.OnSnapshot(byType, cycles)

		if moved == 0 {
			m.status = Converged
			break
		}
		if cycles >= maxIter {
			m.status = IterationCapReached
			break
		}
	}
	m.observer.OnFinish()

	m.result = Result{
		Cycles:           cycles,
		Converged:        m.status == Converged,
		SegregationIndex: SegregationIndex(m.lat, rc.aloneHappy),
	}
	m.logger.Info("run finished",
		"status", m.status.String(),
		"cycles", m.result.Cycles,
		"segregation_index", m.result.SegregationIndex,
	)

	return m.result, nil
}

// pass performs one randomized sweep over candidates and returns the number
// of relocations. pool is consumed: targets are swap-removed by index and
// vacated cells appended, so its length is constant.
func (m *Model) pass(ix *neighborhood.Index, pool, candidates []lattice.Cell, js []float64, aloneHappy bool) (int, error) {
	shuffleCells(candidates, m.rng)
	want := len(pool)
	moved := 0
	for _, c := range candidates {
		typ := m.lat.At(c)
		if typ == lattice.Empty {
			return moved, fmt.Errorf("%w: candidate %v lost its agent before its visit",
				ErrInvariantViolation, c)
		}
		if Ratio(m.lat, ix, c, typ, aloneHappy) >= js[typ] {
			continue
		}
		if len(pool) == 0 {
			continue
		}

		u := m.rng.Intn(len(pool))
		target := pool[u]
		last := len(pool) - 1
		pool[u] = pool[last]
		pool = append(pool[:last], c)

		if err := m.lat.Move(c, target); err != nil {
			return moved, err
		}
		moved++
	}
	if len(pool) != want {
		return moved, fmt.Errorf("%w: empty-cell pool has %d cells, want %d",
			ErrInvariantViolation, len(pool), want)
	}

	return moved, nil
}

// checkPopulation verifies that the empty-cell count and every per-type count
// still match their initial values.
func checkPopulation(pool []lattice.Cell, byType [][]lattice.Cell, wantPool int, counts []int) error {
	if len(pool) != wantPool {
		return fmt.Errorf("%w: %d empty cells, want %d", ErrInvariantViolation, len(pool), wantPool)
	}
	for t, cells := range byType {
		if len(cells) != counts[t] {
			return fmt.Errorf("%w: type %d has %d agents, want %d",
				ErrInvariantViolation, t, len(cells), counts[t])
		}
	}
	return nil
}

// fail freezes the model in Failed and records how far it got.
func (m *Model) fail(cycles int, err error) (Result, error) {
	m.status = Failed
	m.result = Result{Cycles: cycles}
	m.logger.Error("run aborted", "cycles", cycles, "error", err)
	return m.result, err
}

// validateRun checks run parameters against the lattice.
func (m *Model) validateRun(maxIter int, thresholds []float64, rc runConfig) error {
	if maxIter < 1 {
		return fmt.Errorf("%w: max_iter must be at least 1, got %d", ErrConfiguration, maxIter)
	}
	if rc.layers < 1 {
		return fmt.Errorf("%w: layers must be at least 1, got %d", ErrConfiguration, rc.layers)
	}
	if len(thresholds) != m.lat.Types() {
		return fmt.Errorf("%w: %d thresholds for %d types", ErrConfiguration, len(thresholds), m.lat.Types())
	}
	for t, j := range thresholds {
		// written as a negated range test so NaN is rejected too
		if !(j >= 0 && j <= 1) {
			return fmt.Errorf("%w: threshold %v of type %d outside [0,1]", ErrConfiguration, j, t)
		}
	}
	return nil
}
