package schelling

import "github.com/katalvlaran/schelling/lattice"

// Status is the lifecycle state of a Model.
type Status int

const (
	// Initializing: agents placed, Run not yet called.
	Initializing Status = iota
	// Iterating: Run is executing passes.
	Iterating
	// Converged: a pass completed with no relocation.
	Converged
	// IterationCapReached: maxIter passes ran and agents were still moving.
	IterationCapReached
	// Failed: Run aborted on an invariant violation.
	Failed
)

// String returns the state name.
func (s Status) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case IterationCapReached:
		return "iteration-cap-reached"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is an end-of-run state.
func (s Status) Terminal() bool {
	return s == Converged || s == IterationCapReached || s == Failed
}

// Result is the outcome of one run:
//   - Cycles: number of completed passes, including a final pass with no moves.
//   - Converged: true iff the run stopped on a pass with no moves.
//   - SegregationIndex: mean radius-1 same-type ratio, in [0,1].
type Result struct {
	Cycles           int     `json:"cycles"`
	Converged        bool    `json:"converged"`
	SegregationIndex float64 `json:"segregation_index"`
}

// Observer is the visualization collaborator notified at run checkpoints.
// Every slice passed in is a fresh copy owned by the observer.
type Observer interface {
	// OnSetup is called once, before the initial snapshot.
	OnSetup(thresholds []float64, layers int, aloneHappy bool)
	// OnSnapshot is called with the occupied cells grouped by type:
	// iteration 0 for the initial placement, then after every pass.
	OnSnapshot(cellsByType [][]lattice.Cell, iteration int)
	// OnFinish is called once after the last snapshot.
	OnFinish()
}

// NopObserver ignores every checkpoint; all three methods are no-ops.
type NopObserver struct{}

func (NopObserver) OnSetup([]float64, int, bool)    {}
func (NopObserver) OnSnapshot([][]lattice.Cell, int) {}
func (NopObserver) OnFinish()                        {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are no-ops.
type ObserverFuncs struct {
	Setup    func(thresholds []float64, layers int, aloneHappy bool)
	Snapshot func(cellsByType [][]lattice.Cell, iteration int)
	Finish   func()
}

// OnSetup calls f.Setup if set.
func (f ObserverFuncs) OnSetup(thresholds []float64, layers int, aloneHappy bool) {
	if f.Setup != nil {
		f.Setup(thresholds, layers, aloneHappy)
	}
}

// OnSnapshot calls f.Snapshot if set.
func (f ObserverFuncs) OnSnapshot(cellsByType [][]lattice.Cell, iteration int) {
	if f.Snapshot != nil {
		f.Snapshot(cellsByType, iteration)
	}
}

// OnFinish calls f.Finish if set.
func (f ObserverFuncs) OnFinish() {
	if f.Finish != nil {
		f.Finish()
	}
}
