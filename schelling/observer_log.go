package schelling

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/schelling/lattice"
)

// LogObserver reports checkpoints to a *slog.Logger: the run parameters at
// setup and the per-type agent counts of every snapshot at the given level.
type LogObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogObserver returns an observer that logs snapshots at level.
// Panics on a nil logger.
func NewLogObserver(logger *slog.Logger, level slog.Level) *LogObserver {
	if logger == nil {
		panic("schelling: NewLogObserver(nil)")
	}
	return &LogObserver{logger: logger, level: level}
}

// OnSetup logs the run parameters.
func (o *LogObserver) OnSetup(thresholds []float64, layers int, aloneHappy bool) {
	o.logger.Log(context.Background(), o.level, "observer setup",
		"thresholds", thresholds,
		"layers", layers,
		"alone_happy", aloneHappy,
	)
}

// OnSnapshot logs the iteration and the number of agents of every type.
func (o *LogObserver) OnSnapshot(cellsByType [][]lattice.Cell, iteration int) {
	if !o.logger.Enabled(context.Background(), o.level) {
		return
	}
	counts := make([]int, len(cellsByType))
	for t, cells := range cellsByType {
		counts[t] = len(cells)
	}
	o.logger.Log(context.Background(), o.level, "snapshot",
		"iteration", iteration,
		"counts", counts,
	)
}

// OnFinish logs the end of the run.
func (o *LogObserver) OnFinish() {
	o.logger.Log(context.Background(), o.level, "observer finish")
}
