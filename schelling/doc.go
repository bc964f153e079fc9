// Package schelling runs the Schelling model of residential segregation on a
// toroidal lattice and reports convergence and a segregation index.
//
// What:
//
//   - New places N agents of each of k types uniformly at random on an L×L
//     lattice (see package lattice).
//   - Model.Run repeats randomized passes over every agent. An agent whose
//     same-type neighbor ratio is below the threshold of its type moves to a
//     uniformly chosen empty cell. Moves are applied immediately, so later
//     agents in the same pass see earlier moves.
//   - The run stops after a pass with no moves (Converged) or when the pass
//     count reaches maxIter (IterationCapReached).
//   - SegregationIndex averages the radius-1 same-type ratio over all agents.
//   - Clusters groups same-type agents connected through radius-1 neighbors;
//     SummarizeClusters reports their count, largest and mean size.
//
// Same-type ratio:
//
//	ratio = same / (d − empty)        d = (2·layers+1)² − 1
//
// Empty neighbors are excluded from the denominator. When every neighbor is
// empty the ratio is 1 if aloneHappy is set and 0 otherwise.
//
// Lifecycle:
//
//	Initializing ──Run──▶ Iterating ──▶ Converged
//	                                 ├─▶ IterationCapReached
//	                                 └─▶ Failed (ErrInvariantViolation)
//
// A Model runs once. Result fields are written exactly once, at termination.
//
// Observer:
//
//	An Observer (WithObserver) receives OnSetup, one OnSnapshot for the
//	initial placement (iteration 0) and one after every pass, then OnFinish.
//	Calls are synchronous; snapshots are fresh slices the engine never reuses.
//
// Determinism:
//
//	All randomness (placement, visiting order, target draws) comes from one
//	*rand.Rand supplied by WithSeed or WithRand. Equal seeds give equal runs.
//	A Model is not safe for concurrent use.
//
// Options:
//
//   - WithSeed / WithRand: RNG source (default: seed 1).
//   - WithObserver: visualization collaborator (default: none).
//   - WithLogger: *slog.Logger for run/pass events (default: discard).
//   - WithLayers (run): relocation neighborhood radius (default 1).
//   - WithAloneHappy (run): ratio policy for isolated agents (default true).
//
// Errors:
//
//   - ErrConfiguration: invalid construction or run parameters.
//   - ErrInvariantViolation: internal state drifted (engine bug).
//   - ErrAlreadyRun: Run called twice on one Model.
package schelling
