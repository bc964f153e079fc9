// Package schelling is a reproducible engine for the Schelling segregation
// model: agents of several types on a toroidal L×L lattice relocate until
// every one of them is satisfied with its neighborhood or an iteration cap
// is reached.
//
// 🚀 What is in the box?
//
//	• Grid state: placement by uniform sampling without replacement, O(1) cell lookup
//	• Neighborhood index: precomputed Moore neighborhoods of any radius with wraparound
//	• Relocation engine: randomized passes, pool of empty cells, convergence detection
//	• Segregation index: mean same-type share over radius-1 neighborhoods
//	• Observer hooks: setup, per-pass snapshots and finish for external renderers
//
// ✨ Guarantees
//
//   - Deterministic: every random draw comes from one seeded *rand.Rand
//   - Conserving: agent counts per type and the number of empty cells never change
//   - Fail-fast: bad parameters surface as ErrConfiguration before any state moves
//
// Packages:
//
//	lattice/        occupancy grid, Cell and Occupant types, moves
//	neighborhood/   Moore offsets and the precomputed torus neighbor table
//	schelling/      Model, Run, Ratio, SegregationIndex, Clusters, Observer
//	config/         YAML run configuration with environment overrides
//	cmd/schelling/  command line front end
//
// Quick ASCII example (2 types, 3×3, "." empty):
//
//	0 . 1
//	0 0 .      the centre agent sees 2 of type 0 and 3 of type 1,
//	1 . 1      ratio 2/5; with threshold 0.5 it moves.
//
//	go install github.com/katalvlaran/schelling/cmd/schelling@latest
package schelling
