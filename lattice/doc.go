// Package lattice holds the occupancy state of a square L×L grid on which
// Schelling agents live.
//
// What:
//
//   - Lattice stores, for every cell, either Empty or the type tag of the agent
//     that lives there. Lookups are O(1) over a flat row-major slice.
//   - New places perType agents of each type on distinct, uniformly sampled
//     cells (sampling without replacement over all L² cells).
//   - Partition splits the grid into the list of empty cells and, per type,
//     the list of occupied cells.
//   - Move relocates one agent to an empty cell and refuses anything else.
//
// Why:
//
//   - The relocation loop asks "who lives here?" for every neighbor of every
//     agent on every pass, so occupancy lookup must be constant time.
//   - Agents are never created, destroyed or retyped; Move is the only
//     mutation and it preserves per-type counts by construction.
//
// Complexity:
//
//   - New:       O(L²) time and memory.
//   - At, Move:  O(1).
//   - Partition: O(L²) time, fresh slices on every call.
//
// Errors:
//
//   - ErrConfiguration: non-positive size/population/type count, population
//     larger than the grid, missing RNG, malformed explicit layouts.
//   - ErrInvariantViolation: a Move from an empty cell, onto an occupied cell,
//     or outside the grid.
//
// Coordinates: cell (x, y) lives at flat index x·L + y, so a sampled flat index
// i maps to x = i / L, y = i % L.
package lattice
