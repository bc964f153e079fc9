// Package neighborhood precomputes the square Moore neighborhood of every cell
// of an L×L toroidal lattice.
//
// What:
//
//   - Offsets(layers) lists every (dx, dy) in [−layers, layers]² except (0, 0),
//     dx varying slowest.
//   - New(size, layers) applies those offsets to every cell with periodic
//     wraparound, ((x+dx) mod L, (y+dy) mod L), and stores the result.
//   - Index.Neighbors(c) returns the stored list; it never allocates.
//
// Why:
//
//   - The geometry depends only on L and layers, never on occupancy. Building
//     it once removes L²·(2·layers+1)² modulo operations from every pass.
//
// Complexity:
//
//   - New:       O(L²·d) time and memory, d = (2·layers+1)² − 1.
//   - Neighbors: O(1).
//
// Notes:
//
//   - Every cell has exactly d neighbors. When 2·layers+1 > L the wraparound
//     revisits cells, so a list may contain duplicates or the cell itself;
//     the list is kept as is and every entry counts once.
//
// Errors:
//
//   - ErrBadSize: size < 1.
//   - ErrBadLayers: layers < 1.
package neighborhood
