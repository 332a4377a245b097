// Package grid models an R×C maze lattice as a graph: one cell per
// position, with up to four neighbor links (West, North, East, South)
// that all exist at construction time and are only ever severed.
//
// What:
//
//   - Grid owns rows×cols cells addressed by Coord{Row, Col} or a dense
//     row-major index Row*cols+Col.
//   - Neighbor links are mutual: severing (A,B) removes the link from
//     both endpoints in one call.
//   - EdgeKey canonicalizes an unordered adjacent pair (smaller Coord
//     first, row-major order) so each adjacency has exactly one map key.
//   - EdgeSet records which adjacencies survived carving as open
//     corridors.
//
// Why:
//
//   - Maze carving: a spanning-tree builder severs links that become
//     walls and records the rest as corridors.
//   - Path search: a solver walks only surviving links and stamps
//     Visited / OnPath flags on cells.
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - Sever, Linked, CellAt, InBounds: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols below 1.
//
// The grid starts fully connected (a 4-regular mesh minus boundary
// effects); links are never re-added after severing.
package grid
