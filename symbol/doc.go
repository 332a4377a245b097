// Package symbol encodes a carved, solved maze grid into a neutral
// symbolic raster for downstream renderers.
//
// What:
//
//   - Encode maps an R×C maze onto a (2R+1)×(2C+1) grid of Kinds:
//     odd/odd positions are cell centers, odd/even and even/odd
//     positions are the gaps between cells, everything else is lattice
//     wall. The top boundary opens above the entrance column, the
//     bottom boundary opens below the exit column.
//   - A gap is Wall when no open edge joins the straddling cells, Open
//     when the corridor exists, and Path when the solution runs
//     through it (both straddling cells OnPath over an open edge).
//
// Why:
//
//   - The symbolic grid carries kinds, not characters or pixels;
//     console printers, image writers, and terminal viewers each pick
//     their own glyphs or colors without re-deriving maze structure.
//
// Complexity:
//
//   - Encode: O(R×C) time and memory.
//
// Errors:
//
//   - ErrNilGrid:        g is nil.
//   - ErrOutOfBounds:    entrance or exit outside the grid.
//   - ErrEdgeConsistency: an open edge is recorded for a severed
//     neighbor link — the spanning-tree invariant was violated
//     upstream; fail loudly rather than render a wrong maze.
package symbol
