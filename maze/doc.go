// Package maze is the one-call entry point of mazegrid: it wires grid
// construction, spanning-tree carving, path solving, and symbolic
// encoding into a single Generate pipeline.
//
// What:
//
//   - Generate(rows, cols, opts...) builds a fully connected lattice,
//     carves a random spanning tree through it, solves the unique path
//     from the fixed entrance (0,0) to the fixed exit
//     (rows-1, cols-1), and encodes the result.
//   - Maze exposes SolutionPath (ordered entrance→exit coordinates),
//     Render (the symbolic raster), and the open-edge set.
//
// Why:
//
//   - Each stage is usable on its own (grid, spantree, solve, symbol),
//     but most callers want the whole pipeline with a seed and maybe a
//     per-step snapshot stream; that is Generate.
//
// Determinism:
//
//   - The same seed and dimensions always produce the same open-edge
//     set, the same solution path, and the same render. Without
//     WithSeed or WithRand, a time-seeded source is used.
//
// Options:
//
//   - WithSeed(s):     reproducible randomness from s.
//   - WithRand(r):     caller-owned randomness source.
//   - WithSnapshot(fn): debug stream — fn receives one symbolic grid
//     before any edge is carved and one after each accepted edge.
//
// Errors:
//
//   - grid.ErrInvalidDimensions (also exported here as
//     ErrInvalidDimensions): rows or cols below 1; surfaced before any
//     work is done.
//   - Consistency errors from carving or encoding indicate bugs and
//     abort Generate — a partially wrong maze is worse than none.
package maze
