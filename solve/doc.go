// Package solve discovers the unique entrance→exit path through a
// carved maze grid.
//
// What:
//
//   - Path walks the grid's surviving neighbor links depth-first from
//     the entrance, in fixed West, North, East, South order, until it
//     reaches the exit.
//   - Every cell on the discovered path is stamped OnPath; every cell
//     touched during the search is stamped Visited.
//   - The walk is an explicit stack of (cell, next-direction) frames
//     rather than native recursion, so a corridor-shaped maze of tens
//     of thousands of cells cannot exhaust the call stack. Traversal
//     order is identical to the recursive formulation.
//
// Why:
//
//   - A carved maze is a tree, so exactly one entrance→exit path
//     exists; dead ends are abandoned by popping frames and each cell
//     is visited at most once.
//
// Complexity:
//
//   - O(cells) time, O(cells) memory for the frame stack.
//
// Errors:
//
//   - ErrNilGrid:     g is nil.
//   - ErrOutOfBounds: entrance or exit lies outside the grid.
//   - ErrNoPath:      exit unreachable over surviving links — cannot
//     occur on a properly carved (tree-shaped) grid and signals a bug.
package solve
