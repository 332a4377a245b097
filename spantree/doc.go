// Package spantree carves a perfect maze out of a fully connected grid
// using a randomized Kruskal construction.
//
// What:
//
//   - Every undirected adjacency of the grid becomes a candidate edge
//     with a uniformly random priority in [0, PriorityBound).
//   - Candidates are drained from a binary min-heap in ascending
//     priority order, ties broken by enumeration order (first
//     enumerated wins), which keeps output deterministic for a fixed
//     seed.
//   - An edge whose endpoints lie in different disjoint-set components
//     is accepted: the components merge and the adjacency is recorded
//     as an open corridor.
//   - An edge whose endpoints already share a component would close a
//     cycle: the neighbor link is severed on both sides — that
//     adjacency is the wall — and the candidate is discarded.
//
// Why:
//
//   - The surviving links form a uniform spanning tree of the lattice:
//     every cell reachable from every other by exactly one path, the
//     defining property of a perfect maze.
//
// Complexity:
//
//   - O(E log E) heap work over E = R×(C-1) + (R-1)×C candidates, plus
//     near-O(1) amortized union-find per edge. Memory: O(E).
//
// Options:
//
//   - WithRand(r):           source of edge priorities (seed it for
//     reproducible mazes).
//   - WithPriorityFunc(fn):  explicit per-edge priorities, overriding
//     the random draw; used by tests and exotic carving schemes.
//   - WithSnapshot(fn):      hook invoked once before any edge is
//     processed and once after each accepted edge; an error aborts.
//
// Errors:
//
//   - ErrNilGrid:        g is nil.
//   - ErrIncompleteTree: postcondition violated — surviving links do
//     not form a spanning tree (indicates a bug, not bad input).
package spantree
