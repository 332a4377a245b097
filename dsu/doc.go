// Package dsu implements a disjoint-set forest (union-find) over dense
// integer ids.
//
// What:
//
//   - Forest partitions ids 0..n-1 into disjoint sets, each represented
//     by a root whose parent is itself.
//   - Find resolves an id to its root; Union merges two sets; Sets
//     counts the remaining partitions.
//
// Why:
//
//   - Kruskal-style spanning-tree construction: accepting an edge must
//     first prove its endpoints live in different components, or the
//     edge would close a cycle.
//
// Complexity:
//
//   - Find / Union: near-O(1) amortized — the forest applies iterative
//     path compression and union by rank. Neither optimization changes
//     which sets exist after any sequence of unions, only how fast
//     roots resolve, so callers observe identical partitions either way.
//   - Memory: O(n).
//
// Errors:
//
//   - ErrInvalidSize: requested element count below 1.
//
// Invariant: following parent links from any id terminates at a
// self-parenting root after every Union.
package dsu
