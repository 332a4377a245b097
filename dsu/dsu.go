// Package dsu provides the disjoint-set forest backing spanning-tree
// construction: dense integer ids, iterative path compression, union by rank.
package dsu

import "errors"

// ErrInvalidSize indicates a forest was requested with fewer than 1 element.
var ErrInvalidSize = errors.New("dsu: size must be at least 1")

// Forest is a disjoint-set forest over ids 0..n-1.
// The zero value is not usable; construct with New.
// Ids passed to Find, Union, and Same must be in [0, n).
type Forest struct {
	parent []int
	rank   []int
	sets   int
}

// New constructs a forest of n singleton sets, one per id in [0, n).
// Returns ErrInvalidSize when n < 1.
// Complexity: O(n).
func New(n int) (*Forest, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	f := &Forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	// Every id starts as its own root.
	for i := range f.parent {
		f.parent[i] = i
	}

	return f, nil
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Sets returns the number of disjoint sets remaining.
// A fully merged forest reports 1.
func (f *Forest) Sets() int { return f.sets }

// Find returns the root id of the set containing x.
// The walk is iterative with path compression (each visited node is
// repointed to its grandparent), so no recursion depth concerns arise
// even on adversarial merge orders.
// Complexity: near-O(1) amortized.
func (f *Forest) Find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// Same reports whether a and b belong to the same set.
// Complexity: near-O(1) amortized.
func (f *Forest) Same(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Union merges the sets containing a and b and reports whether a merge
// happened. Returns false when a and b already share a root, leaving
// the forest unchanged.
// Complexity: near-O(1) amortized.
func (f *Forest) Union(a, b int) bool {
	rootA := f.Find(a)
	rootB := f.Find(b)
	if rootA == rootB {
		return false
	}

	// Attach the smaller-rank tree under the larger-rank root.
	if f.rank[rootA] < f.rank[rootB] {
		f.parent[rootA] = rootB
	} else {
		f.parent[rootB] = rootA
		if f.rank[rootA] == f.rank[rootB] {
			f.rank[rootA]++
		}
	}
	f.sets--

	return true
}
