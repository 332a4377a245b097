package spantree

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/mazegrid/dsu"
	"github.com/katalvlaran/mazegrid/grid"
)

// candidate is one undirected adjacency awaiting the accept/reject
// decision. seq is the enumeration sequence number and breaks priority
// ties so that ordering never depends on heap internals or set roots.
type candidate struct {
	key      grid.EdgeKey
	priority int
	seq      int
}

// Build carves a spanning tree into g: accepted adjacencies are
// recorded in the returned open-edge set, rejected adjacencies have
// their neighbor links severed on both sides (those are the walls).
// The grid is mutated in place and afterward its surviving links form
// a tree over all cells.
//
// Steps:
//  1. Validate g and apply options.
//  2. Enumerate each undirected adjacency exactly once (East and South
//     links of every cell) and push it onto a binary min-heap with a
//     uniformly random priority; remember enumeration order for ties.
//  3. Drain the heap in ascending (priority, seq) order. Accept an
//     edge when its endpoints are in different union-find components
//     (union + record as open); otherwise sever the link — keeping the
//     link would let a solver walk through a wall, since the link
//     structure and the open-edge set are otherwise redundant.
//  4. Verify the postcondition: exactly cells-1 open edges and a
//     single component.
//
// Complexity: O(E log E) time, O(E) memory.
func Build(g *grid.Grid, opts ...Option) (grid.EdgeSet, error) {
	// 1. Validate input grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2. Apply options; fall back to a time-seeded source when the
	//    caller did not supply randomness.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	priority := o.Priority
	if priority == nil {
		priority = func(_, _ grid.Coord) int { return o.Rand.Intn(PriorityBound) }
	}

	// 3. Min-heap ordered by (priority, seq): ascending priority,
	//    first-enumerated wins on ties.
	heap := binaryheap.NewWith(func(x, y interface{}) int {
		a, b := x.(candidate), y.(candidate)
		if a.priority != b.priority {
			return a.priority - b.priority
		}

		return a.seq - b.seq
	})

	// 4. Enumerate each adjacency once: only the East and South link of
	//    every cell, so (A,B) and (B,A) never both appear.
	var (
		a, b grid.Coord
		seq  int
	)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			a = grid.Coord{Row: r, Col: c}
			for _, d := range [2]grid.Direction{grid.East, grid.South} {
				b = a.Move(d)
				if !g.InBounds(b) {
					continue
				}
				heap.Push(candidate{
					key:      grid.NewEdgeKey(a, b),
					priority: priority(a, b),
					seq:      seq,
				})
				seq++
			}
		}
	}

	// 5. One singleton set per cell.
	forest, err := dsu.New(g.NumCells())
	if err != nil {
		return nil, fmt.Errorf("spantree: init forest: %w", err)
	}

	open := make(grid.EdgeSet, g.NumCells()-1)

	// Initial snapshot: the untouched lattice, no corridors yet.
	if o.Snapshot != nil {
		if err = o.Snapshot(open); err != nil {
			return nil, fmt.Errorf("spantree: snapshot hook: %w", err)
		}
	}

	// 6. Kruskal drain: accept edges that join components, wall off
	//    edges that would close a cycle.
	var (
		v    interface{}
		cand candidate
	)
	for !heap.Empty() {
		v, _ = heap.Pop()
		cand = v.(candidate)

		if forest.Union(g.Index(cand.key.A), g.Index(cand.key.B)) {
			// Accepted: the adjacency becomes an open corridor.
			open[cand.key] = struct{}{}
			if o.Snapshot != nil {
				if err = o.Snapshot(open); err != nil {
					return nil, fmt.Errorf("spantree: snapshot hook: %w", err)
				}
			}
			continue
		}
		// Rejected: the adjacency becomes a wall. The candidate itself
		// is discarded — only open edges are retained.
		g.Sever(cand.key.A, cand.key.B)
	}

	// 7. Spanning-tree postcondition: cells-1 corridors, one component.
	if len(open) != g.NumCells()-1 || forest.Sets() != 1 {
		return nil, ErrIncompleteTree
	}

	return open, nil
}
