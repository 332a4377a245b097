// Package solve implements iterative depth-first path discovery over a
// carved maze grid.
package solve

import (
	"errors"

	"github.com/katalvlaran/mazegrid/grid"
)

var (
	// ErrNilGrid is returned when Path receives a nil grid.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrOutOfBounds indicates the entrance or exit coordinate lies
	// outside the grid.
	ErrOutOfBounds = errors.New("solve: entrance or exit out of bounds")

	// ErrNoPath indicates the exit was not reachable over surviving
	// links. A carved maze is connected, so this signals a bug rather
	// than bad input.
	ErrNoPath = errors.New("solve: exit unreachable from entrance")
)

// frame is one explicit-stack entry: the cell being explored and the
// next compass direction (in grid.Direction order) to try from it.
type frame struct {
	at   grid.Coord
	next grid.Direction
}

// Path finds the unique path from entrance to exit over g's surviving
// neighbor links, stamps Visited on every explored cell and OnPath on
// every path cell, and returns the path in order (entrance first,
// exit last). When entrance equals exit the path is that single cell.
//
// Neighbors are tried in fixed West, North, East, South order, so the
// exploration sequence is fully deterministic for a given grid.
// Complexity: O(cells) time and memory.
func Path(g *grid.Grid, entrance, exit grid.Coord) ([]grid.Coord, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(entrance) || !g.InBounds(exit) {
		return nil, ErrOutOfBounds
	}

	// 2. Seed the stack with the entrance. The stack mirrors the call
	//    stack of the recursive formulation: pushing is entering a
	//    cell, popping is abandoning a dead end.
	stack := make([]frame, 0, g.NumCells())
	stack = append(stack, frame{at: entrance})
	g.CellAt(entrance).Visited = true

	var (
		top  *frame
		cell *grid.Cell
		nb   grid.Coord
	)
	for len(stack) > 0 {
		top = &stack[len(stack)-1]

		// 3. Exit reached: everything currently stacked is the path.
		if top.at == exit {
			path := make([]grid.Coord, len(stack))
			for i := range stack {
				path[i] = stack[i].at
				g.CellAt(stack[i].at).OnPath = true
			}

			return path, nil
		}

		// 4. Advance to the first unvisited linked neighbor, trying
		//    directions in canonical order from where we left off.
		cell = g.CellAt(top.at)
		advanced := false
		for top.next < grid.NumDirections {
			d := top.next
			top.next++
			if !cell.HasLink(d) {
				continue
			}
			nb = top.at.Move(d)
			if g.CellAt(nb).Visited {
				continue
			}
			g.CellAt(nb).Visited = true
			stack = append(stack, frame{at: nb})
			advanced = true

			break
		}

		// 5. Dead end: every direction exhausted without reaching the
		//    exit, so this cell is not on the path.
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return nil, ErrNoPath
}
