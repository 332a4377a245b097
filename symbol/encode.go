package symbol

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Encode produces the (2R+1)×(2C+1) symbolic raster for a carved grid
// and its open-edge set. Cell centers land on odd/odd positions, the
// gaps between cells on odd/even and even/odd positions, and every
// lattice point and perimeter position is Wall. The top boundary opens
// above the entrance column, the bottom boundary below the exit column.
//
// Encode is read-only with respect to g and works on partially carved
// grids too (construction snapshots): an adjacency not yet recorded as
// open simply renders as Wall.
// Complexity: O(R×C) time and memory.
func Encode(g *grid.Grid, open grid.EdgeSet, entrance, exit grid.Coord) (Grid2D, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(entrance) || !g.InBounds(exit) {
		return nil, ErrOutOfBounds
	}

	rows, cols := g.Rows(), g.Cols()
	height, width := 2*rows+1, 2*cols+1
	entranceCol, exitCol := 2*entrance.Col+1, 2*exit.Col+1

	out := make(Grid2D, height)
	var (
		k    Kind
		err  error
		a, b grid.Coord
	)
	for i := 0; i < height; i++ {
		out[i] = make([]Kind, width)
		for j := 0; j < width; j++ {
			switch {
			case i == 0:
				// 2. Top boundary: entrance opening, wall elsewhere.
				if j == entranceCol {
					k = Entrance
				} else {
					k = Wall
				}
			case i == height-1:
				// 3. Bottom boundary: exit opening, wall elsewhere.
				if j == exitCol {
					k = Exit
				} else {
					k = Wall
				}
			case i%2 == 0 && j%2 == 0, j == 0, j == width-1:
				// 4. Lattice points and side perimeter: always wall.
				k = Wall
			case i%2 == 1 && j%2 == 1:
				// 5. Cell center.
				if g.CellAt(grid.Coord{Row: (i - 1) / 2, Col: (j - 1) / 2}).OnPath {
					k = Path
				} else {
					k = Open
				}
			case i%2 == 1:
				// 6. Horizontal gap between (r, j/2-1) and (r, j/2).
				a = grid.Coord{Row: (i - 1) / 2, Col: j/2 - 1}
				b = grid.Coord{Row: (i - 1) / 2, Col: j / 2}
				if k, err = gapKind(g, open, a, b); err != nil {
					return nil, err
				}
			default:
				// 7. Vertical gap between (i/2-1, c) and (i/2, c).
				a = grid.Coord{Row: i/2 - 1, Col: (j - 1) / 2}
				b = grid.Coord{Row: i / 2, Col: (j - 1) / 2}
				if k, err = gapKind(g, open, a, b); err != nil {
					return nil, err
				}
			}
			out[i][j] = k
		}
	}

	return out, nil
}

// gapKind resolves the kind of the gap between adjacent cells a and b:
// Wall when the adjacency was walled off, Path when the solution
// corridor runs through it, Open otherwise. An open edge over a severed
// link means the upstream spanning-tree invariant broke; that is
// surfaced as ErrEdgeConsistency instead of a silently wrong render.
func gapKind(g *grid.Grid, open grid.EdgeSet, a, b grid.Coord) (Kind, error) {
	if !open.Contains(a, b) {
		return Wall, nil
	}
	if !g.Linked(a, b) {
		return Wall, fmt.Errorf("symbol: gap %v-%v: %w", a, b, ErrEdgeConsistency)
	}
	if g.CellAt(a).OnPath && g.CellAt(b).OnPath {
		return Path, nil
	}

	return Open, nil
}
