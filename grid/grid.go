package grid

// Grid owns the rows×cols cell lattice. Cells are stored densely in
// row-major order; neighbor links are symmetric and only ever severed.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New constructs a fully connected rows×cols grid: every cell is linked
// to each in-bounds compass neighbor. Returns ErrInvalidDimensions when
// rows < 1 or cols < 1. No randomness, no side effects beyond allocation.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	// 1. Validate dimensions before any allocation.
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	// 2. Allocate the dense cell slice and stamp coordinates.
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c].Coord = Coord{Row: r, Col: c}
		}
	}

	// 3. Link every cell to its in-bounds neighbors in all four directions.
	//    Links are set on both endpoints, so the mesh starts symmetric.
	var cell *Cell
	var d Direction
	for i := range g.cells {
		cell = &g.cells[i]
		for d = West; d < NumDirections; d++ {
			if g.InBounds(cell.Coord.Move(d)) {
				cell.links[d] = true
			}
		}
	}

	return g, nil
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// NumCells returns rows×cols.
func (g *Grid) NumCells() int { return g.rows * g.cols }

// InBounds reports whether c lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major dense index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// CoordAt converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) CoordAt(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// CellAt returns the cell at c, or nil when c is out of bounds.
// The pointer aliases grid-owned storage; callers may mutate the
// search flags but must not retain it past the grid's lifetime.
// Complexity: O(1).
func (g *Grid) CellAt(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}

	return &g.cells[g.Index(c)]
}

// Linked reports whether the neighbor link between adjacent cells a and b
// survives. Non-adjacent or out-of-bounds pairs report false.
// Complexity: O(1).
func (g *Grid) Linked(a, b Coord) bool {
	d, ok := g.direction(a, b)
	if !ok {
		return false
	}

	return g.cells[g.Index(a)].links[d]
}

// Sever removes the neighbor link between adjacent cells a and b from
// both endpoints, turning the adjacency into a wall. Severing a pair
// that is not adjacent, already severed, or out of bounds is a no-op.
// Links are never re-added.
// Complexity: O(1).
func (g *Grid) Sever(a, b Coord) {
	d, ok := g.direction(a, b)
	if !ok {
		return
	}
	// Clear the link on both sides to keep the mesh symmetric.
	g.cells[g.Index(a)].links[d] = false
	g.cells[g.Index(b)].links[d.Opposite()] = false
}

// direction resolves the compass direction from a toward its adjacent
// neighbor b. Returns ok=false when the cells are not in-bounds
// orthogonal neighbors.
func (g *Grid) direction(a, b Coord) (Direction, bool) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return 0, false
	}
	for d := West; d < NumDirections; d++ {
		if a.Move(d) == b {
			return d, true
		}
	}

	return 0, false
}
