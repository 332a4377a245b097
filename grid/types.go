// Package grid defines core types and sentinel errors for the maze
// lattice: coordinates, compass directions, canonical edge keys, and
// the open-edge set produced by carving.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a grid was requested with rows < 1 or cols < 1.
var ErrInvalidDimensions = errors.New("grid: rows and cols must be at least 1")

// Direction indexes one of the four compass neighbors of a cell.
// The numeric order (West, North, East, South) is the canonical
// iteration order everywhere in this module; solvers rely on it for
// reproducible traversal.
type Direction int

const (
	// West is the neighbor at (row, col-1).
	West Direction = iota
	// North is the neighbor at (row-1, col).
	North
	// East is the neighbor at (row, col+1).
	East
	// South is the neighbor at (row+1, col).
	South

	// NumDirections is the count of compass directions.
	NumDirections
)

// offsets maps each Direction to its (dRow, dCol) delta, in Direction order.
var offsets = [NumDirections][2]int{
	{0, -1},  // West
	{-1, 0},  // North
	{0, 1},   // East
	{1, 0},   // South
}

// Offset returns the (dRow, dCol) delta for d.
// Complexity: O(1).
func (d Direction) Offset() (dRow, dCol int) {
	return offsets[d][0], offsets[d][1]
}

// Opposite returns the reverse direction (West↔East, North↔South).
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// String names the direction for diagnostics.
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Coord addresses one cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// Move returns the coordinate one step in direction d.
// Complexity: O(1).
func (c Coord) Move(d Direction) Coord {
	dr, dc := d.Offset()

	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Less reports whether c precedes o in row-major order.
// Used to canonicalize unordered cell pairs into EdgeKeys.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// EdgeKey is the canonical key for an unordered pair of adjacent cells:
// A is always the row-major smaller coordinate. Using an ordered pair
// instead of a set-valued key keeps map lookups free of any hashing
// subtleties around unordered equality.
type EdgeKey struct {
	A, B Coord
}

// NewEdgeKey builds the canonical key for the unordered pair {a, b}.
// Complexity: O(1).
func NewEdgeKey(a, b Coord) EdgeKey {
	if b.Less(a) {
		a, b = b, a
	}

	return EdgeKey{A: a, B: b}
}

// EdgeSet records which adjacencies are open corridors after carving.
// Membership is keyed by canonical EdgeKey; each adjacency appears at
// most once regardless of endpoint order.
type EdgeSet map[EdgeKey]struct{}

// Add records the adjacency {a, b} as open.
// Complexity: O(1).
func (s EdgeSet) Add(a, b Coord) {
	s[NewEdgeKey(a, b)] = struct{}{}
}

// Contains reports whether the adjacency {a, b} is open.
// Complexity: O(1).
func (s EdgeSet) Contains(a, b Coord) bool {
	_, ok := s[NewEdgeKey(a, b)]

	return ok
}

// Clone returns an independent copy of the set.
// Complexity: O(|s|).
func (s EdgeSet) Clone() EdgeSet {
	out := make(EdgeSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}

	return out
}

// Cell is one lattice position. Visited and OnPath are search flags
// owned by the solver; links tracks which neighbor connections survive.
type Cell struct {
	// Coord is the cell's fixed position in the grid.
	Coord Coord

	// Visited marks the cell as reached during path search.
	Visited bool

	// OnPath marks the cell as part of the entrance→exit solution.
	OnPath bool

	// links[d] reports whether the neighbor link toward d survives.
	// Boundary-facing slots are false from construction.
	links [NumDirections]bool
}

// HasLink reports whether the neighbor link toward d survives.
// Complexity: O(1).
func (c *Cell) HasLink(d Direction) bool {
	return c.links[d]
}
