// Package symbol defines the renderer-neutral cell kinds and the
// symbolic grid type produced by encoding.
package symbol

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilGrid is returned when Encode receives a nil grid.
	ErrNilGrid = errors.New("symbol: grid is nil")

	// ErrOutOfBounds indicates the entrance or exit coordinate lies
	// outside the grid.
	ErrOutOfBounds = errors.New("symbol: entrance or exit out of bounds")

	// ErrEdgeConsistency indicates an open edge was recorded between
	// two cells whose neighbor link has been severed. The open-edge
	// set and the link structure are redundant views of the same tree;
	// disagreement means the spanning-tree invariant was violated and
	// no correct render exists.
	ErrEdgeConsistency = errors.New("symbol: open edge recorded for severed neighbor link")
)

// Kind classifies one position of the symbolic grid.
type Kind uint8

const (
	// Wall is an impassable position: lattice point, perimeter, or a
	// gap whose adjacency was walled off.
	Wall Kind = iota
	// Open is a passable position off the solution path.
	Open
	// Path is a passable position on the entrance→exit solution.
	Path
	// Entrance is the opening in the top boundary.
	Entrance
	// Exit is the opening in the bottom boundary.
	Exit
)

// String names the kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Path:
		return "Path"
	case Entrance:
		return "Entrance"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// glyphs maps each Kind to its two-character console glyph.
// Openings print blank so the entrance and exit read as passable.
var glyphs = map[Kind]string{
	Wall:     "X ",
	Open:     "  ",
	Path:     "@ ",
	Entrance: "  ",
	Exit:     "  ",
}

// Grid2D is the (2R+1)×(2C+1) symbolic raster: Grid2D[i][j] is the
// kind at raster row i, column j. It carries no behavior beyond
// console formatting; renderers translate kinds as they see fit.
type Grid2D [][]Kind

// String renders the grid with two-character glyphs per position, one
// line per raster row ("X " wall, "  " open, "@ " path), matching the
// classic console maze layout.
func (sg Grid2D) String() string {
	var sb strings.Builder
	for _, row := range sg {
		for _, k := range row {
			sb.WriteString(glyphs[k])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
