// Package maze defines the Generate options and the Maze aggregate type.
package maze

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/symbol"
)

// ErrInvalidDimensions mirrors grid.ErrInvalidDimensions for callers
// that only import this package.
var ErrInvalidDimensions = grid.ErrInvalidDimensions

// SnapshotFunc receives one symbolic grid per carving step: an initial
// frame before any edge is accepted, then one frame after each accepted
// edge. Returning an error aborts Generate with that error.
type SnapshotFunc func(sg symbol.Grid2D) error

// Option configures optional behavior of Generate.
type Option func(*Options)

// Options holds configurable parameters for maze generation.
type Options struct {
	// Rand is the randomness source for edge priorities; nil means a
	// time-seeded source (every run differs).
	Rand *rand.Rand

	// Snapshot, if non-nil, streams intermediate symbolic grids during
	// carving for debug rendering.
	Snapshot SnapshotFunc
}

// DefaultOptions returns Options with time-seeded randomness and no
// snapshot stream.
func DefaultOptions() Options {
	return Options{
		Rand:     nil,
		Snapshot: nil,
	}
}

// WithSeed returns an Option that makes generation reproducible: the
// same seed and dimensions yield the same maze and solution path.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand returns an Option that sets a caller-owned randomness
// source. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSnapshot returns an Option that installs fn as the carving
// snapshot stream.
func WithSnapshot(fn SnapshotFunc) Option {
	return func(o *Options) {
		o.Snapshot = fn
	}
}

// Maze is the generated aggregate: the carved grid, its open-edge set,
// the solved entrance→exit path, and the encoded symbolic raster.
// A Maze is immutable after Generate; all state belongs to one
// generation and nothing is shared across mazes.
type Maze struct {
	g        *grid.Grid
	open     grid.EdgeSet
	path     []grid.Coord
	rendered symbol.Grid2D
	entrance grid.Coord
	exit     grid.Coord
}

// Rows returns the cell row count.
func (m *Maze) Rows() int { return m.g.Rows() }

// Cols returns the cell column count.
func (m *Maze) Cols() int { return m.g.Cols() }

// Entrance returns the fixed entrance cell (0,0).
func (m *Maze) Entrance() grid.Coord { return m.entrance }

// Exit returns the fixed exit cell (rows-1, cols-1).
func (m *Maze) Exit() grid.Coord { return m.exit }

// SolutionPath returns the unique entrance→exit path as an independent
// copy, entrance first, exit last.
func (m *Maze) SolutionPath() []grid.Coord {
	out := make([]grid.Coord, len(m.path))
	copy(out, m.path)

	return out
}

// OpenEdges returns an independent copy of the open-edge set. It holds
// exactly rows×cols-1 entries, one per carved corridor.
func (m *Maze) OpenEdges() grid.EdgeSet {
	return m.open.Clone()
}

// Render returns the (2·rows+1)×(2·cols+1) symbolic raster with the
// solution path marked. The raster is encoded once during Generate;
// treat the returned value as read-only.
func (m *Maze) Render() symbol.Grid2D {
	return m.rendered
}
