// Package spantree defines configuration options and sentinel errors
// for randomized spanning-tree carving.
package spantree

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
)

// PriorityBound is the exclusive upper bound of the random edge
// priority range: priorities are drawn uniformly from [0, PriorityBound).
const PriorityBound = 1000

var (
	// ErrNilGrid is returned when Build receives a nil grid.
	ErrNilGrid = errors.New("spantree: grid is nil")

	// ErrIncompleteTree indicates the postcondition failed: after
	// processing every candidate edge the open-edge count is not
	// cells-1 or the forest holds more than one set. This cannot
	// happen for a validly constructed grid and signals a bug.
	ErrIncompleteTree = errors.New("spantree: surviving links do not form a spanning tree")
)

// PriorityFunc assigns a priority to the candidate edge between
// adjacent cells a and b. Lower priorities are processed first.
type PriorityFunc func(a, b grid.Coord) int

// SnapshotFunc observes carving progress. It receives the open-edge
// set accumulated so far (the live set — copy it if retained).
// Returning an error aborts the build with that error.
type SnapshotFunc func(open grid.EdgeSet) error

// Option configures optional behavior of Build.
type Option func(*Options)

// Options holds configurable parameters for spanning-tree carving.
type Options struct {
	// Rand supplies edge priorities; nil means a time-seeded source.
	// Seed it (rand.New(rand.NewSource(seed))) for reproducible mazes.
	Rand *rand.Rand

	// Priority, if non-nil, overrides Rand as the per-edge priority
	// source. Ties are still broken by enumeration order.
	Priority PriorityFunc

	// Snapshot, if non-nil, is invoked once with the empty open set
	// before any edge is processed and once after each accepted edge.
	Snapshot SnapshotFunc
}

// DefaultOptions returns Options with a nil (time-seeded) Rand, no
// explicit priorities, and no snapshot hook.
func DefaultOptions() Options {
	return Options{
		Rand:     nil,
		Priority: nil,
		Snapshot: nil,
	}
}

// WithRand returns an Option that sets the priority randomness source.
// A nil r has no effect (time-seeded default is retained).
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithPriorityFunc returns an Option that installs fn as the per-edge
// priority source, overriding the random draw.
func WithPriorityFunc(fn PriorityFunc) Option {
	return func(o *Options) {
		o.Priority = fn
	}
}

// WithSnapshot returns an Option that installs fn as the carving
// progress hook.
func WithSnapshot(fn SnapshotFunc) Option {
	return func(o *Options) {
		o.Snapshot = fn
	}
}
