package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/solve"
	"github.com/katalvlaran/mazegrid/spantree"
	"github.com/katalvlaran/mazegrid/symbol"
)

// Generate builds, carves, solves, and encodes a rows×cols perfect
// maze. The entrance is fixed at (0,0) and the exit at
// (rows-1, cols-1). Generation is strictly sequential: carving
// completes before solving, solving before encoding; nothing runs
// concurrently and no state outlives the returned Maze.
//
// Returns grid.ErrInvalidDimensions when rows < 1 or cols < 1, before
// any work is done. Any other error indicates a violated internal
// invariant and aborts generation.
// Complexity: O(rows×cols × log(rows×cols)) time, O(rows×cols) memory.
func Generate(rows, cols int, opts ...Option) (*Maze, error) {
	// 1. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Build the fully connected lattice; dimension errors surface
	//    here, before any carving.
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	entrance := grid.Coord{Row: 0, Col: 0}
	exit := grid.Coord{Row: rows - 1, Col: cols - 1}

	// 3. Carve the spanning tree. The snapshot stream, when present,
	//    encodes the partially carved grid after every accepted edge.
	carveOpts := []spantree.Option{spantree.WithRand(o.Rand)}
	if o.Snapshot != nil {
		carveOpts = append(carveOpts, spantree.WithSnapshot(func(open grid.EdgeSet) error {
			sg, encErr := symbol.Encode(g, open, entrance, exit)
			if encErr != nil {
				return encErr
			}

			return o.Snapshot(sg)
		}))
	}
	open, err := spantree.Build(g, carveOpts...)
	if err != nil {
		return nil, fmt.Errorf("maze: carve: %w", err)
	}

	// 4. Solve the unique entrance→exit path and mark it on the grid.
	path, err := solve.Path(g, entrance, exit)
	if err != nil {
		return nil, fmt.Errorf("maze: solve: %w", err)
	}

	// 5. Encode the final raster once. Consistency failures abort the
	//    whole generation rather than hand back a wrong render.
	rendered, err := symbol.Encode(g, open, entrance, exit)
	if err != nil {
		return nil, fmt.Errorf("maze: encode: %w", err)
	}

	return &Maze{
		g:        g,
		open:     open,
		path:     path,
		rendered: rendered,
		entrance: entrance,
		exit:     exit,
	}, nil
}
