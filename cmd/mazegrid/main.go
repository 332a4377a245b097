// Command mazegrid generates a perfect maze, solves it, and prints the
// result to the console or displays it in a terminal viewer.
//
// Usage:
//
//	mazegrid [--rows R] [--cols C] [--seed S] [--debug] [--view]
//
// --debug prints the maze after each carved corridor (console only);
// --view opens a full-screen terminal render (walls black, corridors
// white, solution magenta), closed with q, Esc, or Ctrl-C.
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/symbol"
)

func main() {
	rows := flag.Int("rows", 20, "maze rows (>= 1)")
	cols := flag.Int("cols", 20, "maze columns (>= 1)")
	seed := flag.Int64("seed", 0, "randomness seed; 0 means time-seeded (every run differs)")
	debug := flag.Bool("debug", false, "print the maze after each carved corridor")
	view := flag.Bool("view", false, "display the solved maze in a terminal viewer")
	flag.Parse()

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, *rows, *cols, *seed, *debug, *view); err != nil {
		log.WithError(err).Fatal("maze generation failed")
	}
}

// run drives the whole pipeline and keeps main free of error plumbing.
func run(log *logrus.Logger, rows, cols int, seed int64, debug, view bool) error {
	var opts []maze.Option
	if seed != 0 {
		opts = append(opts, maze.WithSeed(seed))
	}

	// Debug tracing: one frame before carving plus one per corridor.
	step := 0
	if debug && !view {
		opts = append(opts, maze.WithSnapshot(func(sg symbol.Grid2D) error {
			log.WithField("step", step).Debug("carving")
			fmt.Print(sg)
			step++

			return nil
		}))
	}

	m, err := maze.Generate(rows, cols, opts...)
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	log.WithFields(logrus.Fields{
		"rows": m.Rows(),
		"cols": m.Cols(),
		"path": len(m.SolutionPath()),
	}).Debug("maze solved")

	if view {
		return errors.Wrap(viewMaze(m.Render()), "view")
	}
	fmt.Print(m.Render())

	return nil
}
