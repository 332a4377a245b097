// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: the one-call pipeline
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate builds a seeded 5×5 maze and reports its structural
// facts: a perfect maze over 25 cells always has 24 corridors, and the
// solution always runs corner to corner.
func ExampleGenerate() {
	m, err := maze.Generate(5, 5, maze.WithSeed(42))
	if err != nil {
		fmt.Println("generate failed:", err)

		return
	}

	path := m.SolutionPath()
	fmt.Println("corridors:", len(m.OpenEdges()))
	fmt.Println("from:", path[0])
	fmt.Println("to:", path[len(path)-1])

	// Output:
	// corridors: 24
	// from: (0,0)
	// to: (4,4)
}
