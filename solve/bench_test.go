package solve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/solve"
	"github.com/katalvlaran/mazegrid/spantree"
)

// BenchmarkPath measures solving a carved 300×300 maze. Carving is
// excluded from the timing; a fresh grid is required per iteration
// because solving stamps the search flags.
// Complexity: O(cells)
func BenchmarkPath(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, err := grid.New(300, 300)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		if _, err = spantree.Build(g, spantree.WithRand(rand.New(rand.NewSource(42)))); err != nil {
			b.Fatalf("setup Build failed: %v", err)
		}
		b.StartTimer()

		if _, err = solve.Path(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 299, Col: 299}); err != nil {
			b.Fatalf("Path failed: %v", err)
		}
	}
}
