package symbol_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"  // assertion library
	"github.com/stretchr/testify/require" // fatal assertions

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/solve"
	"github.com/katalvlaran/mazegrid/spantree"
	"github.com/katalvlaran/mazegrid/symbol" // package under test
)

// TestEncode_Errors verifies nil-grid and out-of-bounds rejection.
func TestEncode_Errors(t *testing.T) {
	_, err := symbol.Encode(nil, make(grid.EdgeSet), grid.Coord{}, grid.Coord{})
	assert.ErrorIs(t, err, symbol.ErrNilGrid)

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	_, err = symbol.Encode(g, make(grid.EdgeSet), grid.Coord{Row: -1, Col: 0}, grid.Coord{Row: 1, Col: 1})
	assert.ErrorIs(t, err, symbol.ErrOutOfBounds)
	_, err = symbol.Encode(g, make(grid.EdgeSet), grid.Coord{}, grid.Coord{Row: 2, Col: 2})
	assert.ErrorIs(t, err, symbol.ErrOutOfBounds)
}

// TestEncode_Dimensions checks the (2R+1)×(2C+1) raster shape.
func TestEncode_Dimensions(t *testing.T) {
	cases := []struct{ rows, cols int }{
		{1, 1}, {1, 5}, {4, 1}, {3, 7}, {10, 10},
	}
	for _, tc := range cases {
		g, err := grid.New(tc.rows, tc.cols)
		require.NoError(t, err)

		sg, err := symbol.Encode(g, make(grid.EdgeSet),
			grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: tc.rows - 1, Col: tc.cols - 1})
		require.NoError(t, err)

		require.Len(t, sg, 2*tc.rows+1, "%d×%d raster height", tc.rows, tc.cols)
		for i := range sg {
			require.Len(t, sg[i], 2*tc.cols+1, "%d×%d raster width", tc.rows, tc.cols)
		}
	}
}

// TestEncode_SingleCell pins the 3×3 raster of a 1×1 maze: one cell,
// openings above and below it, wall everywhere else.
func TestEncode_SingleCell(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	at := grid.Coord{Row: 0, Col: 0}

	sg, err := symbol.Encode(g, make(grid.EdgeSet), at, at)
	require.NoError(t, err)

	want := symbol.Grid2D{
		{symbol.Wall, symbol.Entrance, symbol.Wall},
		{symbol.Wall, symbol.Open, symbol.Wall},
		{symbol.Wall, symbol.Exit, symbol.Wall},
	}
	assert.Equal(t, want, sg)
}

// TestEncode_PartialCarving verifies snapshot-time encoding: a fresh
// grid with an empty open set renders every gap as wall, no error.
func TestEncode_PartialCarving(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	sg, err := symbol.Encode(g, make(grid.EdgeSet),
		grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	require.NoError(t, err)

	// Every odd/even and even/odd interior position is a walled gap.
	for i := 1; i < len(sg)-1; i++ {
		for j := 1; j < len(sg[i])-1; j++ {
			if (i+j)%2 == 1 {
				assert.Equal(t, symbol.Wall, sg[i][j], "gap (%d,%d)", i, j)
			}
		}
	}
}

// TestEncode_WorkedScenario carves the fixed-priority 2×2 maze, solves
// it, and compares the full console render character for character.
func TestEncode_WorkedScenario(t *testing.T) {
	var (
		nw = grid.Coord{Row: 0, Col: 0}
		ne = grid.Coord{Row: 0, Col: 1}
		sw = grid.Coord{Row: 1, Col: 0}
		se = grid.Coord{Row: 1, Col: 1}
	)
	prio := map[grid.EdgeKey]int{
		grid.NewEdgeKey(nw, ne): 5,
		grid.NewEdgeKey(nw, sw): 2,
		grid.NewEdgeKey(ne, se): 8,
		grid.NewEdgeKey(sw, se): 1,
	}

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	open, err := spantree.Build(g,
		spantree.WithPriorityFunc(func(a, b grid.Coord) int { return prio[grid.NewEdgeKey(a, b)] }))
	require.NoError(t, err)
	_, err = solve.Path(g, nw, se)
	require.NoError(t, err)

	sg, err := symbol.Encode(g, open, nw, se)
	require.NoError(t, err)

	assert.Equal(t, symbol.Entrance, sg[0][1])
	assert.Equal(t, symbol.Exit, sg[4][3])
	assert.Equal(t, symbol.Path, sg[1][1], "entrance cell on path")
	assert.Equal(t, symbol.Open, sg[1][3], "dead-end cell off path")
	assert.Equal(t, symbol.Path, sg[2][1], "vertical solution gap")
	assert.Equal(t, symbol.Wall, sg[2][3], "rejected edge renders as wall")

	want := "" +
		"X   X X X \n" +
		"X @     X \n" +
		"X @ X X X \n" +
		"X @ @ @ X \n" +
		"X X X   X \n"
	assert.Equal(t, want, sg.String())
}

// TestEncode_ConsistencyFailure verifies the loud failure when an open
// edge is recorded over a severed link.
func TestEncode_ConsistencyFailure(t *testing.T) {
	g, err := grid.New(1, 2)
	require.NoError(t, err)
	a := grid.Coord{Row: 0, Col: 0}
	b := grid.Coord{Row: 0, Col: 1}

	open := make(grid.EdgeSet)
	open.Add(a, b)
	g.Sever(a, b)

	_, err = symbol.Encode(g, open, a, b)
	assert.ErrorIs(t, err, symbol.ErrEdgeConsistency)
}

// TestEncode_FullCarvedMaze sanity-checks a seeded 6×5 maze render:
// boundary openings in place, all perimeter and lattice points walled.
func TestEncode_FullCarvedMaze(t *testing.T) {
	g, err := grid.New(6, 5)
	require.NoError(t, err)
	open, err := spantree.Build(g, spantree.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	entrance := grid.Coord{Row: 0, Col: 0}
	exit := grid.Coord{Row: 5, Col: 4}
	_, err = solve.Path(g, entrance, exit)
	require.NoError(t, err)

	sg, err := symbol.Encode(g, open, entrance, exit)
	require.NoError(t, err)

	height, width := len(sg), len(sg[0])
	for j := 0; j < width; j++ {
		if j == 1 {
			assert.Equal(t, symbol.Entrance, sg[0][j])
		} else {
			assert.Equal(t, symbol.Wall, sg[0][j], "top boundary col %d", j)
		}
		if j == width-2 {
			assert.Equal(t, symbol.Exit, sg[height-1][j])
		} else {
			assert.Equal(t, symbol.Wall, sg[height-1][j], "bottom boundary col %d", j)
		}
	}
	for i := 0; i < height; i++ {
		assert.Equal(t, symbol.Wall, sg[i][0], "west perimeter row %d", i)
		assert.Equal(t, symbol.Wall, sg[i][width-1], "east perimeter row %d", i)
	}
	for i := 2; i < height-1; i += 2 {
		for j := 2; j < width-1; j += 2 {
			assert.Equal(t, symbol.Wall, sg[i][j], "lattice point (%d,%d)", i, j)
		}
	}
}
