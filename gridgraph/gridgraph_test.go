package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"Negative", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows, tc.cols)
			if !errors.Is(err, gridgraph.ErrBadDimensions) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrBadDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name  string
		walls [][]bool
		err   error
	}{
		{"EmptyRows", [][]bool{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {false}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.From2D(tc.walls)
			if !errors.Is(err, tc.err) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.walls, err, tc.err)
			}
		})
	}
}

// TestCoordinatesMatchPositions checks that every cell reports its own position.
func TestCoordinatesMatchPositions(t *testing.T) {
	g, err := gridgraph.NewGrid(25, 50)
	require.NoError(t, err)
	assert.Equal(t, 1250, g.Len())

	for i, cell := range g.Cells() {
		assert.Equal(t, g.Coordinate(i), cell.Coord)
		assert.Equal(t, i, g.Index(cell.Coord))
		assert.False(t, cell.Wall)
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 3)
	require.NoError(t, err)

	for _, c := range []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%s)", c)
	}
	for _, c := range []gridgraph.Coord{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 1, Col: -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%s)", c)
	}
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the up, down, left, right ordering and bounds checks.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	cases := []struct {
		name string
		at   gridgraph.Coord
		want []gridgraph.Coord
	}{
		{"Center", gridgraph.Coord{Row: 1, Col: 1}, []gridgraph.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}},
		{"TopLeft", gridgraph.Coord{Row: 0, Col: 0}, []gridgraph.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}},
		{"BottomRight", gridgraph.Coord{Row: 2, Col: 2}, []gridgraph.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 1}}},
		{"TopEdge", gridgraph.Coord{Row: 0, Col: 1}, []gridgraph.Coord{{Row: 1, Col: 1}, {Row: 0, Col: 0}, {Row: 0, Col: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Neighbors(tc.at))
		})
	}
}

// TestNeighbors_IncludesWalls ensures walls are not filtered from adjacency.
func TestNeighbors_IncludesWalls(t *testing.T) {
	g, err := gridgraph.From2D([][]bool{
		{false, true},
		{true, false},
	})
	require.NoError(t, err)

	got := g.Neighbors(gridgraph.Coord{Row: 0, Col: 0})
	assert.Equal(t, []gridgraph.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, got)
}

// TestNeighbors_SingleCell covers the degenerate 1×1 grid.
func TestNeighbors_SingleCell(t *testing.T) {
	g, err := gridgraph.NewGrid(1, 1)
	require.NoError(t, err)
	assert.Empty(t, g.Neighbors(gridgraph.Coord{}))
}

//----------------------------------------------------------------------------//
// Wall Editing Tests
//----------------------------------------------------------------------------//

func TestWallEditing(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 2)
	require.NoError(t, err)
	c := gridgraph.Coord{Row: 1, Col: 0}

	require.NoError(t, g.SetWall(c, true))
	assert.True(t, g.IsWall(c))
	assert.Equal(t, []gridgraph.Coord{c}, g.Walls())

	on, err := g.ToggleWall(c)
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, g.IsWall(c))

	on, err = g.ToggleWall(c)
	require.NoError(t, err)
	assert.True(t, on)

	g.ClearWalls()
	assert.Empty(t, g.Walls())

	out := gridgraph.Coord{Row: 2, Col: 0}
	assert.ErrorIs(t, g.SetWall(out, true), gridgraph.ErrOutOfBounds)
	_, err = g.ToggleWall(out)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	assert.False(t, g.IsWall(out))
}

// TestClone_Independent verifies that a clone does not share cells with its source.
func TestClone_Independent(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 2)
	require.NoError(t, err)
	cp := g.Clone()
	require.NoError(t, cp.SetWall(gridgraph.Coord{Row: 0, Col: 1}, true))

	assert.False(t, g.IsWall(gridgraph.Coord{Row: 0, Col: 1}))
	assert.True(t, cp.IsWall(gridgraph.Coord{Row: 0, Col: 1}))
}

func TestFrom2D_At(t *testing.T) {
	in := [][]bool{
		{false, true, false},
		{true, false, false},
	}
	g, err := gridgraph.From2D(in)
	require.NoError(t, err)
	assert.ElementsMatch(t, []gridgraph.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, g.Walls())

	_, ok := g.At(gridgraph.Coord{Row: 5, Col: 5})
	assert.False(t, ok)
	cell, ok := g.At(gridgraph.Coord{Row: 0, Col: 1})
	require.True(t, ok)
	assert.True(t, cell.Wall)
}

func TestCoord_Adjacent(t *testing.T) {
	a := gridgraph.Coord{Row: 2, Col: 2}
	assert.True(t, a.Adjacent(gridgraph.Coord{Row: 1, Col: 2}))
	assert.True(t, a.Adjacent(gridgraph.Coord{Row: 2, Col: 3}))
	assert.False(t, a.Adjacent(gridgraph.Coord{Row: 3, Col: 3}))
	assert.False(t, a.Adjacent(a))
	assert.Equal(t, "(2,2)", a.String())
}
