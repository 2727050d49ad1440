package gridgraph

import "fmt"

// NewGrid builds an open rows×cols grid with no walls.
// Returns ErrBadDimensions if either dimension is below one.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	g := &Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		g.cells[i].Coord = g.Coordinate(i)
	}
	return g, nil
}

// From2D builds a grid from a rectangular matrix of wall flags,
// walls[row][col] == true marking an obstacle. The input is copied.
// Returns ErrEmptyGrid for no rows or columns, ErrNonRectangular for ragged input.
func From2D(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(walls[0])
	for _, row := range walls {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(len(walls), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range walls {
		for c, wall := range row {
			g.cells[r*cols+c].Wall = wall
		}
	}
	return g, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Len returns the number of cells, Rows×Cols.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// At returns the cell at c. ok is false when c is out of bounds.
func (g *Grid) At(c Coord) (cell Cell, ok bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.Index(c)], true
}

// IsWall reports whether c is in bounds and walled.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)].Wall
}

// SetWall sets or clears the wall flag on c.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	g.cells[g.Index(c)].Wall = wall
	return nil
}

// ToggleWall flips the wall flag on c and returns the new value.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	i := g.Index(c)
	g.cells[i].Wall = !g.cells[i].Wall
	return g.cells[i].Wall, nil
}

// ClearWalls removes every wall.
func (g *Grid) ClearWalls() {
	for i := range g.cells {
		g.cells[i].Wall = false
	}
}

// Walls returns the walled coordinates in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for _, cell := range g.cells {
		if cell.Wall {
			out = append(out, cell.Coord)
		}
	}
	return out
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Neighbors returns the in-bounds orthogonal neighbors of c in the order
// up, down, left, right. Walls are included; callers decide whether to skip them.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := &Grid{Rows: g.Rows, Cols: g.Cols, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}
