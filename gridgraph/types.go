// Package gridgraph defines the coordinate, cell and grid types
// of the gridpath module.
package gridgraph

import "fmt"

// Coord addresses a cell by row and column, both zero-based.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether c and o are orthogonal neighbors.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Cell is a single grid position. Its coordinate is fixed for the lifetime
// of the owning Grid; Wall is the only persistent mutable attribute.
type Cell struct {
	Coord
	Wall bool
}

// neighborOffsets lists the orthogonal directions in the fixed order
// up, down, left, right. Search tie-breaks depend on this order.
var neighborOffsets = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is a fixed-size rectangular container of cells stored row-major.
// It owns its cells exclusively; cells[i] always sits at Coordinate(i).
type Grid struct {
	Rows, Cols int
	cells      []Cell
}
