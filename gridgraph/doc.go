// Package gridgraph models a rectangular grid of cells as a 4-connected graph.
//
// What:
//
//   - Grid owns R×C cells stored row-major; each Cell carries its Coord and a Wall flag.
//   - Neighbors yields in-bounds orthogonal neighbors in the fixed order up, down, left, right.
//   - Wall editing: SetWall, ToggleWall, ClearWalls.
//   - Helpers for analysis: ConnectedComponents, Reachable, Distance.
//
// The grid holds durable data only. Per-run search bookkeeping (visited flags,
// distances, predecessors) lives in the search package and never touches cells.
//
// Complexity:
//
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//   - Reachable, Distance: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrBadDimensions:  NewGrid with rows or cols below one.
//   - ErrEmptyGrid:      From2D with no rows or no columns.
//   - ErrNonRectangular: From2D with rows of differing lengths.
//   - ErrOutOfBounds:    wall edits outside the grid.
package gridgraph
