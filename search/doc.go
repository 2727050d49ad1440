// Package search computes paths on a gridgraph.Grid with three interchangeable
// algorithms and reports both the visit trace and the reconstructed path.
//
// What
//
//   - Dijkstra: uniform-cost search; re-sorts candidates by distance each step.
//   - BFS:      breadth-first over a FIFO queue; shortest path in steps.
//   - DFS:      depth-first over a LIFO stack; some path, not necessarily shortest.
//   - All share Func: (grid, start, end, opts...) → (*Result, error).
//   - Result.Visited lists cells in the order they were finalized.
//   - Result.Path runs from start to end, empty when end is unreachable.
//
// Per-run state
//
//	Distances, visited flags and predecessor links live in a fresh slice per
//	run, indexed by row-major cell position. The grid is read-only during a
//	search, so repeated runs are idempotent and concurrent searches over an
//	unchanging grid do not interfere.
//
// Determinism
//
//	Neighbors are always expanded up, down, left, right. Dijkstra breaks ties
//	by the candidates' current order under a stable sort, starting from
//	row-major order. Identical inputs give identical sequences.
//
// Walls
//
//	Walls are skipped at consumption time: BFS and DFS never enqueue them;
//	Dijkstra may label a wall with a distance but drops it when selected. The
//	start cell is exempt from the Dijkstra wall check.
//
// Errors
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrEndOutOfBounds, ErrUnknownAlgorithm,
//     all matching ErrInvalidInput.
//   - "No path" is not an error: the result has an empty Path.
//
// Usage
//
//	res, err := search.Run(search.AlgorithmBFS, g, start, end)
//	if err != nil {
//	    // invalid input
//	}
//	for _, c := range res.Visited { /* animate */ }
//	for _, c := range res.Path { /* highlight */ }
package search
