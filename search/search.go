// Package search runs Dijkstra, breadth-first and depth-first search over a
// gridgraph.Grid and returns the visit trace plus the reconstructed path.
package search

import (
	"fmt"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
)

var registry = map[Algorithm]Func{
	AlgorithmDijkstra: Dijkstra,
	AlgorithmBFS:      BFS,
	AlgorithmDFS:      DFS,
}

// Lookup returns the search function registered for algo.
func Lookup(algo Algorithm) (Func, error) {
	fn, ok := registry[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	return fn, nil
}

// Run dispatches to the algorithm named by algo.
// Returns ErrUnknownAlgorithm for unrecognized identifiers and the
// input errors of the selected algorithm otherwise.
func Run(algo Algorithm, g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Result, error) {
	fn, err := Lookup(algo)
	if err != nil {
		return nil, err
	}
	return fn(g, start, end, opts...)
}

// prepare validates the inputs, applies options and returns fresh run state.
func prepare(algo Algorithm, g *gridgraph.Grid, start, end gridgraph.Coord, opts []Option) (*runState, int, error) {
	if g == nil {
		return nil, 0, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, 0, fmt.Errorf("%w: %s in %d×%d grid", ErrStartOutOfBounds, start, g.Rows, g.Cols)
	}
	if !g.InBounds(end) {
		return nil, 0, fmt.Errorf("%w: %s in %d×%d grid", ErrEndOutOfBounds, end, g.Rows, g.Cols)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newRunState(g, g.Index(start), algo, o), g.Index(end), nil
}
