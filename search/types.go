// Package search defines the algorithm identifiers, options, results and
// sentinel errors shared by the grid search algorithms.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
)

// Sentinel errors. Every input error matches ErrInvalidInput via errors.Is.
var (
	// ErrInvalidInput is the umbrella for precondition violations.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrStartOutOfBounds is returned when the start coordinate lies outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("%w: start out of bounds", ErrInvalidInput)

	// ErrEndOutOfBounds is returned when the end coordinate lies outside the grid.
	ErrEndOutOfBounds = fmt.Errorf("%w: end out of bounds", ErrInvalidInput)

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm identifier.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", ErrInvalidInput)
)

// Algorithm identifies one of the interchangeable search strategies.
type Algorithm string

const (
	// AlgorithmDijkstra is uniform-cost search with a stable minimum-distance selection.
	AlgorithmDijkstra Algorithm = "dijkstra"
	// AlgorithmBFS is breadth-first search over a FIFO frontier.
	AlgorithmBFS Algorithm = "bfs"
	// AlgorithmDFS is depth-first search over a LIFO frontier.
	AlgorithmDFS Algorithm = "dfs"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDijkstra, AlgorithmBFS, AlgorithmDFS}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Func is the common signature shared by Dijkstra, BFS and DFS.
type Func func(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Result, error)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds hooks that observe a search without altering it.
type Options struct {
	// OnVisit is called each time a cell is finalized, in Visited order.
	OnVisit func(c gridgraph.Coord)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(gridgraph.Coord) {},
	}
}

// WithOnVisit registers a callback invoked for every finalized cell.
func WithOnVisit(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one search run:
//   - Visited: cells in the order they were finalized.
//   - Path: cells from start to end, empty when end was not reached.
type Result struct {
	Algorithm Algorithm
	Visited   []gridgraph.Coord
	Path      []gridgraph.Coord
}

// Found reports whether a path to the end cell exists.
func (r *Result) Found() bool {
	return len(r.Path) > 0
}

// Steps returns the number of moves along Path, or -1 when no path was found.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}
