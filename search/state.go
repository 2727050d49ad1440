package search

import (
	"math"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
)

// unreached marks an infinite distance.
const unreached = math.MaxInt

// noPrev marks a cell without a predecessor.
const noPrev = -1

// runState is the per-run bookkeeping keyed by row-major cell index.
// It is created fresh for every invocation and never stored on the grid.
type runState struct {
	grid    *gridgraph.Grid
	dist    []int
	visited []bool
	prev    []int
	opts    Options
	res     *Result
}

// newRunState allocates state for g and resets it around start.
func newRunState(g *gridgraph.Grid, start int, algo Algorithm, opts Options) *runState {
	n := g.Len()
	s := &runState{
		grid:    g,
		dist:    make([]int, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
		opts:    opts,
		res: &Result{
			Algorithm: algo,
			Visited:   make([]gridgraph.Coord, 0, n),
			Path:      []gridgraph.Coord{},
		},
	}
	s.reset(start)
	return s
}

// reset sets every distance to +inf except start (0), clears predecessors
// and clears visited flags.
func (s *runState) reset(start int) {
	for i := range s.dist {
		s.dist[i] = unreached
		s.prev[i] = noPrev
		s.visited[i] = false
	}
	s.dist[start] = 0
}

// unvisitedNeighbors returns the neighbors of u, in up, down, left, right
// order, that are not yet visited in this run. Walls are not filtered.
func (s *runState) unvisitedNeighbors(u int) []int {
	nbrs := s.grid.Neighbors(s.grid.Coordinate(u))
	out := make([]int, 0, len(nbrs))
	for _, n := range nbrs {
		if v := s.grid.Index(n); !s.visited[v] {
			out = append(out, v)
		}
	}
	return out
}

// isWall reports the persistent wall flag of cell i.
func (s *runState) isWall(i int) bool {
	return s.grid.IsWall(s.grid.Coordinate(i))
}

// record appends u to the visit trace and fires OnVisit.
func (s *runState) record(u int) {
	c := s.grid.Coordinate(u)
	s.res.Visited = append(s.res.Visited, c)
	s.opts.OnVisit(c)
}

// finish reconstructs the path ending at end by walking predecessor links
// backward and reversing, then returns the result.
func (s *runState) finish(end int) *Result {
	path := []gridgraph.Coord{}
	for cur := end; cur != noPrev; cur = s.prev[cur] {
		path = append(path, s.grid.Coordinate(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	s.res.Path = path
	return s.res
}
