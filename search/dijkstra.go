package search

import (
	"cmp"
	"slices"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
)

// Dijkstra runs uniform-cost search from start to end.
//
// Every cell starts as a candidate in row-major order. Each step stably
// re-sorts the candidates by distance and takes the first, so ties go to the
// candidate that was already ahead. A selected wall is dropped without being
// visited or expanded; a selected cell at infinite distance ends the search.
// Otherwise the cell is finalized and, unless it is end, every unvisited
// neighbor is relabeled with distance+1 and this cell as predecessor.
//
// The relabel is unconditional. With unit edge weights and cells finalized
// in distance order this yields shortest paths; weighted edges would need a
// strictly-improving relax instead.
//
// The start cell is placed at distance 0 and finalized without the wall
// check, so a walled start still appears in Visited.
//
// Complexity: O(N² log N) for N cells because of the per-step re-sort.
func Dijkstra(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Result, error) {
	s, endIdx, err := prepare(AlgorithmDijkstra, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	startIdx := g.Index(start)

	candidates := make([]int, g.Len())
	for i := range candidates {
		candidates[i] = i
	}
	byDistance := func(a, b int) int { return cmp.Compare(s.dist[a], s.dist[b]) }

	for len(candidates) > 0 {
		slices.SortStableFunc(candidates, byDistance)
		u := candidates[0]
		candidates = candidates[1:]

		if u != startIdx && s.isWall(u) {
			continue
		}
		if s.dist[u] == unreached {
			break
		}

		s.visited[u] = true
		s.record(u)
		if u == endIdx {
			return s.finish(endIdx), nil
		}

		for _, v := range s.unvisitedNeighbors(u) {
			s.dist[v] = s.dist[u] + 1
			s.prev[v] = u
		}
	}

	return s.res, nil
}
