package search

import "github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"

// frontier is the discovered-but-not-finalized set of a traversal.
type frontier interface {
	push(i int)
	pop() int
	len() int
}

// queue is a FIFO frontier.
type queue struct{ items []int }

func (q *queue) push(i int) { q.items = append(q.items, i) }
func (q *queue) len() int   { return len(q.items) }
func (q *queue) pop() int {
	i := q.items[0]
	q.items = q.items[1:]
	return i
}

// stack is a LIFO frontier.
type stack struct{ items []int }

func (s *stack) push(i int) { s.items = append(s.items, i) }
func (s *stack) len() int   { return len(s.items) }
func (s *stack) pop() int {
	last := len(s.items) - 1
	i := s.items[last]
	s.items = s.items[:last]
	return i
}

// BFS runs breadth-first search from start to end.
//
// The start cell is marked visited before the loop; every other cell is
// marked visited when it is enqueued and recorded when it is dequeued.
// Walls are never enqueued. The path has the minimum number of steps.
//
// Complexity: O(N) time and memory for N cells.
func BFS(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Result, error) {
	s, endIdx, err := prepare(AlgorithmBFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	return s.traverse(&queue{}, g.Index(start), endIdx), nil
}

// DFS runs depth-first search from start to end.
//
// It mirrors BFS with a stack: neighbors are marked visited and pushed in
// up, down, left, right order at discovery, so the last pushed (right) is
// explored first. The path found is a valid route, not necessarily a shortest one.
//
// Complexity: O(N) time and memory for N cells.
func DFS(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Result, error) {
	s, endIdx, err := prepare(AlgorithmDFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	return s.traverse(&stack{}, g.Index(start), endIdx), nil
}

// traverse drives BFS and DFS; only the frontier discipline differs.
func (s *runState) traverse(f frontier, start, end int) *Result {
	s.visited[start] = true
	f.push(start)

	for f.len() > 0 {
		u := f.pop()
		s.record(u)
		if u == end {
			return s.finish(end)
		}

		for _, v := range s.unvisitedNeighbors(u) {
			if s.isWall(v) || s.visited[v] {
				continue
			}
			s.visited[v] = true
			s.dist[v] = s.dist[u] + 1
			s.prev[v] = u
			f.push(v)
		}
	}
	return s.res
}
