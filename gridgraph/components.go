package gridgraph

// ConnectedComponents finds all contiguous regions of open (non-wall) cells
// under 4-connectivity. Components are listed in row-major order of their
// first cell; each component lists cells in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0, cell := range g.cells {
		if cell.Wall || seen[i0] {
			continue
		}
		comps = append(comps, g.flood(i0, seen))
	}
	return comps
}

// Reachable returns every open cell reachable from c through open cells,
// c itself included even when walled. Nil if c is out of bounds.
func (g *Grid) Reachable(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	return g.flood(g.Index(c), make([]bool, len(g.cells)))
}

// Distance returns the number of orthogonal steps on the shortest open route
// from a to b. ok is false when b cannot be reached or either end is out of bounds.
// A walled a may still step out; a walled b is never entered unless a == b.
func (g *Grid) Distance(a, b Coord) (steps int, ok bool) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return 0, false
	}
	if a == b {
		return 0, true
	}
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	src, dst := g.Index(a), g.Index(b)
	dist[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, n := range g.Neighbors(g.Coordinate(u)) {
			v := g.Index(n)
			if dist[v] >= 0 || g.cells[v].Wall {
				continue
			}
			dist[v] = dist[u] + 1
			if v == dst {
				return dist[v], true
			}
			queue = append(queue, v)
		}
	}
	return 0, false
}

// flood runs a BFS from index i0 over open cells, marking seen.
func (g *Grid) flood(i0 int, seen []bool) []Coord {
	queue := []int{i0}
	seen[i0] = true
	var comp []Coord

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, g.Coordinate(u))
		for _, n := range g.Neighbors(g.Coordinate(u)) {
			v := g.Index(n)
			if g.cells[v].Wall || seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return comp
}
