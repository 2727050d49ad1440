// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// mustGrid builds a grid from rows of '#' (wall) and '.' (open).
func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	walls := make([][]bool, len(rows))
	for r, row := range rows {
		walls[r] = make([]bool, len(row))
		for c, ch := range row {
			walls[r][c] = ch == '#'
		}
	}
	g, err := From2D(walls)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	return g
}

// TestConnectedComponents_Simple tests a 3×4 grid split into two open regions.
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	g := mustGrid(t,
		"#..#",
		"..##",
		"##..",
	)

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals checks that diagonal contact does not join regions.
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g := mustGrid(t,
		".#",
		"#.",
	)
	if comps := g.ConnectedComponents(); len(comps) != 2 {
		t.Errorf("got %d components; want 2", len(comps))
	}
}

// TestConnectedComponents_AllWalls expects zero components on a fully walled grid.
func TestConnectedComponents_AllWalls(t *testing.T) {
	g := mustGrid(t, "##", "##")
	if comps := g.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all walls: got %d components; want 0", len(comps))
	}
}

// TestReachable covers open, walled and out-of-bounds origins.
func TestReachable(t *testing.T) {
	g := mustGrid(t,
		"...",
		"###",
		"...",
	)
	got := g.Reachable(Coord{Row: 0, Col: 0})
	want := []Coord{{0, 0}, {0, 1}, {0, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable((0,0)) = %v; want %v", got, want)
	}

	// A walled origin is included and may step out into open cells.
	walled := g.Reachable(Coord{Row: 1, Col: 1})
	if len(walled) != 7 {
		t.Errorf("Reachable((1,1)) size = %d; want 7", len(walled))
	}

	if out := g.Reachable(Coord{Row: 9, Col: 9}); out != nil {
		t.Errorf("Reachable(out of bounds) = %v; want nil", out)
	}
}

// TestDistance compares BFS step counts on a small maze.
//
//	. . .
//	# # .
//	. . .
func TestDistance(t *testing.T) {
	g := mustGrid(t,
		"...",
		"##.",
		"...",
	)
	cases := []struct {
		a, b  Coord
		steps int
		ok    bool
	}{
		{Coord{0, 0}, Coord{0, 0}, 0, true},
		{Coord{0, 0}, Coord{2, 0}, 6, true},
		{Coord{0, 0}, Coord{1, 2}, 3, true},
		{Coord{0, 0}, Coord{1, 0}, 0, false},
		{Coord{0, 0}, Coord{3, 0}, 0, false},
	}
	for _, tc := range cases {
		steps, ok := g.Distance(tc.a, tc.b)
		if steps != tc.steps || ok != tc.ok {
			t.Errorf("Distance(%s,%s) = %d,%v; want %d,%v", tc.a, tc.b, steps, ok, tc.steps, tc.ok)
		}
	}
}
