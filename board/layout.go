package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

// Layout symbols.
const (
	SymbolOpen    = '.'
	SymbolWall    = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolVisited = 'o'
	SymbolPath    = '*'
)

// ErrLayout is returned for malformed text layouts.
var ErrLayout = errors.New("board: invalid layout")

// Parse builds a board from text rows using '.' open, '#' wall,
// 'S' start and 'E' end. Exactly one S and one E are required.
func Parse(lines []string) (*Board, error) {
	walls := make([][]bool, len(lines))
	var start, end *gridgraph.Coord

	for r, line := range lines {
		walls[r] = make([]bool, len(line))
		for c, ch := range line {
			here := gridgraph.Coord{Row: r, Col: c}
			switch ch {
			case SymbolOpen:
			case SymbolWall:
				walls[r][c] = true
			case SymbolStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second start at %s", ErrLayout, here)
				}
				start = &here
			case SymbolEnd:
				if end != nil {
					return nil, fmt.Errorf("%w: second end at %s", ErrLayout, here)
				}
				end = &here
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at %s", ErrLayout, ch, here)
			}
		}
	}
	if start == nil || end == nil {
		return nil, fmt.Errorf("%w: missing start or end", ErrLayout)
	}

	g, err := gridgraph.From2D(walls)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	return FromGrid(g, *start, *end)
}

// Read parses a layout from r, ignoring blank lines and trailing whitespace.
func Read(r io.Reader) (*Board, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board: read layout: %w", err)
	}
	return Parse(lines)
}

// Render draws g with its endpoints and, when res is non-nil, the search
// trace: '*' for path cells and 'o' for other visited cells.
func Render(g *gridgraph.Grid, start, end gridgraph.Coord, res *search.Result) string {
	marks := make(map[gridgraph.Coord]rune)
	if res != nil {
		for _, c := range res.Visited {
			marks[c] = SymbolVisited
		}
		for _, c := range res.Path {
			marks[c] = SymbolPath
		}
	}
	marks[start] = SymbolStart
	marks[end] = SymbolEnd

	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			here := gridgraph.Coord{Row: r, Col: c}
			switch m, ok := marks[here]; {
			case ok:
				sb.WriteRune(m)
			case g.IsWall(here):
				sb.WriteRune(SymbolWall)
			default:
				sb.WriteRune(SymbolOpen)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the board without a search trace.
func (b *Board) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Render(b.grid, b.start, b.end, nil)
}
