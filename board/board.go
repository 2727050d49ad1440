// Package board holds the editable state behind one visualizer screen:
// a grid, its start and end cells, and whether a playback is in progress.
//
// All methods are safe for concurrent use. Edits are refused while a
// playback is marked in progress, mirroring a UI that ignores input until
// the animation finishes.
package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

// Reference board dimensions and endpoints.
const (
	DefaultRows = 25
	DefaultCols = 50
)

var (
	// DefaultStart is the start cell of a fresh reference board.
	DefaultStart = gridgraph.Coord{Row: 10, Col: 10}
	// DefaultEnd is the end cell of a fresh reference board.
	DefaultEnd = gridgraph.Coord{Row: 10, Col: 40}
)

var (
	// ErrEndpoint is returned when a wall edit targets the start or end cell.
	ErrEndpoint = errors.New("board: cell is the start or end")
	// ErrOverlap is returned when start and end would share a cell.
	ErrOverlap = errors.New("board: start and end must differ")
	// ErrRunning is returned for edits or runs while a playback is in progress.
	ErrRunning = errors.New("board: playback in progress")
)

// Board is a grid plus its endpoints.
type Board struct {
	ID uuid.UUID

	mu      sync.Mutex
	grid    *gridgraph.Grid
	start   gridgraph.Coord
	end     gridgraph.Coord
	running bool
}

// Snapshot is an immutable copy of a board's state.
type Snapshot struct {
	ID        uuid.UUID         `json:"id"`
	Rows      int               `json:"rows"`
	Cols      int               `json:"cols"`
	Start     gridgraph.Coord   `json:"start"`
	End       gridgraph.Coord   `json:"end"`
	Walls     []gridgraph.Coord `json:"walls"`
	Running   bool              `json:"running"`
	Regions   int               `json:"regions"`   // open areas separated by walls
	Connected bool              `json:"connected"` // end reachable from start
}

// Run is one completed search on a board.
type Run struct {
	ID        uuid.UUID        `json:"id"`
	BoardID   uuid.UUID        `json:"board_id"`
	Algorithm search.Algorithm `json:"algorithm"`
	Start     gridgraph.Coord  `json:"start"`
	End       gridgraph.Coord  `json:"end"`
	Result    *search.Result   `json:"-"`
}

// New builds an open rows×cols board with the given endpoints.
func New(rows, cols int, start, end gridgraph.Coord) (*Board, error) {
	g, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return FromGrid(g, start, end)
}

// Default builds the 25×50 reference board with start (10,10) and end (10,40).
func Default() *Board {
	b, err := New(DefaultRows, DefaultCols, DefaultStart, DefaultEnd)
	if err != nil {
		panic(fmt.Sprintf("board: default configuration invalid: %v", err))
	}
	return b
}

// FromGrid adopts g, which the board owns from then on. Walls under the
// endpoints are cleared.
func FromGrid(g *gridgraph.Grid, start, end gridgraph.Coord) (*Board, error) {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %s end %s in %d×%d grid", gridgraph.ErrOutOfBounds, start, end, g.Rows, g.Cols)
	}
	if start == end {
		return nil, ErrOverlap
	}
	_ = g.SetWall(start, false)
	_ = g.SetWall(end, false)
	return &Board{ID: uuid.New(), grid: g, start: start, end: end}, nil
}

// Start returns the current start cell.
func (b *Board) Start() gridgraph.Coord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.start
}

// End returns the current end cell.
func (b *Board) End() gridgraph.Coord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.end
}

// Grid returns a copy of the board's grid.
func (b *Board) Grid() *gridgraph.Grid {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Clone()
}

// Snapshot copies the board state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	walls := b.grid.Walls()
	if walls == nil {
		walls = []gridgraph.Coord{}
	}
	_, connected := b.grid.Distance(b.start, b.end)
	return Snapshot{
		ID:        b.ID,
		Rows:      b.grid.Rows,
		Cols:      b.grid.Cols,
		Start:     b.start,
		End:       b.end,
		Walls:     walls,
		Running:   b.running,
		Regions:   len(b.grid.ConnectedComponents()),
		Connected: connected,
	}
}

// Regions lists the open areas of the board, each in flood order from its
// first cell in row-major order.
func (b *Board) Regions() [][]gridgraph.Coord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.ConnectedComponents()
}

// editable checks the common preconditions of a wall edit. Caller holds mu.
func (b *Board) editable(c gridgraph.Coord) error {
	if b.running {
		return ErrRunning
	}
	if !b.grid.InBounds(c) {
		return fmt.Errorf("%w: %s", gridgraph.ErrOutOfBounds, c)
	}
	if c == b.start || c == b.end {
		return fmt.Errorf("%w: %s", ErrEndpoint, c)
	}
	return nil
}

// ToggleWall flips the wall at c and returns the new state.
func (b *Board) ToggleWall(c gridgraph.Coord) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.editable(c); err != nil {
		return false, err
	}
	return b.grid.ToggleWall(c)
}

// PaintWall sets a wall at c; dragging across cells only ever adds walls.
func (b *Board) PaintWall(c gridgraph.Coord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.editable(c); err != nil {
		return err
	}
	return b.grid.SetWall(c, true)
}

// MoveStart relocates the start cell to c, clearing any wall there.
func (b *Board) MoveStart(c gridgraph.Coord) error {
	return b.moveEndpoint(&b.start, &b.end, c)
}

// MoveEnd relocates the end cell to c, clearing any wall there.
func (b *Board) MoveEnd(c gridgraph.Coord) error {
	return b.moveEndpoint(&b.end, &b.start, c)
}

func (b *Board) moveEndpoint(moving, other *gridgraph.Coord, c gridgraph.Coord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrRunning
	}
	if !b.grid.InBounds(c) {
		return fmt.Errorf("%w: %s", gridgraph.ErrOutOfBounds, c)
	}
	if c == *other {
		return ErrOverlap
	}
	*moving = c
	return b.grid.SetWall(c, false)
}

// ClearWalls removes every wall and keeps the endpoints.
func (b *Board) ClearWalls() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrRunning
	}
	b.grid.ClearWalls()
	return nil
}

// Reset replaces the grid with a fresh open grid of the same size.
// The endpoints stay where they are.
func (b *Board) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrRunning
	}
	g, err := gridgraph.NewGrid(b.grid.Rows, b.grid.Cols)
	if err != nil {
		return err
	}
	b.grid = g
	return nil
}

// Run executes algo on the current layout.
func (b *Board) Run(algo search.Algorithm) (*Run, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.run(algo)
}

// StartPlayback runs algo and marks the board busy in one step, so the
// returned trace matches the layout that stays frozen until EndPlayback.
func (b *Board) StartPlayback(algo search.Algorithm) (*Run, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	run, err := b.run(algo)
	if err != nil {
		return nil, err
	}
	b.running = true
	return run, nil
}

// run searches the current layout. Caller holds mu.
func (b *Board) run(algo search.Algorithm) (*Run, error) {
	if b.running {
		return nil, ErrRunning
	}
	res, err := search.Run(algo, b.grid, b.start, b.end)
	if err != nil {
		return nil, err
	}
	return &Run{
		ID:        uuid.New(),
		BoardID:   b.ID,
		Algorithm: algo,
		Start:     b.start,
		End:       b.end,
		Result:    res,
	}, nil
}

// EndPlayback clears the busy mark.
func (b *Board) EndPlayback() {
	b.mu.Lock()
	b.running = false
	b.mu.Unlock()
}

// Running reports whether a playback is in progress.
func (b *Board) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}
