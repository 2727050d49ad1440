package server

import (
	"github.com/AmolBhere/pathfinding-visualizer-adv/board"
	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

// point is the [row, col] wire form of a gridgraph.Coord.
type point [2]int

func toPoint(c gridgraph.Coord) point { return point{c.Row, c.Col} }

func (p point) coord() gridgraph.Coord { return gridgraph.Coord{Row: p[0], Col: p[1]} }

// toPoints never returns nil so empty sequences encode as [].
func toPoints(cs []gridgraph.Coord) []point {
	out := make([]point, len(cs))
	for i, c := range cs {
		out[i] = toPoint(c)
	}
	return out
}

type searchRequest struct {
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Walls     []point `json:"walls"`
	Start     point   `json:"start"`
	End       point   `json:"end"`
	Algorithm string  `json:"algorithm"`
}

type searchResponse struct {
	Algorithm search.Algorithm `json:"algorithm"`
	Visited   []point          `json:"visited"`
	Path      []point          `json:"path"`
	Found     bool             `json:"found"`
	Steps     int              `json:"steps"`
}

func newSearchResponse(res *search.Result) searchResponse {
	return searchResponse{
		Algorithm: res.Algorithm,
		Visited:   toPoints(res.Visited),
		Path:      toPoints(res.Path),
		Found:     res.Found(),
		Steps:     res.Steps(),
	}
}

type createBoardRequest struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Start *point `json:"start"`
	End   *point `json:"end"`
}

type cellRequest struct {
	Cell  point `json:"cell"`
	Paint bool  `json:"paint"`
}

type runRequest struct {
	Algorithm string `json:"algorithm"`
}

type boardResponse struct {
	ID        string  `json:"id"`
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Start     point   `json:"start"`
	End       point   `json:"end"`
	Walls     []point `json:"walls"`
	Running   bool    `json:"running"`
	Regions   int     `json:"regions"`
	Connected bool    `json:"connected"`
}

func newBoardResponse(s board.Snapshot) boardResponse {
	return boardResponse{
		ID:        s.ID.String(),
		Rows:      s.Rows,
		Cols:      s.Cols,
		Start:     toPoint(s.Start),
		End:       toPoint(s.End),
		Walls:     toPoints(s.Walls),
		Running:   s.Running,
		Regions:   s.Regions,
		Connected: s.Connected,
	}
}

type regionsResponse struct {
	Regions [][]point `json:"regions"`
}

func newRegionsResponse(regions [][]gridgraph.Coord) regionsResponse {
	out := make([][]point, len(regions))
	for i, r := range regions {
		out[i] = toPoints(r)
	}
	return regionsResponse{Regions: out}
}

type wallResponse struct {
	Cell point `json:"cell"`
	Wall bool  `json:"wall"`
}

type runResponse struct {
	RunID      string `json:"run_id"`
	BoardID    string `json:"board_id"`
	Start      point  `json:"start"`
	End        point  `json:"end"`
	DurationMS int64  `json:"duration_ms"`
	searchResponse
}

// streamMessage is one WebSocket message. Type is "frame" for a reveal and
// "done" once playback has finished.
type streamMessage struct {
	Type    string `json:"type"`
	RunID   string `json:"run_id"`
	Kind    string `json:"kind,omitempty"`
	Cell    *point `json:"cell,omitempty"`
	Index   int    `json:"index"`
	AtMS    int64  `json:"at_ms"`
	Found   bool   `json:"found,omitempty"`
	Visited int    `json:"visited,omitempty"`
	Path    int    `json:"path,omitempty"`
}
