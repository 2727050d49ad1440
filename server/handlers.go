package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/AmolBhere/pathfinding-visualizer-adv/board"
	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
	"github.com/AmolBhere/pathfinding-visualizer-adv/playback"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]search.Algorithm{"algorithms": search.Algorithms()})
}

// handleSearch runs one search over a layout carried entirely in the body.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(r, &req, false); err != nil {
		s.fail(w, r, err)
		return
	}
	algo, err := search.ParseAlgorithm(req.Algorithm)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := checkSize(req.Rows, req.Cols); err != nil {
		s.fail(w, r, err)
		return
	}
	g, err := gridgraph.NewGrid(req.Rows, req.Cols)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	for _, p := range req.Walls {
		if err := g.SetWall(p.coord(), true); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	res, err := search.Run(algo, g, req.Start.coord(), req.End.coord())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.log.WithFields(logrus.Fields{
		"algorithm": algo,
		"visited":   len(res.Visited),
		"found":     res.Found(),
	}).Info("search completed")
	respondJSON(w, http.StatusOK, newSearchResponse(res))
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	req := createBoardRequest{Rows: s.cfg.Rows, Cols: s.cfg.Cols}
	if err := decode(r, &req, true); err != nil {
		s.fail(w, r, err)
		return
	}
	start, end := s.cfg.Start, s.cfg.End
	if req.Start != nil {
		start = req.Start.coord()
	}
	if req.End != nil {
		end = req.End.coord()
	}
	if err := checkSize(req.Rows, req.Cols); err != nil {
		s.fail(w, r, err)
		return
	}
	b, err := board.New(req.Rows, req.Cols, start, end)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.AddBoard(b)
	s.log.WithFields(logrus.Fields{"board": b.ID, "rows": req.Rows, "cols": req.Cols}).Info("board created")
	respondJSON(w, http.StatusCreated, newBoardResponse(b.Snapshot()))
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	b, err := s.boardFromRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newBoardResponse(b.Snapshot()))
}

// handleRegions lists the open areas of a board separated by walls.
func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	b, err := s.boardFromRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newRegionsResponse(b.Regions()))
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := boardID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.removeBoard(id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWall toggles the wall under the posted cell, or sets it when paint
// is true (a drag across cells).
func (s *Server) handleWall(w http.ResponseWriter, r *http.Request) {
	b, err := s.boardFromRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var req cellRequest
	if err := decode(r, &req, false); err != nil {
		s.fail(w, r, err)
		return
	}
	c := req.Cell.coord()
	wall := true
	if req.Paint {
		err = b.PaintWall(c)
	} else {
		wall, err = b.ToggleWall(c)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wallResponse{Cell: req.Cell, Wall: wall})
}

func (s *Server) handleClearWalls(w http.ResponseWriter, r *http.Request) {
	s.edit(w, r, (*board.Board).ClearWalls)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.edit(w, r, (*board.Board).Reset)
}

// edit applies a body-less board edit and answers with the new snapshot.
func (s *Server) edit(w http.ResponseWriter, r *http.Request, apply func(*board.Board) error) {
	b, err := s.boardFromRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := apply(b); err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newBoardResponse(b.Snapshot()))
}

func (s *Server) handleMoveStart(w http.ResponseWriter, r *http.Request) {
	s.moveEndpoint(w, r, (*board.Board).MoveStart)
}

func (s *Server) handleMoveEnd(w http.ResponseWriter, r *http.Request) {
	s.moveEndpoint(w, r, (*board.Board).MoveEnd)
}

func (s *Server) moveEndpoint(w http.ResponseWriter, r *http.Request, move func(*board.Board, gridgraph.Coord) error) {
	var req cellRequest
	if err := decode(r, &req, false); err != nil {
		s.fail(w, r, err)
		return
	}
	s.edit(w, r, func(b *board.Board) error { return move(b, req.Cell.coord()) })
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	b, err := s.boardFromRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var req runRequest
	if err := decode(r, &req, false); err != nil {
		s.fail(w, r, err)
		return
	}
	algo, err := search.ParseAlgorithm(req.Algorithm)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	run, err := b.Run(algo)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	frames, err := playback.Schedule(run.Result, run.Start, run.End, s.playbackOptions()...)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.log.WithFields(logrus.Fields{
		"board":     mux.Vars(r)["id"],
		"run":       run.ID,
		"algorithm": algo,
		"visited":   len(run.Result.Visited),
		"found":     run.Result.Found(),
	}).Info("board run completed")
	respondJSON(w, http.StatusOK, runResponse{
		RunID:          run.ID.String(),
		BoardID:        run.BoardID.String(),
		Start:          toPoint(run.Start),
		End:            toPoint(run.End),
		DurationMS:     playback.Duration(frames).Milliseconds(),
		searchResponse: newSearchResponse(run.Result),
	})
}
