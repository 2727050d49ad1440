package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/AmolBhere/pathfinding-visualizer-adv/board"
	"github.com/AmolBhere/pathfinding-visualizer-adv/config"
	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
	"github.com/AmolBhere/pathfinding-visualizer-adv/playback"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

// MaxCells bounds the size of any grid accepted over HTTP. Dijkstra's
// per-step re-sort is quadratic in the cell count, so the cap stays at
// twice the 25×50 reference board.
const MaxCells = 50 * 50

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

var (
	// ErrBoardNotFound is returned for an unknown board id.
	ErrBoardNotFound = errors.New("server: board not found")
	// ErrTooLarge is returned when a requested grid exceeds MaxCells.
	ErrTooLarge = errors.New("server: grid too large")
)

// Server routes HTTP requests to the engine and the board store.
type Server struct {
	cfg    config.Config
	log    logrus.FieldLogger
	router *mux.Router

	mu     sync.RWMutex
	boards map[uuid.UUID]*board.Board
}

// New builds a Server. A nil logger falls back to logrus.StandardLogger().
func New(cfg config.Config, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{
		cfg:    cfg,
		log:    logger,
		router: mux.NewRouter(),
		boards: make(map[uuid.UUID]*board.Board),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.logRequests)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/algorithms", s.handleAlgorithms).Methods(http.MethodGet)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)

	api.HandleFunc("/boards", s.handleCreateBoard).Methods(http.MethodPost)
	api.HandleFunc("/boards/{id}", s.handleGetBoard).Methods(http.MethodGet)
	api.HandleFunc("/boards/{id}", s.handleDeleteBoard).Methods(http.MethodDelete)
	api.HandleFunc("/boards/{id}/regions", s.handleRegions).Methods(http.MethodGet)
	api.HandleFunc("/boards/{id}/walls", s.handleWall).Methods(http.MethodPost)
	api.HandleFunc("/boards/{id}/walls", s.handleClearWalls).Methods(http.MethodDelete)
	api.HandleFunc("/boards/{id}/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/boards/{id}/start", s.handleMoveStart).Methods(http.MethodPost)
	api.HandleFunc("/boards/{id}/end", s.handleMoveEnd).Methods(http.MethodPost)
	api.HandleFunc("/boards/{id}/run", s.handleRun).Methods(http.MethodPost)

	s.router.HandleFunc("/ws/boards/{id}", s.handleWatch).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// AddBoard registers b and returns its id.
func (s *Server) AddBoard(b *board.Board) uuid.UUID {
	s.mu.Lock()
	s.boards[b.ID] = b
	s.mu.Unlock()
	return b.ID
}

// Board looks up a registered board.
func (s *Server) Board(id uuid.UUID) (*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	return b, nil
}

// removeBoard drops an idle board. Holding mu excludes a concurrent
// startPlayback on the same board.
func (s *Server) removeBoard(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	if b.Running() {
		return board.ErrRunning
	}
	delete(s.boards, id)
	return nil
}

// startPlayback runs algo on a registered board and marks it busy while the
// board is still in the store.
func (s *Server) startPlayback(id uuid.UUID, algo search.Algorithm) (*board.Board, *board.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	run, err := b.StartPlayback(algo)
	if err != nil {
		return nil, nil, err
	}
	return b, run, nil
}

// boardID parses the {id} route variable.
func boardID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrBoardNotFound, err)
	}
	return id, nil
}

// boardFromRequest resolves the {id} route variable.
func (s *Server) boardFromRequest(r *http.Request) (*board.Board, error) {
	id, err := boardID(r)
	if err != nil {
		return nil, err
	}
	return s.Board(id)
}

func (s *Server) playbackOptions() []playback.Option {
	return []playback.Option{
		playback.WithVisitStep(s.cfg.VisitStep),
		playback.WithPathStep(s.cfg.PathStep),
	}
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBoardNotFound):
		return http.StatusNotFound
	case errors.Is(err, board.ErrRunning):
		return http.StatusConflict
	case errors.Is(err, search.ErrInvalidInput),
		errors.Is(err, gridgraph.ErrBadDimensions),
		errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, board.ErrEndpoint),
		errors.Is(err, board.ErrOverlap),
		errors.Is(err, ErrTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	respondError(w, status, err.Error())
}

// decode reads exactly one JSON object into v, rejecting unknown fields and
// trailing data. An empty body leaves v untouched when optional is set.
func decode(r *http.Request, v interface{}, optional bool) error {
	if r.Body == nil {
		if optional {
			return nil
		}
		return fmt.Errorf("%w: empty body", search.ErrInvalidInput)
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: decode body: %v", search.ErrInvalidInput, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode body: trailing data after JSON object", search.ErrInvalidInput)
	}
	return nil
}

func checkSize(rows, cols int) error {
	if rows > 0 && cols > 0 && rows > MaxCells/cols {
		return fmt.Errorf("%w: %d×%d exceeds %d cells", ErrTooLarge, rows, cols, MaxCells)
	}
	return nil
}
