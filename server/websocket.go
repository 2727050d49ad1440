package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/AmolBhere/pathfinding-visualizer-adv/playback"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWatch runs the requested algorithm on a board and streams the
// playback over a WebSocket. The board refuses edits until the stream ends.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	id, err := boardID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	algo, err := search.ParseAlgorithm(r.URL.Query().Get("algorithm"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	b, run, err := s.startPlayback(id, algo)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer b.EndPlayback()

	frames, err := playback.Schedule(run.Result, run.Start, run.End, s.playbackOptions()...)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := s.log.WithFields(logrus.Fields{"board": b.ID, "run": run.ID, "algorithm": algo})
	logger.WithField("frames", len(frames)).Info("playback started")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readPump(conn, cancel)

	runID := run.ID.String()
	err = playback.Play(ctx, frames, func(f playback.Frame) error {
		cell := toPoint(f.Cell)
		return writeMessage(conn, streamMessage{
			Type:  "frame",
			RunID: runID,
			Kind:  string(f.Kind),
			Cell:  &cell,
			Index: f.Index,
			AtMS:  f.At.Milliseconds(),
		})
	})
	if err != nil {
		logger.WithError(err).Info("playback aborted")
		return
	}

	err = writeMessage(conn, streamMessage{
		Type:    "done",
		RunID:   runID,
		AtMS:    playback.Duration(frames).Milliseconds(),
		Found:   run.Result.Found(),
		Visited: len(run.Result.Visited),
		Path:    len(run.Result.Path),
	})
	if err != nil {
		logger.WithError(err).Info("playback aborted")
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(writeWait))
	logger.Info("playback finished")
}

func writeMessage(conn *websocket.Conn, msg streamMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

// readPump discards client messages and cancels the playback once the peer
// goes away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
