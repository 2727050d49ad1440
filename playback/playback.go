// Package playback turns a search.Result into a timed sequence of reveal
// frames and replays it at that pace.
//
// Visited cells are revealed one per VisitStep. Path cells follow once every
// visited reveal has been scheduled, one per PathStep. By default the start
// and end cells are not emitted because a renderer keeps their own markers.
package playback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

// ErrBadStep is returned when a step duration is negative.
var ErrBadStep = errors.New("playback: step must not be negative")

// Kind tells a renderer how to paint a frame's cell.
type Kind string

const (
	// KindVisited marks a cell finalized by the search.
	KindVisited Kind = "visited"
	// KindPath marks a cell on the reconstructed path.
	KindPath Kind = "path"
)

// Frame is one reveal: paint Cell as Kind at offset At from playback start.
// Index is the cell's position in its source sequence (Visited or Path).
type Frame struct {
	At    time.Duration   `json:"at"`
	Kind  Kind            `json:"kind"`
	Cell  gridgraph.Coord `json:"cell"`
	Index int             `json:"index"`
}

// Options controls pacing.
type Options struct {
	VisitStep     time.Duration
	PathStep      time.Duration
	WithEndpoints bool
	err           error
}

// Option configures Schedule.
type Option func(*Options)

// DefaultOptions returns 10ms per visited cell, 50ms per path cell and
// endpoints omitted.
func DefaultOptions() Options {
	return Options{
		VisitStep: 10 * time.Millisecond,
		PathStep:  50 * time.Millisecond,
	}
}

// WithVisitStep sets the delay between visited reveals.
func WithVisitStep(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: visit step %s", ErrBadStep, d)
			return
		}
		o.VisitStep = d
	}
}

// WithPathStep sets the delay between path reveals.
func WithPathStep(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: path step %s", ErrBadStep, d)
			return
		}
		o.PathStep = d
	}
}

// WithEndpoints includes the start and end cells in the schedule.
func WithEndpoints() Option {
	return func(o *Options) { o.WithEndpoints = true }
}

// Schedule lays out the frames for res, sorted by At.
// Visited frame i is due at i*VisitStep; path frame j at
// len(res.Visited)*VisitStep + j*PathStep.
func Schedule(res *search.Result, start, end gridgraph.Coord, opts ...Option) ([]Frame, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if res == nil {
		return nil, nil
	}

	skip := func(c gridgraph.Coord) bool {
		return !o.WithEndpoints && (c == start || c == end)
	}

	frames := make([]Frame, 0, len(res.Visited)+len(res.Path))
	for i, c := range res.Visited {
		if skip(c) {
			continue
		}
		frames = append(frames, Frame{At: time.Duration(i) * o.VisitStep, Kind: KindVisited, Cell: c, Index: i})
	}
	pathStart := time.Duration(len(res.Visited)) * o.VisitStep
	for j, c := range res.Path {
		if skip(c) {
			continue
		}
		frames = append(frames, Frame{At: pathStart + time.Duration(j)*o.PathStep, Kind: KindPath, Cell: c, Index: j})
	}
	return frames, nil
}

// Duration returns the offset of the last frame, zero for none.
func Duration(frames []Frame) time.Duration {
	if len(frames) == 0 {
		return 0
	}
	return frames[len(frames)-1].At
}

// Play calls emit for each frame at its offset from the moment Play starts.
// It stops early with the context error on cancellation, or with the first
// error returned by emit.
func Play(ctx context.Context, frames []Frame, emit func(Frame) error) error {
	begin := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for _, f := range frames {
		if wait := f.At - time.Since(begin); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(f); err != nil {
			return fmt.Errorf("playback: emit frame %d (%s %s): %w", f.Index, f.Kind, f.Cell, err)
		}
	}
	return nil
}
