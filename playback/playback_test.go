package playback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
	"github.com/AmolBhere/pathfinding-visualizer-adv/playback"
	"github.com/AmolBhere/pathfinding-visualizer-adv/search"
)

func at(r, c int) gridgraph.Coord { return gridgraph.Coord{Row: r, Col: c} }

// lineResult is a BFS over a 1×4 open row from (0,0) to (0,3).
func lineResult(t *testing.T) *search.Result {
	t.Helper()
	g, err := gridgraph.NewGrid(1, 4)
	require.NoError(t, err)
	res, err := search.BFS(g, at(0, 0), at(0, 3))
	require.NoError(t, err)
	return res
}

func TestSchedule_DefaultPacing(t *testing.T) {
	frames, err := playback.Schedule(lineResult(t), at(0, 0), at(0, 3))
	require.NoError(t, err)

	want := []playback.Frame{
		{At: 10 * time.Millisecond, Kind: playback.KindVisited, Cell: at(0, 1), Index: 1},
		{At: 20 * time.Millisecond, Kind: playback.KindVisited, Cell: at(0, 2), Index: 2},
		{At: 40*time.Millisecond + 50*time.Millisecond, Kind: playback.KindPath, Cell: at(0, 1), Index: 1},
		{At: 40*time.Millisecond + 100*time.Millisecond, Kind: playback.KindPath, Cell: at(0, 2), Index: 2},
	}
	assert.Equal(t, want, frames)
	assert.Equal(t, 140*time.Millisecond, playback.Duration(frames))
}

func TestSchedule_WithEndpoints(t *testing.T) {
	frames, err := playback.Schedule(lineResult(t), at(0, 0), at(0, 3),
		playback.WithEndpoints(),
		playback.WithVisitStep(time.Millisecond),
		playback.WithPathStep(2*time.Millisecond),
	)
	require.NoError(t, err)
	require.Len(t, frames, 8)

	assert.Equal(t, playback.Frame{At: 0, Kind: playback.KindVisited, Cell: at(0, 0), Index: 0}, frames[0])
	assert.Equal(t, playback.Frame{At: 4 * time.Millisecond, Kind: playback.KindPath, Cell: at(0, 0), Index: 0}, frames[4])
	assert.Equal(t, 10*time.Millisecond, playback.Duration(frames))

	for i := 1; i < len(frames); i++ {
		assert.LessOrEqual(t, frames[i-1].At, frames[i].At)
	}
}

func TestSchedule_NoPath(t *testing.T) {
	res := &search.Result{Visited: []gridgraph.Coord{at(0, 0), at(0, 1)}, Path: []gridgraph.Coord{}}
	frames, err := playback.Schedule(res, at(0, 0), at(5, 5))
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, playback.KindVisited, frames[0].Kind)

	frames, err = playback.Schedule(nil, at(0, 0), at(0, 0))
	require.NoError(t, err)
	assert.Empty(t, frames)
	assert.Zero(t, playback.Duration(frames))
}

func TestSchedule_BadStep(t *testing.T) {
	_, err := playback.Schedule(lineResult(t), at(0, 0), at(0, 3), playback.WithVisitStep(-time.Millisecond))
	assert.ErrorIs(t, err, playback.ErrBadStep)

	_, err = playback.Schedule(lineResult(t), at(0, 0), at(0, 3), playback.WithPathStep(-time.Second))
	assert.ErrorIs(t, err, playback.ErrBadStep)
}

func TestPlay_EmitsInOrder(t *testing.T) {
	frames, err := playback.Schedule(lineResult(t), at(0, 0), at(0, 3),
		playback.WithVisitStep(time.Millisecond),
		playback.WithPathStep(time.Millisecond),
	)
	require.NoError(t, err)

	var got []playback.Frame
	begin := time.Now()
	err = playback.Play(context.Background(), frames, func(f playback.Frame) error {
		got = append(got, f)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, frames, got)
	assert.GreaterOrEqual(t, time.Since(begin), playback.Duration(frames))
}

func TestPlay_Cancel(t *testing.T) {
	frames := []playback.Frame{
		{At: 0, Kind: playback.KindVisited, Cell: at(0, 0)},
		{At: time.Hour, Kind: playback.KindVisited, Cell: at(0, 1)},
	}
	ctx, cancel := context.WithCancel(context.Background())
	var n int
	err := playback.Play(ctx, frames, func(playback.Frame) error {
		n++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n)
}

func TestPlay_EmitError(t *testing.T) {
	boom := errors.New("boom")
	frames := []playback.Frame{{Kind: playback.KindPath, Cell: at(1, 1)}}
	err := playback.Play(context.Background(), frames, func(playback.Frame) error { return boom })
	assert.ErrorIs(t, err, boom)
}
