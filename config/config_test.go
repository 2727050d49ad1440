package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmolBhere/pathfinding-visualizer-adv/config"
	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
)

// mapLookup adapts a map to the FromEnv lookup signature.
func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault_Valid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 25, c.Rows)
	assert.Equal(t, 50, c.Cols)
	assert.Equal(t, gridgraph.Coord{Row: 10, Col: 10}, c.Start)
	assert.Equal(t, gridgraph.Coord{Row: 10, Col: 40}, c.End)
	assert.Equal(t, 10*time.Millisecond, c.VisitStep)
	assert.Equal(t, 50*time.Millisecond, c.PathStep)
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := config.FromEnv(mapLookup(map[string]string{
		config.EnvRows:      "10",
		config.EnvCols:      " 12 ",
		config.EnvStart:     "1, 2",
		config.EnvEnd:       "9,11",
		config.EnvVisitStep: "5ms",
		config.EnvPathStep:  "1s",
		config.EnvAddr:      "127.0.0.1:9090",
		config.EnvLogLevel:  "DEBUG",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Rows:      10,
		Cols:      12,
		Start:     gridgraph.Coord{Row: 1, Col: 2},
		End:       gridgraph.Coord{Row: 9, Col: 11},
		VisitStep: 5 * time.Millisecond,
		PathStep:  time.Second,
		Addr:      "127.0.0.1:9090",
		LogLevel:  "debug",
	}, c)
}

func TestFromEnv_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"BadRows":       {config.EnvRows: "many"},
		"ZeroCols":      {config.EnvCols: "0"},
		"BadStart":      {config.EnvStart: "1;2"},
		"StartOutside":  {config.EnvStart: "30,1"},
		"SameEndpoints": {config.EnvEnd: "10,10"},
		"BadStep":       {config.EnvVisitStep: "soon"},
		"NegativeStep":  {config.EnvPathStep: "-5ms"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromEnv(mapLookup(env))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathviz.env")
	require.NoError(t, os.WriteFile(path, []byte("PATHVIZ_ROWS=15\nPATHVIZ_COLS=20\nPATHVIZ_END=3,19\n"), 0o600))
	t.Setenv(config.EnvCols, "30")

	c, err := config.Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 15, c.Rows)
	assert.Equal(t, 30, c.Cols, "environment wins over file")
	assert.Equal(t, gridgraph.Coord{Row: 3, Col: 19}, c.End)
}

func TestParseCoord(t *testing.T) {
	p, err := config.ParseCoord("4,7")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Coord{Row: 4, Col: 7}, p)

	for _, bad := range []string{"", "4", "4,7,1", "a,1", "1,b"} {
		_, err := config.ParseCoord(bad)
		assert.Error(t, err, bad)
	}
}
