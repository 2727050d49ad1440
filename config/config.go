// Package config resolves runtime settings for the pathviz binary from an
// optional .env file and PATHVIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/AmolBhere/pathfinding-visualizer-adv/gridgraph"
)

// Environment keys.
const (
	EnvRows      = "PATHVIZ_ROWS"
	EnvCols      = "PATHVIZ_COLS"
	EnvStart     = "PATHVIZ_START"
	EnvEnd       = "PATHVIZ_END"
	EnvVisitStep = "PATHVIZ_VISIT_STEP"
	EnvPathStep  = "PATHVIZ_PATH_STEP"
	EnvAddr      = "PATHVIZ_ADDR"
	EnvLogLevel  = "PATHVIZ_LOG_LEVEL"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds board defaults, playback pacing and server settings.
type Config struct {
	Rows      int             // Board rows for new boards
	Cols      int             // Board columns for new boards
	Start     gridgraph.Coord // Start cell for new boards
	End       gridgraph.Coord // End cell for new boards
	VisitStep time.Duration   // Delay between visited reveals
	PathStep  time.Duration   // Delay between path reveals
	Addr      string          // HTTP listen address
	LogLevel  string          // logrus level name
}

// Default returns the reference configuration: a 25×50 board from (10,10)
// to (10,40), 10ms/50ms pacing, listening on :8080 at info level.
func Default() Config {
	return Config{
		Rows:      25,
		Cols:      50,
		Start:     gridgraph.Coord{Row: 10, Col: 10},
		End:       gridgraph.Coord{Row: 10, Col: 40},
		VisitStep: 10 * time.Millisecond,
		PathStep:  50 * time.Millisecond,
		Addr:      ":8080",
		LogLevel:  "info",
	}
}

// Load reads the given dotenv files (".env" when none are named; a missing
// file is not an error) and overlays the process environment, which wins
// over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	fileVals := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, f, err)
		}
		for k, v := range vals {
			fileVals[k] = v
		}
	}

	return FromEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

// FromEnv builds a Config from Default, overriding each field whose key
// lookup reports present, then validates it.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup(EnvRows); ok {
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvRows, v, err)
		}
		c.Rows = n
	}
	if v, ok := lookup(EnvCols); ok {
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvCols, v, err)
		}
		c.Cols = n
	}
	if v, ok := lookup(EnvStart); ok {
		p, err := ParseCoord(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvStart, err)
		}
		c.Start = p
	}
	if v, ok := lookup(EnvEnd); ok {
		p, err := ParseCoord(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvEnd, err)
		}
		c.End = p
	}
	if v, ok := lookup(EnvVisitStep); ok {
		d, err := cast.ToDurationE(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvVisitStep, v, err)
		}
		c.VisitStep = d
	}
	if v, ok := lookup(EnvPathStep); ok {
		d, err := cast.ToDurationE(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvPathStep, v, err)
		}
		c.PathStep = d
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ParseCoord parses "row,col".
func ParseCoord(s string) (gridgraph.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	r, err := cast.ToIntE(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("coordinate %q row: %v", s, err)
	}
	c, err := cast.ToIntE(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("coordinate %q col: %v", s, err)
	}
	return gridgraph.Coord{Row: r, Col: c}, nil
}

// Validate rejects dimensions below one, endpoints outside the board or on
// the same cell, and negative steps.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: board %d×%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	inBounds := func(p gridgraph.Coord) bool {
		return p.Row >= 0 && p.Row < c.Rows && p.Col >= 0 && p.Col < c.Cols
	}
	if !inBounds(c.Start) || !inBounds(c.End) {
		return fmt.Errorf("%w: endpoints %s %s outside %d×%d board", ErrInvalidConfig, c.Start, c.End, c.Rows, c.Cols)
	}
	if c.Start == c.End {
		return fmt.Errorf("%w: start and end both at %s", ErrInvalidConfig, c.Start)
	}
	if c.VisitStep < 0 || c.PathStep < 0 {
		return fmt.Errorf("%w: negative step", ErrInvalidConfig)
	}
	return nil
}
