// Package config loads run settings for gridlab from YAML files and
// environment variables, and turns them into grid, search and maze options.
//
// Sources apply in order: Default, then an optional YAML file (Load), then
// GRIDLAB_* environment variables, optionally seeded from .env files
// (LoadEnv). Every source ends with Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by LoadEnv.
const (
	EnvRows      = "GRIDLAB_ROWS"
	EnvCols      = "GRIDLAB_COLS"
	EnvSearch    = "GRIDLAB_SEARCH"
	EnvHeuristic = "GRIDLAB_HEURISTIC"
	EnvMaze      = "GRIDLAB_MAZE"
	EnvSeed      = "GRIDLAB_SEED"
	EnvLogLevel  = "GRIDLAB_LOG_LEVEL"
)

// Config holds the settings for one run.
type Config struct {
	Rows     int          `yaml:"rows"`
	Cols     int          `yaml:"cols"`
	Search   SearchConfig `yaml:"search"`
	Maze     MazeConfig   `yaml:"maze"`
	LogLevel string       `yaml:"log_level"`
}

// SearchConfig selects the path search.
type SearchConfig struct {
	Algorithm string `yaml:"algorithm"`
	Heuristic string `yaml:"heuristic"`
}

// MazeConfig selects the maze generator. An empty Algorithm means no maze.
type MazeConfig struct {
	Algorithm       string  `yaml:"algorithm"`
	Seed            int64   `yaml:"seed"`
	WallProbability float64 `yaml:"wall_probability"`
}

// Default returns a 21×51 board searched with A* and Manhattan distance,
// no maze, and info logging.
func Default() Config {
	return Config{
		Rows: 21,
		Cols: 51,
		Search: SearchConfig{
			Algorithm: string(search.AStar),
			Heuristic: string(search.Manhattan),
		},
		Maze: MazeConfig{
			WallProbability: 0.25,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return c, c.Validate()
}

// LoadEnv loads the given .env files (or ./.env if none are named and it
// exists) into the process environment and applies the GRIDLAB_* variables
// on top of Default. Variables already set in the environment win over the
// files.
func LoadEnv(files ...string) (Config, error) {
	if err := loadDotenv(files); err != nil {
		return Config{}, err
	}
	return Default().Override(os.LookupEnv)
}

// Resolve layers every source: Default, the YAML file at path (skipped when
// path is empty), the .env files, then the process environment.
func Resolve(path string, envFiles ...string) (Config, error) {
	c := Default()
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	if err := loadDotenv(envFiles); err != nil {
		return Config{}, err
	}
	return c.Override(os.LookupEnv)
}

func loadDotenv(files []string) error {
	err := godotenv.Load(files...)
	if err == nil || len(files) == 0 && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: load env: %w", err)
}

// Override applies GRIDLAB_* values found through lookup and validates the
// result. c itself is not modified.
func (c Config) Override(lookup func(string) (string, bool)) (Config, error) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v))
				return
			}
			*dst = n
		}
	}

	num(EnvRows, &c.Rows)
	num(EnvCols, &c.Cols)
	str(EnvSearch, &c.Search.Algorithm)
	str(EnvHeuristic, &c.Search.Heuristic)
	str(EnvMaze, &c.Maze.Algorithm)
	str(EnvLogLevel, &c.LogLevel)
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvSeed, v))
		} else {
			c.Maze.Seed = n
		}
	}
	if len(errs) > 0 {
		return c, errors.Join(errs...)
	}
	return c, c.Validate()
}

// Validate reports the first invalid field wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 || c.Rows*c.Cols < 2 {
		return fmt.Errorf("%w: board %dx%d needs at least two cells", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: search.algorithm: %w", ErrInvalidConfig, err)
	}
	if _, err := search.ParseHeuristic(c.Search.Heuristic); err != nil {
		return fmt.Errorf("%w: search.heuristic: %w", ErrInvalidConfig, err)
	}
	if c.Maze.Algorithm != "" {
		if _, err := maze.ParseAlgorithm(c.Maze.Algorithm); err != nil {
			return fmt.Errorf("%w: maze.algorithm: %w", ErrInvalidConfig, err)
		}
	}
	if p := c.Maze.WallProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: maze.wall_probability %v outside [0,1]", ErrInvalidConfig, p)
	}
	if _, err := c.level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// NewGrid builds an empty board of the configured size.
func (c Config) NewGrid() (*grid.Grid, error) {
	return grid.New(c.Rows, c.Cols)
}

// SearchAlgorithm returns the configured search algorithm.
func (c Config) SearchAlgorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(c.Search.Algorithm)
}

// SearchOptions returns the search options implied by c.
func (c Config) SearchOptions() ([]search.Option, error) {
	h, err := search.ParseHeuristic(c.Search.Heuristic)
	if err != nil {
		return nil, err
	}
	return []search.Option{search.WithHeuristic(h)}, nil
}

// MazeAlgorithm returns the configured generator and whether one is set.
func (c Config) MazeAlgorithm() (maze.Algorithm, bool, error) {
	if c.Maze.Algorithm == "" {
		return "", false, nil
	}
	a, err := maze.ParseAlgorithm(c.Maze.Algorithm)
	return a, err == nil, err
}

// MazeOptions returns the generation options implied by c.
func (c Config) MazeOptions() []maze.Option {
	return []maze.Option{
		maze.WithSeed(c.Maze.Seed),
		maze.WithWallProbability(c.Maze.WallProbability),
	}
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := lvl.UnmarshalText([]byte(c.LogLevel))
	return lvl, err
}
