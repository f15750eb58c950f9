package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
)

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())

	g, err := c.NewGrid()
	require.NoError(t, err)
	assert.Equal(t, 21, g.Rows())
	assert.Equal(t, 51, g.Cols())

	_, ok, err := c.MazeAlgorithm()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(`
rows: 15
cols: 31
search:
  algorithm: dijkstra
maze:
  algorithm: kruskal
  seed: 7
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 15, c.Rows)
	assert.Equal(t, "manhattan", c.Search.Heuristic, "unset keys keep defaults")

	alg, err := c.SearchAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, search.Dijkstra, alg)

	m, ok, err := c.MazeAlgorithm()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, maze.Kruskal, m)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "colour: red\n",
		"bad search":      "search: {algorithm: teleport}\n",
		"bad heuristic":   "search: {heuristic: taxicab}\n",
		"bad maze":        "maze: {algorithm: spiral}\n",
		"bad probability": "maze: {wall_probability: 1.5}\n",
		"too small":       "rows: 1\ncols: 1\n",
		"bad log level":   "log_level: loud\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.Error(t, err)
		})
	}
	_, err := config.Parse([]byte("rows: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParse_EmptyDocument(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 9\ncols: 9\n"), 0o600))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Rows)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverride(t *testing.T) {
	env := map[string]string{
		config.EnvRows:   "11",
		config.EnvSearch: "bfs",
		config.EnvMaze:   "prims",
		config.EnvSeed:   "42",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	c, err := config.Default().Override(lookup)
	require.NoError(t, err)
	assert.Equal(t, 11, c.Rows)
	assert.Equal(t, 51, c.Cols)
	assert.Equal(t, "bfs", c.Search.Algorithm)
	assert.Equal(t, int64(42), c.Maze.Seed)

	env[config.EnvCols] = "wide"
	_, err = config.Default().Override(lookup)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadEnv_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDLAB_COLS=13\nGRIDLAB_MAZE=wilson\n"), 0o600))
	t.Setenv(config.EnvRows, "7")
	// Registered so t.Setenv restores the process after godotenv sets them.
	t.Setenv(config.EnvCols, "")
	t.Setenv(config.EnvMaze, "")
	require.NoError(t, os.Unsetenv(config.EnvCols))
	require.NoError(t, os.Unsetenv(config.EnvMaze))

	c, err := config.LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Rows)
	assert.Equal(t, 13, c.Cols)
	assert.Equal(t, "wilson", c.Maze.Algorithm)

	_, err = config.LoadEnv(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	c := config.Default()
	c.LogLevel = "warn"
	log := c.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestOptions_Feed(t *testing.T) {
	c := config.Default()
	c.Rows, c.Cols = 11, 11
	c.Maze.Algorithm = "binary-tree"
	c.Maze.Seed = 3

	g, err := c.NewGrid()
	require.NoError(t, err)
	alg, _, err := c.MazeAlgorithm()
	require.NoError(t, err)
	_, err = maze.Build(g, alg, c.MazeOptions()...)
	require.NoError(t, err)

	opts, err := c.SearchOptions()
	require.NoError(t, err)
	sa, err := c.SearchAlgorithm()
	require.NoError(t, err)
	_, err = search.Search(g, sa, opts...)
	require.NoError(t, err)
}

func TestResolve_Layers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 9\ncols: 9\nsearch: {algorithm: dfs}\n"), 0o600))
	t.Setenv(config.EnvSearch, "bidirectional")

	_, err := config.Resolve(path, filepath.Join(dir, "none.env"))
	require.Error(t, err, "named .env files must exist")

	c, err := config.Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Rows)
	assert.Equal(t, "bidirectional", c.Search.Algorithm, "environment wins over the file")
}
