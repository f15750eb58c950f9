package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/search"
)

// parseGrid builds a grid from rows of runes: '#' wall, 'S' start, 'E' end,
// '.' empty, '1'..'9' weighted empty cell.
func parseGrid(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	var s, e grid.Pos
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'S':
				s = grid.Pos{Row: r, Col: c}
			case 'E':
				e = grid.Pos{Row: r, Col: c}
			}
		}
	}
	g, err := grid.New(len(rows), len(rows[0]), grid.WithStart(s), grid.WithEnd(e))
	require.NoError(t, err)
	for r, line := range rows {
		for c, ch := range line {
			switch {
			case ch == '#':
				g.SetKind(r, c, grid.Wall)
			case ch >= '1' && ch <= '9':
				g.SetWeight(r, c, int(ch-'0'))
			}
		}
	}
	return g
}

// randomGrid scatters walls with probability p and weights 1..5, keeping
// start and end open.
func randomGrid(t testing.TB, seed int64, rows, cols int, p float64) *grid.Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g, err := grid.New(rows, cols,
		grid.WithStart(grid.Pos{Row: 0, Col: 0}),
		grid.WithEnd(grid.Pos{Row: rows - 1, Col: cols - 1}))
	require.NoError(t, err)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c, _ := g.Cell(row, col)
			if c.Kind != grid.Empty {
				continue
			}
			if r.Float64() < p {
				g.SetKind(row, col, grid.Wall)
				continue
			}
			g.SetWeight(row, col, 1+r.Intn(5))
		}
	}
	return g
}

// requireValidPath checks that res.Path runs start→end through adjacent,
// passable cells without repeats, and that Visited has no duplicates.
func requireValidPath(t *testing.T, g *grid.Grid, res *search.Result) {
	t.Helper()
	seen := make(map[grid.Pos]bool, len(res.Visited))
	for _, c := range res.Visited {
		require.False(t, seen[c.Pos], "duplicate visited cell %s", c.Key())
		seen[c.Pos] = true
	}
	if !res.Found() {
		return
	}
	s, _ := g.Start()
	e, _ := g.End()
	require.Equal(t, s.Pos, res.Path[0].Pos, "path starts at start")
	require.Equal(t, e.Pos, res.Path[len(res.Path)-1].Pos, "path ends at end")
	require.True(t, seen[e.Pos], "end cell is visited")

	onPath := make(map[grid.Pos]bool, len(res.Path))
	for i, c := range res.Path {
		require.NotEqual(t, grid.Wall, c.Kind, "wall on path at %s", c.Key())
		require.False(t, onPath[c.Pos], "path repeats %s", c.Key())
		onPath[c.Pos] = true
		if i == 0 {
			continue
		}
		prev := res.Path[i-1]
		dr, dc := abs(c.Row-prev.Row), abs(c.Col-prev.Col)
		require.Equal(t, 1, dr+dc, "non-adjacent step %s -> %s", prev.Key(), c.Key())
	}
}

func positions(cells []grid.Cell) []grid.Pos {
	out := make([]grid.Pos, len(cells))
	for i, c := range cells {
		out[i] = c.Pos
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
