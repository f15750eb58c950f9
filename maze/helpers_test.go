package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/unionfind"
)

func newGrid(t testing.TB, rows, cols int, start, end grid.Pos) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, grid.WithStart(start), grid.WithEnd(end))
	require.NoError(t, err)
	return g
}

// build generates alg on g with seed and replays the result into g.
func build(t testing.TB, g *grid.Grid, alg maze.Algorithm, seed int64) []maze.Instruction {
	t.Helper()
	seq, err := maze.Generate(g, alg, maze.WithSeed(seed))
	require.NoError(t, err)
	ins := seq.Collect()
	for _, in := range ins {
		maze.Apply(g, in)
	}
	return ins
}

// treeShape reports whether the passable cells of g form one connected,
// acyclic component.
func treeShape(g *grid.Grid) (connected, acyclic bool) {
	uf := unionfind.New(g.Len())
	vertices, edges := 0, 0
	for i := 0; i < g.Len(); i++ {
		if !g.CellAt(i).Passable() {
			continue
		}
		vertices++
		p := g.PosOf(i)
		for _, q := range []grid.Pos{p.Add(0, 1), p.Add(1, 0)} {
			c, ok := g.At(q)
			if ok && c.Passable() {
				edges++
				uf.Union(i, g.Index(q))
			}
		}
	}
	walls := g.Len() - vertices
	return uf.Sets()-walls == 1, edges == vertices-1
}

func count(ins []maze.Instruction, k maze.Kind) int {
	n := 0
	for _, in := range ins {
		if in.Kind == k {
			n++
		}
	}
	return n
}
