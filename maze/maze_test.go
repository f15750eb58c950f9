package maze_test

import (
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
	"github.com/katalvlaran/gridlab/trace"
)

func TestGenerate_Validation(t *testing.T) {
	_, err := maze.Generate(nil, maze.Prim)
	require.ErrorIs(t, err, maze.ErrGridNil)

	g := newGrid(t, 5, 5, grid.Pos{Row: 0, Col: 0}, grid.Pos{Row: 4, Col: 4})
	_, err = maze.Generate(g, maze.Algorithm("spiral"))
	require.ErrorIs(t, err, maze.ErrUnknownAlgorithm)

	_, err = maze.Generate(g, maze.BasicRandom, maze.WithWallProbability(1.5))
	require.ErrorIs(t, err, maze.ErrOptionViolation)

	g.SetKind(0, 0, grid.Wall)
	_, err = maze.Generate(g, maze.Prim)
	require.ErrorIs(t, err, grid.ErrNoStart)
}

func TestGenerateFor_Validation(t *testing.T) {
	origin := grid.Pos{}
	_, err := maze.GenerateFor(0, 5, origin, origin, maze.Kruskal)
	require.ErrorIs(t, err, maze.ErrDimensions)

	_, err = maze.GenerateFor(3, 3, origin, grid.Pos{Row: 3, Col: 0}, maze.Kruskal)
	require.ErrorIs(t, err, maze.ErrEndpoint)

	seq, err := maze.GenerateFor(1, 1, origin, origin, maze.Kruskal)
	require.NoError(t, err)
	assert.Empty(t, seq.Collect(), "a single cell is the endpoint itself")
}

// AlgorithmSuite runs the properties every generator shares.
type AlgorithmSuite struct {
	suite.Suite
}

func (s *AlgorithmSuite) TestNeverTargetsEndpoints() {
	for _, alg := range maze.Algorithms() {
		g := newGrid(s.T(), 13, 17, grid.Pos{Row: 2, Col: 4}, grid.Pos{Row: 6, Col: 12})
		start, _ := g.Start()
		end, _ := g.End()
		ins := build(s.T(), g, alg, 7)
		s.NotEmpty(ins, "%s", alg)
		for _, in := range ins {
			s.NotEqual(start.Pos, in.Pos, "%s touched start", alg)
			s.NotEqual(end.Pos, in.Pos, "%s touched end", alg)
			s.True(g.InBounds(in.Pos), "%s out of bounds: %s", alg, in)
		}
		_, ok := g.Start()
		s.True(ok, "%s", alg)
		_, ok = g.End()
		s.True(ok, "%s", alg)
	}
}

func (s *AlgorithmSuite) TestNoRepeatedInstruction() {
	for _, alg := range maze.Algorithms() {
		g := newGrid(s.T(), 21, 21, grid.Pos{Row: 1, Col: 1}, grid.Pos{Row: 19, Col: 19})
		seen := make(map[maze.Instruction]bool)
		for _, in := range build(s.T(), g, alg, 3) {
			s.False(seen[in], "%s repeated %s", alg, in)
			seen[in] = true
		}
	}
}

func (s *AlgorithmSuite) TestSameSeedSameSequence() {
	for _, alg := range maze.Algorithms() {
		a := build(s.T(), newGrid(s.T(), 15, 19, grid.Pos{}, grid.Pos{Row: 14, Col: 18}), alg, 99)
		b := build(s.T(), newGrid(s.T(), 15, 19, grid.Pos{}, grid.Pos{Row: 14, Col: 18}), alg, 99)
		s.Equal(a, b, "%s", alg)
	}
}

func TestAlgorithmSuite(t *testing.T) {
	suite.Run(t, new(AlgorithmSuite))
}

func TestPerfectMazes_SpanningTree(t *testing.T) {
	for _, alg := range maze.Algorithms() {
		if !alg.Perfect() {
			continue
		}
		for seed := int64(1); seed <= 5; seed++ {
			g := newGrid(t, 15, 21, grid.Pos{}, grid.Pos{Row: 14, Col: 20})
			ins := build(t, g, alg, seed)

			rooms := 8 * 11
			require.Equal(t, rooms-1, count(ins, maze.Carve), "%s seed %d", alg, seed)
			require.Zero(t, count(ins, maze.Weight))

			connected, acyclic := treeShape(g)
			require.True(t, connected, "%s seed %d:\n%s", alg, seed, g)
			require.True(t, acyclic, "%s seed %d:\n%s", alg, seed, g)

			res, err := search.Search(g, search.BFS)
			require.NoError(t, err)
			require.True(t, res.Found(), "%s seed %d", alg, seed)
		}
	}
}

func TestPerfectMazes_EvenDimensions(t *testing.T) {
	for _, alg := range maze.Algorithms() {
		if !alg.Perfect() {
			continue
		}
		g := newGrid(t, 10, 12, grid.Pos{}, grid.Pos{Row: 8, Col: 10})
		build(t, g, alg, 11)
		res, err := search.Search(g, search.BFS)
		require.NoError(t, err)
		require.True(t, res.Found(), "%s:\n%s", alg, g)
	}
}

func TestKruskal_SmallGrid(t *testing.T) {
	g := newGrid(t, 5, 5, grid.Pos{}, grid.Pos{Row: 4, Col: 4})
	ins := build(t, g, maze.Kruskal, 1)

	// 9 rooms need 8 passages; the other 8 odd cells stay walls.
	assert.Equal(t, 8, count(ins, maze.Carve))
	assert.Equal(t, 8, count(ins, maze.Wall))

	// Carves come first, walls are flushed in row-major order.
	walls := slices.IndexFunc(ins, func(in maze.Instruction) bool { return in.Kind == maze.Wall })
	for _, in := range ins[:walls] {
		assert.Equal(t, maze.Carve, in.Kind)
	}
	tail := ins[walls:]
	assert.True(t, slices.IsSortedFunc(tail, func(a, b maze.Instruction) int {
		return (a.Row*5 + a.Col) - (b.Row*5 + b.Col)
	}))
}

func TestRecursiveDivision_Connected(t *testing.T) {
	for _, alg := range []maze.Algorithm{
		maze.RecursiveDivision,
		maze.RecursiveDivisionVertical,
		maze.RecursiveDivisionHorizontal,
	} {
		for seed := int64(1); seed <= 5; seed++ {
			g := newGrid(t, 15, 21, grid.Pos{Row: 1, Col: 1}, grid.Pos{Row: 13, Col: 19})
			ins := build(t, g, alg, seed)
			require.Equal(t, len(ins), count(ins, maze.Wall), "%s only draws walls", alg)

			for c := 0; c < 21; c++ {
				cell, _ := g.Cell(0, c)
				require.Equal(t, grid.Wall, cell.Kind, "%s border", alg)
			}
			res, err := search.Search(g, search.BFS)
			require.NoError(t, err)
			require.True(t, res.Found(), "%s seed %d:\n%s", alg, seed, g)
		}
	}
}

func TestRecursiveDivision_TinyGridIsEmpty(t *testing.T) {
	g := newGrid(t, 4, 4, grid.Pos{}, grid.Pos{Row: 3, Col: 3})
	seq, err := maze.Generate(g, maze.RecursiveDivision)
	require.NoError(t, err)
	assert.Empty(t, seq.Collect())
}

func TestBasicRandom_Probability(t *testing.T) {
	g := newGrid(t, 6, 6, grid.Pos{}, grid.Pos{Row: 5, Col: 5})

	seq, err := maze.Generate(g, maze.BasicRandom, maze.WithWallProbability(0))
	require.NoError(t, err)
	assert.Empty(t, seq.Collect())

	seq, err = maze.Generate(g, maze.BasicRandom, maze.WithWallProbability(1))
	require.NoError(t, err)
	assert.Len(t, seq.Collect(), 36-2)

	big := newGrid(t, 60, 60, grid.Pos{}, grid.Pos{Row: 59, Col: 59})
	ins := build(t, big, maze.BasicRandom, 5)
	frac := float64(len(ins)) / float64(big.Len())
	assert.InDelta(t, 0.25, frac, 0.04)
}

func TestWeighted_OnlyWeights(t *testing.T) {
	g := newGrid(t, 21, 21, grid.Pos{Row: 1, Col: 1}, grid.Pos{Row: 19, Col: 19})
	ins := build(t, g, maze.Weighted, 4)
	require.NotEmpty(t, ins)
	for _, in := range ins {
		require.Equal(t, maze.Weight, in.Kind)
		require.Contains(t, maze.WeightValues, in.Weight)
	}
	assert.Zero(t, g.CountFilled())
	for i := 0; i < g.Len(); i++ {
		c := g.CellAt(i)
		if c.Weight != 1 {
			assert.Contains(t, maze.WeightValues, c.Weight)
		}
	}
}

func TestRandomWeight_Distribution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	hist := make(map[int]int)
	const n = 20000
	for i := 0; i < n; i++ {
		hist[maze.RandomWeight(r)]++
	}
	assert.InDelta(t, 0.4, float64(hist[2]+hist[3])/n, 0.02)
	assert.InDelta(t, 0.3, float64(hist[4]+hist[5])/n, 0.02)
	assert.InDelta(t, 0.3, float64(hist[15])/n, 0.02)
	assert.Len(t, hist, len(maze.WeightValues))
}

func TestPerfectMazes_EndpointOffRoom(t *testing.T) {
	tests := []struct {
		rows, cols int
		start, end grid.Pos
	}{
		{21, 21, grid.Pos{}, grid.Pos{Row: 10, Col: 9}},
		{21, 21, grid.Pos{}, grid.Pos{Row: 9, Col: 9}},
		{21, 21, grid.Pos{Row: 9, Col: 9}, grid.Pos{Row: 9, Col: 11}},
		{21, 21, grid.Pos{Row: 1, Col: 1}, grid.Pos{Row: 9, Col: 10}},
		{20, 20, grid.Pos{}, grid.Pos{Row: 19, Col: 19}},
		{20, 21, grid.Pos{Row: 19, Col: 0}, grid.Pos{Row: 1, Col: 19}},
	}
	for _, alg := range maze.Algorithms() {
		if !alg.Perfect() {
			continue
		}
		for _, tt := range tests {
			name := fmt.Sprintf("%s/%dx%d/%s-%s", alg, tt.rows, tt.cols, tt.start.Key(), tt.end.Key())
			t.Run(name, func(t *testing.T) {
				for seed := int64(1); seed <= 20; seed++ {
					g := newGrid(t, tt.rows, tt.cols, tt.start, tt.end)
					build(t, g, alg, seed)

					connected, acyclic := treeShape(g)
					require.True(t, connected, "seed %d:\n%s", seed, g)
					require.True(t, acyclic, "seed %d:\n%s", seed, g)

					res, err := search.Search(g, search.BFS)
					require.NoError(t, err)
					require.True(t, res.Found(), "seed %d", seed)
				}
			})
		}
	}
}

func TestLabyrinth_CenterReachable(t *testing.T) {
	sizes := [][2]int{{21, 21}, {25, 25}, {21, 51}, {20, 40}, {16, 16}, {11, 11}, {40, 20}}
	for _, sz := range sizes {
		rows, cols := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			for seed := int64(1); seed <= 30; seed++ {
				g := newGrid(t, rows, cols, grid.Pos{}, grid.Pos{Row: rows / 2, Col: cols / 2})
				build(t, g, maze.Labyrinth, seed)

				res, err := search.Search(g, search.BFS)
				require.NoError(t, err)
				require.True(t, res.Found(), "seed %d:\n%s", seed, g)

				connected, _ := treeShape(g)
				assert.True(t, connected, "seed %d: every open cell is reachable", seed)
			}
		})
	}
}

func TestLabyrinth_Rings(t *testing.T) {
	g := newGrid(t, 21, 21, grid.Pos{}, grid.Pos{Row: 20, Col: 20})
	ins := build(t, g, maze.Labyrinth, 2)
	require.NotEmpty(t, ins)
	assert.Positive(t, count(ins, maze.Carve), "gaps are opened")
	assert.Greater(t, count(ins, maze.Wall), count(ins, maze.Carve))

	// A gap only ever reopens a cell walled earlier in the same run.
	walled := make(map[grid.Pos]bool)
	for _, in := range ins {
		switch in.Kind {
		case maze.Wall:
			walled[in.Pos] = true
		case maze.Carve:
			require.True(t, walled[in.Pos], "carve without wall at %s", in.Key())
		}
	}

	// Corners of the innermost ring are never gap candidates.
	c, _ := g.Cell(9, 9)
	assert.Equal(t, grid.Wall, c.Kind)
}

func TestSequence_Lazy(t *testing.T) {
	rec := &trace.Recorder{}
	g := newGrid(t, 11, 11, grid.Pos{}, grid.Pos{Row: 10, Col: 10})
	seq, err := maze.Generate(g, maze.Wilson, maze.WithTracer(rec))
	require.NoError(t, err)
	assert.Empty(t, rec.Records(), "nothing runs before the first pull")
	assert.Zero(t, seq.Emitted())

	ins := seq.Collect()
	require.Len(t, rec.Records(), 1)
	r := rec.Records()[0]
	assert.Equal(t, "maze", r.Op)
	n, ok := r.Int("instructions")
	require.True(t, ok)
	assert.EqualValues(t, len(ins), n)
	assert.True(t, seq.Done())
	assert.Empty(t, seq.Collect(), "a Sequence is single-pass")
}

func TestSequence_EarlyStop(t *testing.T) {
	rec := &trace.Recorder{}
	g := newGrid(t, 21, 21, grid.Pos{}, grid.Pos{Row: 20, Col: 20})
	seq, err := maze.Generate(g, maze.Prim, maze.WithTracer(rec))
	require.NoError(t, err)

	taken := 0
	for range seq.All() {
		taken++
		if taken == 5 {
			break
		}
	}
	assert.Equal(t, 5, seq.Emitted())
	assert.True(t, seq.Done())
	_, ok := seq.Next()
	assert.False(t, ok)

	require.Len(t, rec.Records(), 1)
	n, _ := rec.Records()[0].Int("instructions")
	assert.EqualValues(t, 5, n)
}

func TestSequence_NextThenAll(t *testing.T) {
	g := newGrid(t, 13, 13, grid.Pos{}, grid.Pos{Row: 12, Col: 12})
	full, err := maze.Collect(g, maze.RecursiveBacktracking, 8)
	require.NoError(t, err)

	seq, err := maze.Generate(g, maze.RecursiveBacktracking, maze.WithSeed(8))
	require.NoError(t, err)
	var got []maze.Instruction
	for i := 0; i < 3; i++ {
		in, ok := seq.Next()
		require.True(t, ok)
		got = append(got, in)
	}
	got = append(got, seq.Collect()...)
	assert.Equal(t, full, got)
	assert.Equal(t, len(full), seq.Emitted())
}

func TestSequence_Stop(t *testing.T) {
	g := newGrid(t, 13, 13, grid.Pos{}, grid.Pos{Row: 12, Col: 12})
	seq, err := maze.Generate(g, maze.Eller)
	require.NoError(t, err)
	_, ok := seq.Next()
	require.True(t, ok)
	seq.Stop()
	seq.Stop()
	_, ok = seq.Next()
	assert.False(t, ok)
	assert.Empty(t, seq.Collect())
}

func TestSequence_DroppedAfterNext(t *testing.T) {
	g := newGrid(t, 21, 51, grid.Pos{}, grid.Pos{Row: 20, Col: 50})
	before := runtime.NumGoroutine()
	for i := 0; i < 200; i++ {
		seq, err := maze.Generate(g, maze.Kruskal, maze.WithSeed(int64(i+1)))
		require.NoError(t, err)
		_, ok := seq.Next()
		require.True(t, ok)
	}
	runtime.GC()
	assert.LessOrEqual(t, runtime.NumGoroutine(), before+2, "an abandoned Sequence holds no goroutine")
}

func TestSequence_Identity(t *testing.T) {
	g := newGrid(t, 5, 5, grid.Pos{}, grid.Pos{Row: 4, Col: 4})
	a, err := maze.Generate(g, maze.Sidewinder)
	require.NoError(t, err)
	b, err := maze.Generate(g, maze.Sidewinder)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, maze.Sidewinder, a.Algorithm())
}

func TestSeedPolicy(t *testing.T) {
	g := newGrid(t, 11, 11, grid.Pos{}, grid.Pos{Row: 10, Col: 10})
	zero, err := maze.Collect(g, maze.Kruskal, 0)
	require.NoError(t, err)
	one, err := maze.Collect(g, maze.Kruskal, 1)
	require.NoError(t, err)
	assert.Equal(t, one, zero)

	seq, err := maze.Generate(g, maze.Kruskal, maze.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Equal(t, one, seq.Collect())
}

func TestApply(t *testing.T) {
	g := newGrid(t, 3, 3, grid.Pos{}, grid.Pos{Row: 2, Col: 2})
	at := func(r, c int) grid.Pos { return grid.Pos{Row: r, Col: c} }

	assert.False(t, maze.Apply(g, maze.Instruction{Kind: maze.Wall, Pos: at(0, 0)}), "start")
	assert.False(t, maze.Apply(g, maze.Instruction{Kind: maze.Wall, Pos: at(3, 0)}), "out of bounds")
	assert.True(t, maze.Apply(g, maze.Instruction{Kind: maze.Wall, Pos: at(1, 1)}))
	assert.False(t, maze.Apply(g, maze.Instruction{Kind: maze.Weight, Pos: at(1, 1), Weight: 5}), "weight on wall")
	assert.True(t, maze.Apply(g, maze.Instruction{Kind: maze.Carve, Pos: at(1, 1)}))
	assert.True(t, maze.Apply(g, maze.Instruction{Kind: maze.Weight, Pos: at(1, 1), Weight: 5}))

	c, _ := g.Cell(1, 1)
	assert.Equal(t, grid.Empty, c.Kind)
	assert.Equal(t, 5, c.Weight)
}

func TestBuild_ResetsFirst(t *testing.T) {
	g := newGrid(t, 11, 11, grid.Pos{}, grid.Pos{Row: 10, Col: 10})
	st, err := maze.Build(g, maze.BinaryTree, maze.WithSeed(3))
	require.NoError(t, err)
	assert.Zero(t, st.Skipped)
	walls := g.CountFilled()

	st2, err := maze.Build(g, maze.BinaryTree, maze.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, st, st2)
	assert.Equal(t, walls, g.CountFilled())

	_, err = maze.Replay(nil, nil)
	assert.ErrorIs(t, err, maze.ErrGridNil)
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range maze.Algorithms() {
		got, err := maze.ParseAlgorithm(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := maze.ParseAlgorithm("hexagonal")
	assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
}
