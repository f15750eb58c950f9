package maze

import (
	"iter"

	"github.com/katalvlaran/gridlab/grid"
)

// Stats counts how a replay went.
type Stats struct {
	Applied int // instructions that changed the grid
	Skipped int // out of bounds, endpoint targets, or weights on walls
}

// Apply performs one instruction on g and reports whether it was applied.
// Start and end cells are never touched, and a Weight instruction only
// lands on an Empty cell.
func Apply(g *grid.Grid, in Instruction) bool {
	c, ok := g.At(in.Pos)
	if !ok || c.Kind == grid.Start || c.Kind == grid.End {
		return false
	}
	switch in.Kind {
	case Carve:
		return g.SetKind(in.Row, in.Col, grid.Empty)
	case Wall:
		return g.SetKind(in.Row, in.Col, grid.Wall)
	case Weight:
		if c.Kind != grid.Empty {
			return false
		}
		return g.SetWeight(in.Row, in.Col, in.Weight)
	}
	return false
}

// Replay applies every instruction of seq to g in order.
func Replay(g *grid.Grid, seq iter.Seq[Instruction]) (Stats, error) {
	var st Stats
	if g == nil {
		return st, ErrGridNil
	}
	for in := range seq {
		if Apply(g, in) {
			st.Applied++
		} else {
			st.Skipped++
		}
	}
	return st, nil
}

// Build clears g's walls and weights, then generates alg and replays it
// into g in one go.
func Build(g *grid.Grid, alg Algorithm, opts ...Option) (Stats, error) {
	seq, err := Generate(g, alg, opts...)
	if err != nil {
		return Stats{}, err
	}
	g.Reset()
	g.ClearWeights()
	return Replay(g, seq.All())
}
