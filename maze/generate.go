package maze

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Generate prepares alg for g. Only g's dimensions and endpoints are read,
// and g is never written; apply the instructions with Replay or Apply.
//
// Returns ErrGridNil, grid.ErrNoStart, grid.ErrNoEnd, ErrUnknownAlgorithm
// or ErrOptionViolation. No generator work happens until the returned
// Sequence is consumed.
func Generate(g *grid.Grid, alg Algorithm, opts ...Option) (*Sequence, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	start, _ := g.Start()
	end, _ := g.End()
	return GenerateFor(g.Rows(), g.Cols(), start.Pos, end.Pos, alg, opts...)
}

// GenerateFor is Generate without a grid: the caller supplies the
// dimensions and the two cells every instruction must avoid.
func GenerateFor(rows, cols int, start, end grid.Pos, alg Algorithm, opts ...Option) (*Sequence, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	for _, p := range []grid.Pos{start, end} {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return nil, fmt.Errorf("%w: %s in %dx%d", ErrEndpoint, p.Key(), rows, cols)
		}
	}

	gen, err := generator(alg, o)
	if err != nil {
		return nil, err
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return newSequence(alg, o.Tracer, func(yield func(Instruction) bool) {
		gen(newBoard(rows, cols, start, end, rng, yield))
	}), nil
}

// generator resolves alg to the function that drives a board.
func generator(alg Algorithm, o Options) (func(*board), error) {
	switch alg {
	case RecursiveDivision:
		return func(b *board) { newWallDivider(b, horizontal, plainRule).run() }, nil
	case RecursiveDivisionVertical:
		return func(b *board) { newWallDivider(b, vertical, verticalSkewRule).run() }, nil
	case RecursiveDivisionHorizontal:
		return func(b *board) { newWallDivider(b, horizontal, horizontalSkewRule).run() }, nil
	case BasicRandom:
		p := o.WallProbability
		return func(b *board) { basicRandom(b, p) }, nil
	case Prim:
		return prim, nil
	case Kruskal:
		return kruskal, nil
	case RecursiveBacktracking:
		return backtracking, nil
	case Wilson:
		return wilson, nil
	case Eller:
		return eller, nil
	case Sidewinder:
		return sidewinder, nil
	case BinaryTree:
		return binaryTree, nil
	case Labyrinth:
		return labyrinth, nil
	case Weighted:
		return func(b *board) { newWeightDivider(b).run() }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
}

// Collect is a shorthand for generating alg with a fixed seed and draining
// the Sequence.
func Collect(g *grid.Grid, alg Algorithm, seed int64) ([]Instruction, error) {
	seq, err := Generate(g, alg, WithSeed(seed))
	if err != nil {
		return nil, err
	}
	return seq.Collect(), nil
}
