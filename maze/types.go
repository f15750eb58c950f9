// Package maze defines instruction kinds, algorithm identifiers, options and
// sentinel errors for maze generation.
package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/trace"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrDimensions is returned for rows or cols below 1.
	ErrDimensions = errors.New("maze: rows and cols must be positive")

	// ErrEndpoint is returned when start or end lies outside the grid.
	ErrEndpoint = errors.New("maze: start or end out of bounds")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Kind is the action an Instruction performs.
type Kind uint8

const (
	// Carve turns the target cell into an Empty cell.
	Carve Kind = iota
	// Wall turns the target cell into a Wall.
	Wall
	// Weight sets the weight of an Empty target cell.
	Weight
)

// String returns "carve", "wall" or "weight".
func (k Kind) String() string {
	switch k {
	case Carve:
		return "carve"
	case Wall:
		return "wall"
	case Weight:
		return "weight"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Instruction is one step of a generated maze. Weight is set only for the
// Weight kind.
type Instruction struct {
	Kind Kind
	grid.Pos
	Weight int
}

// String formats the instruction as "kind row,col" plus the weight if any.
func (in Instruction) String() string {
	if in.Kind == Weight {
		return fmt.Sprintf("%s %s =%d", in.Kind, in.Key(), in.Weight)
	}
	return in.Kind.String() + " " + in.Key()
}

// Algorithm names a maze generator.
type Algorithm string

const (
	RecursiveDivision           Algorithm = "recursive-division"
	RecursiveDivisionVertical   Algorithm = "recursive-division-vertical"
	RecursiveDivisionHorizontal Algorithm = "recursive-division-horizontal"
	BasicRandom                 Algorithm = "basic-random"
	Prim                        Algorithm = "prims"
	Kruskal                     Algorithm = "kruskal"
	RecursiveBacktracking       Algorithm = "recursive-backtracking"
	Wilson                      Algorithm = "wilson"
	Eller                       Algorithm = "ellers"
	Sidewinder                  Algorithm = "side-winder"
	BinaryTree                  Algorithm = "binary-tree"
	Labyrinth                   Algorithm = "labyrinth"
	Weighted                    Algorithm = "weighted-maze"
)

// Algorithms returns every generator in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		RecursiveDivision, RecursiveDivisionVertical, RecursiveDivisionHorizontal,
		BasicRandom, Prim, Kruskal, RecursiveBacktracking, Wilson, Eller,
		Sidewinder, BinaryTree, Labyrinth, Weighted,
	}
}

// Perfect reports whether a yields a spanning tree over the even cells:
// exactly one simple path between any two of them.
func (a Algorithm) Perfect() bool {
	switch a {
	case Prim, Kruskal, RecursiveBacktracking, Wilson, Eller, Sidewinder, BinaryTree:
		return true
	}
	return false
}

// ParseAlgorithm accepts the identifiers above, case-insensitively, plus
// short aliases such as "prim", "eller" and "sidewinder".
func ParseAlgorithm(s string) (Algorithm, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	switch k {
	case "prim":
		return Prim, nil
	case "eller":
		return Eller, nil
	case "sidewinder":
		return Sidewinder, nil
	case "weighted":
		return Weighted, nil
	case "random":
		return BasicRandom, nil
	case "backtracking", "dfs":
		return RecursiveBacktracking, nil
	case "division":
		return RecursiveDivision, nil
	}
	for _, a := range Algorithms() {
		if string(a) == k {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures generation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Seed feeds the default random source; 0 means a fixed default seed.
	Seed int64

	// Rand, when set, is used instead of a source derived from Seed.
	// It must not be shared with another goroutine while the Sequence runs.
	Rand *rand.Rand

	// WallProbability is the per-cell wall chance for BasicRandom.
	WallProbability float64

	// Tracer observes each run; defaults to trace.Nop().
	Tracer trace.Tracer

	err error
}

// DefaultOptions returns seed 0, wall probability 0.25 and a no-op tracer.
func DefaultOptions() Options {
	return Options{
		WallProbability: 0.25,
		Tracer:          trace.Nop(),
	}
}

// WithSeed fixes the random source so generation is reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies a caller-owned random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithWallProbability sets the BasicRandom wall chance.
//
//	0 <= p <= 1: accepted
//	otherwise:   invalid option → ErrOptionViolation
func WithWallProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			o.err = fmt.Errorf("%w: wall probability %v outside [0,1]", ErrOptionViolation, p)
			return
		}
		o.WallProbability = p
	}
}

// WithTracer installs an observer for timing and counters.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}
