// Package search defines algorithm identifiers, heuristics, options, results
// and sentinel errors for path search over a grid.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/trace"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrNoStart is returned when the grid has no start cell.
	ErrNoStart = grid.ErrNoStart

	// ErrNoEnd is returned when the grid has no end cell.
	ErrNoEnd = grid.ErrNoEnd

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrUnknownHeuristic is returned for an unrecognized Heuristic.
	ErrUnknownHeuristic = errors.New("search: unknown heuristic")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions cells were visited
	// without reaching the end. The partial Result is still returned.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Algorithm names a search strategy.
type Algorithm string

const (
	BFS                Algorithm = "bfs"                 // FIFO, unweighted shortest
	DFS                Algorithm = "dfs"                 // LIFO, no optimality
	Dijkstra           Algorithm = "dijkstra"            // rank by g
	GreedyBestFirst    Algorithm = "greedy"              // rank by h
	AStar              Algorithm = "astar"               // rank by g+h
	Swarm              Algorithm = "swarm"               // rank by 0.6g+0.4h
	ConvergentSwarm    Algorithm = "convergent-swarm"    // rank by 0.3g+0.7h
	Bidirectional      Algorithm = "bidirectional"       // BFS from both ends
	BidirectionalSwarm Algorithm = "bidirectional-swarm" // swarm from both ends
)

// Algorithms returns every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		BFS, DFS, Dijkstra, GreedyBestFirst, AStar,
		Swarm, ConvergentSwarm, Bidirectional, BidirectionalSwarm,
	}
}

// Weighted reports whether a honors cell weights.
func (a Algorithm) Weighted() bool {
	switch a {
	case Dijkstra, AStar, Swarm, ConvergentSwarm, BidirectionalSwarm:
		return true
	}
	return false
}

// Optimal reports whether a always returns a minimum-cost path.
// BFS and Bidirectional are optimal in steps, Dijkstra and A* in cost
// (A* only with an admissible heuristic: Manhattan on a 4-connected grid).
func (a Algorithm) Optimal() bool {
	switch a {
	case BFS, Bidirectional, Dijkstra, AStar:
		return true
	}
	return false
}

// ParseAlgorithm accepts the identifiers above, case-insensitively, plus a
// few common aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	switch k {
	case "greedy-best-first", "greedybestfirst", "best-first":
		return GreedyBestFirst, nil
	case "a*", "a-star":
		return AStar, nil
	case "convergentswarm", "convergent":
		return ConvergentSwarm, nil
	case "bidirectional-bfs", "bibfs":
		return Bidirectional, nil
	case "bidirectionalswarm":
		return BidirectionalSwarm, nil
	}
	for _, a := range Algorithms() {
		if string(a) == k {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a single Search call.
type Options struct {
	// Ctx allows cancellation; checked once per expanded cell.
	Ctx context.Context

	// Heuristic ranks cells for Greedy, A* and the swarm family.
	Heuristic Heuristic

	// OnVisit is called for each cell as it is appended to Visited.
	// Returning an error aborts the search.
	OnVisit func(c grid.Cell) error

	// MaxExpansions, if > 0, stops after that many visited cells.
	MaxExpansions int

	// Tracer observes the run; defaults to trace.Nop().
	Tracer trace.Tracer

	err error
}

// DefaultOptions returns background context, Manhattan heuristic, no limit,
// a no-op OnVisit and a no-op tracer.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: Manhattan,
		OnVisit:   func(grid.Cell) error { return nil },
		Tracer:    trace.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the distance estimate. Unknown values are recorded
// as ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == "" {
			return
		}
		if !h.valid() {
			o.err = fmt.Errorf("%w: %w %q", ErrOptionViolation, ErrUnknownHeuristic, string(h))
			return
		}
		o.Heuristic = h
	}
}

// WithOnVisit registers a callback run for every visited cell.
func WithOnVisit(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions bounds the number of visited cells.
//
//	n > 0:  stop after n cells with ErrExpansionLimit
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
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

// Result is the outcome of a search.
//   - Visited: cells in the order the algorithm expanded them, no duplicates.
//     The end cell is included when reached.
//   - Path: start to end inclusive, or empty when the end is unreachable.
type Result struct {
	Visited []grid.Cell
	Path    []grid.Cell
}

// Found reports whether a path was produced.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// Steps returns the number of moves along Path.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Cost returns the sum of weights of every cell entered along Path; the
// start cell is not entered and does not count.
func (r *Result) Cost() int {
	sum := 0
	for i := 1; i < len(r.Path); i++ {
		sum += r.Path[i].Weight
	}
	return sum
}
