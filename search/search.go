// Package search runs path searches over a grid.Grid and reports the
// visit order and the resulting path.
package search

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridlab/grid"
)

// Search runs alg on g from its start cell to its end cell.
//
// Returns ErrGridNil, ErrNoStart, ErrNoEnd, ErrUnknownAlgorithm or
// ErrOptionViolation before any work is done. An unreachable end is not an
// error: the Result then has the full Visited log and an empty Path.
// Cancellation, ErrExpansionLimit and OnVisit errors are returned together
// with the partial Result gathered so far.
//
// The grid must not be mutated while Search runs.
func Search(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	r := newRunner(g, o)
	var run func() error
	switch alg {
	case BFS:
		run = r.bfs
	case DFS:
		run = r.dfs
	case Dijkstra:
		run = func() error { return r.bestFirst(dijkstraBlend) }
	case GreedyBestFirst:
		run = func() error { return r.bestFirst(greedyBlend) }
	case AStar:
		run = func() error { return r.bestFirst(aStarBlend) }
	case Swarm:
		run = func() error { return r.bestFirst(swarmBlend) }
	case ConvergentSwarm:
		run = func() error { return r.bestFirst(convergentBlend) }
	case Bidirectional:
		run = r.bidirectional
	case BidirectionalSwarm:
		run = r.bidirectionalSwarm
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	span := o.Tracer.Begin("search",
		slog.String("algorithm", string(alg)),
		slog.String("heuristic", string(o.Heuristic)),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
	)
	err := run()
	span.End(
		slog.Int("visited", len(r.res.Visited)),
		slog.Int("path", len(r.res.Path)),
		slog.Bool("found", r.res.Found()),
	)

	return r.res, err
}

// All runs every algorithm on g with the same options and returns the
// results keyed by algorithm. The first error stops the sweep.
func All(g *grid.Grid, opts ...Option) (map[Algorithm]*Result, error) {
	out := make(map[Algorithm]*Result, len(Algorithms()))
	for _, a := range Algorithms() {
		res, err := Search(g, a, opts...)
		if err != nil {
			return out, fmt.Errorf("search: %s: %w", a, err)
		}
		out[a] = res
	}
	return out, nil
}
