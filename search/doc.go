// Package search finds a path between the start and end cells of a
// grid.Grid using one of nine strategies, and reports the order in which
// cells were explored alongside the path.
//
// What
//
//   - BFS, DFS: unweighted FIFO / LIFO exploration.
//   - Dijkstra: cost-ranked (g), optimal for weighted grids.
//   - GreedyBestFirst: heuristic-ranked (h), fast, no optimality.
//   - AStar: g+h, optimal with Manhattan.
//   - Swarm: 0.6g + 0.4h; ConvergentSwarm: 0.3g + 0.7h.
//   - Bidirectional: BFS layers from both ends; same length as BFS.
//   - BidirectionalSwarm: Swarm from both ends, meeting on a cell closed by both.
//   - Heuristics: Manhattan (default), Euclidean, Chebyshev.
//
// Determinism
//
//	Neighbors are always produced east, south, west, north. Cost-ranked
//	frontiers break score ties by first insertion, so identical inputs give
//	identical Visited and Path on every run.
//
// Visited semantics
//
//	Visited lists cells in expansion order without duplicates. The end cell
//	is appended when it is reached; for the bidirectional searches the
//	meeting cell is included. Path runs start→end inclusive and is empty
//	when the end is unreachable or the predecessor chain is inconsistent.
//
// Complexity (V = rows×cols)
//
//   - BFS, DFS, Bidirectional: O(V) time and memory.
//   - Cost-ranked searches: O(V log V) time, O(V) memory (indexed binary heap).
//
// Usage
//
//	res, err := search.Search(g, search.AStar,
//	    search.WithHeuristic(search.Euclidean),
//	    search.WithContext(ctx),
//	    search.WithTracer(trace.NewSlog(logger)),
//	)
//
// Errors
//
//   - ErrGridNil          nil grid.
//   - ErrNoStart/ErrNoEnd the grid lacks a marker.
//   - ErrUnknownAlgorithm unsupported Algorithm value.
//   - ErrOptionViolation  invalid Option (unknown heuristic, negative limit).
//   - ErrExpansionLimit   MaxExpansions reached (partial Result returned).
//   - ctx.Err() and wrapped OnVisit errors (partial Result returned).
package search
