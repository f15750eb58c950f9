// Package gridlab is an in-memory workbench for path search and maze
// generation on rectangular grids.
//
// What's inside
//
//	A small set of packages that fit together:
//		• grid:      the board, cell kinds, weights, start/end invariant
//		• search:    BFS, DFS, Dijkstra, Greedy Best-First, A*, Swarm,
//		             Convergent Swarm, Bidirectional BFS, Bidirectional Swarm
//		• maze:      recursive division (three flavours), basic random, Prim,
//		             Kruskal, recursive backtracking, Wilson, Eller,
//		             Sidewinder, binary tree, labyrinth, weighted maze
//		• unionfind: the disjoint-set forest behind Kruskal and Eller
//		• trace:     optional timing and counters, slog-backed or in memory
//		• config:    YAML / .env / environment settings mapped onto options
//
// Why
//
//   - Deterministic: fixed neighbor order, insertion-order tie breaks and
//     seeded generators give identical results run after run.
//   - Lazy mazes: generators hand out one instruction at a time, so a
//     renderer can animate playback without buffering a whole maze.
//   - Opt-in plumbing: tracing, YAML/.env configuration and the terminal
//     front end sit beside the engines, never inside them.
//
// Layout
//
//	grid/      : Grid, Cell, Pos, Kind, weight helpers
//	search/    : Search, All, Heuristic, Result
//	maze/      : Generate, GenerateFor, Sequence, Apply, Replay, Build
//	unionfind/ : UnionFind
//	trace/     : Tracer, Slog, Recorder
//	config/    : Config, Load, Resolve
//	cmd/gridlab: command line front end
//
// Quick ASCII example (S start, E end, * path, # wall):
//
//	S*###
//	.*..#
//	.***E
//
//	go get github.com/katalvlaran/gridlab
package gridlab
