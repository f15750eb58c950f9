// Package maze generates mazes as lazy sequences of instructions that a
// playback consumer applies to a grid.Grid one step at a time.
//
// What
//
//   - RecursiveDivision, plus vertical- and horizontal-skew variants: border
//     first, then wall lines on even offsets with one gap on an odd offset.
//   - BasicRandom: each cell becomes a wall with probability 0.25 by default.
//   - Prim, Kruskal, RecursiveBacktracking, Wilson, Eller, Sidewinder,
//     BinaryTree: perfect mazes over the even-indexed cells. Carves stream
//     out as the tree grows; remaining walls follow in row-major order.
//   - Labyrinth: concentric rings with blocking cells and ring gaps.
//   - Weighted: recursive-division geometry emitting Weight instructions
//     with values from WeightValues instead of walls.
//
// Laziness
//
//	Generate validates its input and returns at once. Ranging over All runs
//	the generator only while the loop body keeps going and stops it as soon
//	as the loop breaks. The first Next runs the generator to completion and
//	buffers the result for later calls. Either way a Sequence holds no
//	goroutine and needs no cleanup. A Sequence is single-pass.
//
// Invariants
//
//	No instruction targets the start or end cell, and no cell receives the
//	same instruction twice. With a fixed seed (WithSeed) the sequence is
//	reproducible; seed 0 selects a fixed default seed.
//
//	The spanning-tree generators connect every even cell into a perfect
//	maze. An endpoint on a between-cell counts as an open passage, and an
//	endpoint on an odd,odd cell gets one adjacent passage carved, so start
//	and end stay reachable and the maze stays acyclic wherever they sit.
//	Labyrinth keeps every open cell reachable from every other.
//
// Usage
//
//	seq, err := maze.Generate(g, maze.Kruskal, maze.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	for in := range seq.All() {
//	    maze.Apply(g, in)
//	    draw(g)
//	}
//
// Complexity (V = rows×cols)
//
//   - Spanning-tree generators: O(V) time and memory (Kruskal O(V α(V))).
//   - Division family and Weighted: O(V log V) time, O(V) memory.
//   - Labyrinth, BasicRandom: O(V).
//
// Errors
//
//   - ErrGridNil          nil grid.
//   - ErrDimensions       rows or cols below 1 (GenerateFor).
//   - ErrEndpoint         start or end outside the grid (GenerateFor).
//   - ErrUnknownAlgorithm unsupported Algorithm value.
//   - ErrOptionViolation  invalid Option (wall probability outside [0,1]).
package maze
