// Package grid provides the rectangular board used by gridlab's search and
// maze engines.
//
// What
//
//   - A fixed rows×cols array of cells stored row-major (index = row*cols + col).
//   - Every cell has a Kind (Empty, Wall, Start, End) and a Weight >= 1.
//   - Exactly one Start and one End at construction; SetKind moves a marker
//     instead of duplicating it.
//   - Neighbors are orthogonal, in-bounds and non-wall, always reported in the
//     order east, south, west, north. Searches rely on that order for ties.
//   - Out-of-bounds lookups return (Cell{}, false), never panic.
//
// Why
//
//	Both engines work on dense integer indexes rather than string keys, so a
//	grid of 10⁵ cells costs a handful of flat slices per search.
//
// Complexity
//
//   - New, Reset, ClearWeights, AddRandomWeights: O(rows×cols).
//   - Cell, At, SetKind, SetWeight, Neighbors: O(1).
//
// Errors
//
//   - ErrEmptyGrid          rows or cols below 1.
//   - ErrTooSmall           fewer than two cells.
//   - ErrOutOfBounds        a start/end option outside the grid.
//   - ErrEndpointCollision  start and end options on the same cell.
//   - ErrNoStart, ErrNoEnd  returned by Validate when a marker was overwritten.
package grid
