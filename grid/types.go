// Package grid defines cell kinds, positions, options, and sentinel errors
// for the rectangular board shared by the search and maze packages.
package grid

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrTooSmall indicates the grid cannot hold distinct start and end cells.
	ErrTooSmall = errors.New("grid: grid must have at least two cells")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrEndpointCollision indicates start and end were placed on the same cell.
	ErrEndpointCollision = errors.New("grid: start and end must differ")
	// ErrNoStart indicates the grid has no start cell.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrNoEnd indicates the grid has no end cell.
	ErrNoEnd = errors.New("grid: no end cell")
)

// Kind classifies a cell.
type Kind uint8

const (
	// Empty cells are passable and cost their weight to enter.
	Empty Kind = iota
	// Wall cells are impassable.
	Wall
	// Start marks the unique search source.
	Start
	// End marks the unique search target.
	End
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps a name produced by Kind.String back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "empty":
		return Empty, nil
	case "wall":
		return Wall, nil
	case "start":
		return Start, nil
	case "end":
		return End, nil
	}
	return Empty, fmt.Errorf("grid: unknown cell kind %q", s)
}

// Pos is a (row, col) coordinate. It is comparable and is the canonical
// key for a cell anywhere a map or set is needed.
type Pos struct {
	Row, Col int
}

// Key formats p as "row,col".
func (p Pos) Key() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// Add returns p shifted by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Cell is a snapshot of a single board square.
type Cell struct {
	Pos
	Kind   Kind
	Weight int // >= 1; only meaningful for Empty cells
}

// Passable reports whether a search may enter c.
func (c Cell) Passable() bool { return c.Kind != Wall }

// Option configures grid construction via functional arguments.
// Positions are validated by New.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// Start overrides the default start position when non-nil.
	Start *Pos
	// End overrides the default end position when non-nil.
	End *Pos
}

// WithStart places the start marker at p instead of the default.
func WithStart(p Pos) Option {
	return func(o *Options) {
		o.Start = &p
	}
}

// WithEnd places the end marker at p instead of the default.
func WithEnd(p Pos) Option {
	return func(o *Options) {
		o.End = &p
	}
}

// neighborOffsets fixes the neighbor order east, south, west, north.
// Every search breaks ties in this order.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
