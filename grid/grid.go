package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size board of cells with at most one Start and one End.
// It is not safe for concurrent mutation; use Clone to hand a snapshot to
// another goroutine.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end int // index of the marker cell, -1 when absent
}

// New builds a rows×cols grid of Empty cells with weight 1 and places the
// start and end markers. Without options the start sits at (2,4) and the end
// at (rows/2, 3*cols/4), both clamped into small grids.
// Returns ErrEmptyGrid, ErrTooSmall, ErrOutOfBounds or ErrEndpointCollision.
// Complexity: O(rows×cols).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	if rows*cols < 2 {
		return nil, ErrTooSmall
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		start: -1,
		end:   -1,
	}
	for i := range g.cells {
		g.cells[i] = Cell{Pos: g.PosOf(i), Kind: Empty, Weight: 1}
	}

	s, e := g.defaultEndpoints()
	if o.Start != nil {
		s = *o.Start
	}
	if o.End != nil {
		e = *o.End
	}
	if !g.InBounds(s) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, s.Key())
	}
	if !g.InBounds(e) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, e.Key())
	}
	if s == e {
		if o.Start != nil && o.End != nil {
			return nil, fmt.Errorf("%w: both at %s", ErrEndpointCollision, s.Key())
		}
		// only one side was pinned; move the other out of the way
		e, s = g.separate(s, e, o.Start != nil)
	}
	g.SetKind(s.Row, s.Col, Start)
	g.SetKind(e.Row, e.Col, End)

	return g, nil
}

// defaultEndpoints returns the classic asymmetric placement clamped to the grid.
func (g *Grid) defaultEndpoints() (Pos, Pos) {
	s := Pos{Row: min(2, g.rows-1), Col: min(4, g.cols-1)}
	e := Pos{Row: g.rows / 2, Col: 3 * g.cols / 4}
	if s == e {
		e, s = g.separate(s, e, true)
	}
	return s, e
}

// separate moves the unpinned endpoint of a colliding pair to the last cell,
// or to the first cell when the pinned one already sits there.
func (g *Grid) separate(s, e Pos, startPinned bool) (Pos, Pos) {
	last := g.PosOf(len(g.cells) - 1)
	first := Pos{}
	fixed := s
	if !startPinned {
		fixed = e
	}
	free := last
	if fixed == last {
		free = first
	}
	if startPinned {
		return free, s
	}
	return e, free
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index maps p to its row-major index. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// PosOf converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid) PosOf(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns the cell at (row, col). The boolean is false when the
// coordinates fall outside the grid; no panic occurs.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	return g.At(Pos{Row: row, Col: col})
}

// At returns the cell at p, or false when p is out of bounds.
func (g *Grid) At(p Pos) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.Index(p)], true
}

// CellAt returns the cell at a row-major index without bounds checking.
func (g *Grid) CellAt(idx int) Cell {
	return g.cells[idx]
}

// SetKind changes the kind of the cell at (row, col) and reports whether the
// grid was modified. Placing Start or End moves the marker: the previous
// holder reverts to Empty. Overwriting the current Start or End with another
// kind removes that marker until it is placed again.
func (g *Grid) SetKind(row, col int, k Kind) bool {
	p := Pos{Row: row, Col: col}
	if !g.InBounds(p) {
		return false
	}
	idx := g.Index(p)
	switch idx {
	case g.start:
		g.start = -1
	case g.end:
		g.end = -1
	}
	switch k {
	case Start:
		if g.start >= 0 {
			g.cells[g.start].Kind = Empty
		}
		g.start = idx
	case End:
		if g.end >= 0 {
			g.cells[g.end].Kind = Empty
		}
		g.end = idx
	}
	g.cells[idx].Kind = k

	return true
}

// SetWeight stores w on the cell at (row, col); values below 1 become 1.
// Returns false when the coordinates are out of bounds.
func (g *Grid) SetWeight(row, col, w int) bool {
	p := Pos{Row: row, Col: col}
	if !g.InBounds(p) {
		return false
	}
	if w < 1 {
		w = 1
	}
	g.cells[g.Index(p)].Weight = w
	return true
}

// Start returns the start cell, or false if none is placed.
func (g *Grid) Start() (Cell, bool) {
	if g.start < 0 {
		return Cell{}, false
	}
	return g.cells[g.start], true
}

// End returns the end cell, or false if none is placed.
func (g *Grid) End() (Cell, bool) {
	if g.end < 0 {
		return Cell{}, false
	}
	return g.cells[g.end], true
}

// Validate returns ErrNoStart or ErrNoEnd when a marker is missing.
func (g *Grid) Validate() error {
	if g.start < 0 {
		return ErrNoStart
	}
	if g.end < 0 {
		return ErrNoEnd
	}
	return nil
}

// Neighbors returns the passable orthogonal neighbors of p in the fixed
// order east, south, west, north.
// Complexity: O(1).
func (g *Grid) Neighbors(p Pos) []Cell {
	return g.AppendNeighbors(make([]Cell, 0, 4), p)
}

// AppendNeighbors appends the passable neighbors of p to dst and returns it.
func (g *Grid) AppendNeighbors(dst []Cell, p Pos) []Cell {
	for _, d := range neighborOffsets {
		q := p.Add(d[0], d[1])
		if !g.InBounds(q) {
			continue
		}
		c := g.cells[g.Index(q)]
		if c.Kind == Wall {
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// AppendNeighborIndexes is the index form of AppendNeighbors used by the
// search hot loops.
func (g *Grid) AppendNeighborIndexes(dst []int, idx int) []int {
	r, c := idx/g.cols, idx%g.cols
	if c+1 < g.cols && g.cells[idx+1].Kind != Wall {
		dst = append(dst, idx+1)
	}
	if r+1 < g.rows && g.cells[idx+g.cols].Kind != Wall {
		dst = append(dst, idx+g.cols)
	}
	if c > 0 && g.cells[idx-1].Kind != Wall {
		dst = append(dst, idx-1)
	}
	if r > 0 && g.cells[idx-g.cols].Kind != Wall {
		dst = append(dst, idx-g.cols)
	}
	return dst
}

// Reset turns every cell other than start and end back into Empty.
// Weights are left untouched; see ClearWeights.
func (g *Grid) Reset() {
	for i := range g.cells {
		if i == g.start || i == g.end {
			continue
		}
		g.cells[i].Kind = Empty
	}
}

// CellsOf returns every cell of kind k in row-major order.
func (g *Grid) CellsOf(k Kind) []Cell {
	var out []Cell
	for _, c := range g.cells {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// CountFilled returns the number of wall cells.
func (g *Grid) CountFilled() int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == Wall {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// String renders the grid one row per line: '#' wall, 'S' start, 'E' end,
// '.' an Empty cell of weight 1, a digit for weights 2..9 and '+' above that.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.rows)
	for i, c := range g.cells {
		if i > 0 && i%g.cols == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte(cellRune(c))
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	switch c.Kind {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	}
	switch {
	case c.Weight <= 1:
		return '.'
	case c.Weight <= 9:
		return byte('0' + c.Weight)
	default:
		return '+'
	}
}
