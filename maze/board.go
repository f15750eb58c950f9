package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/unionfind"
)

// board is the generator-side view of the grid: dimensions, the two
// protected endpoints, per-cell bookkeeping and the downstream consumer.
// Generators stop early once the consumer declines an instruction.
type board struct {
	rows, cols int
	start, end grid.Pos
	rng        *rand.Rand

	// pending marks cells that still hold a wall the generator may carve.
	pending []bool
	// links tracks which rooms are already joined by open passages.
	links *unionfind.UnionFind
	// blocked marks between-cells that must stay wall so an odd,odd
	// endpoint keeps exactly one open neighbor.
	blocked []bool
	// marked records cells already emitted by the line-drawing generators.
	marked []bool

	yield   func(Instruction) bool
	stopped bool
}

func newBoard(rows, cols int, start, end grid.Pos, rng *rand.Rand, yield func(Instruction) bool) *board {
	return &board{
		rows:  rows,
		cols:  cols,
		start: start,
		end:   end,
		rng:   rng,
		yield: yield,
	}
}

func (b *board) idx(r, c int) int { return r*b.cols + c }

func (b *board) inBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// protected reports whether (r,c) is an endpoint; instructions never target it.
func (b *board) protected(r, c int) bool {
	p := grid.Pos{Row: r, Col: c}
	return p == b.start || p == b.end
}

// emit forwards an instruction unless the target is protected, out of
// bounds, or the consumer has already stopped.
func (b *board) emit(in Instruction) {
	if b.stopped || !b.inBounds(in.Row, in.Col) || b.protected(in.Row, in.Col) {
		return
	}
	if !b.yield(in) {
		b.stopped = true
	}
}

func (b *board) emitWall(r, c int) {
	b.emit(Instruction{Kind: Wall, Pos: grid.Pos{Row: r, Col: c}})
}

func (b *board) emitCarve(r, c int) {
	b.emit(Instruction{Kind: Carve, Pos: grid.Pos{Row: r, Col: c}})
}

// ------------------------------------------------------------------------
// Line drawing (recursive division, labyrinth rings, weighted)
// ------------------------------------------------------------------------

// mark emits a wall at (r,c) the first time it is seen.
func (b *board) mark(r, c int) {
	if b.markOnce(r, c) {
		b.emitWall(r, c)
	}
}

// markOnce records (r,c) and reports whether it was new and targetable.
func (b *board) markOnce(r, c int) bool {
	if !b.inBounds(r, c) || b.protected(r, c) {
		return false
	}
	if b.marked == nil {
		b.marked = make([]bool, b.rows*b.cols)
	}
	i := b.idx(r, c)
	if b.marked[i] {
		return false
	}
	b.marked[i] = true
	return true
}

// unmark carves (r,c) if it was marked.
func (b *board) unmark(r, c int) {
	if !b.inBounds(r, c) || b.marked == nil || !b.marked[b.idx(r, c)] {
		return
	}
	b.marked[b.idx(r, c)] = false
	b.emitCarve(r, c)
}

// ------------------------------------------------------------------------
// Spanning-tree generators over even cells
// ------------------------------------------------------------------------

// even reports whether (r,c) is a room cell.
func even(r, c int) bool { return r%2 == 0 && c%2 == 0 }

// fillOdd marks every non-room cell except the endpoints as a pending wall
// and ties endpoints that sit off the room lattice into it.
func (b *board) fillOdd() {
	b.pending = make([]bool, b.rows*b.cols)
	b.links = unionfind.New(b.roomCount())
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if even(r, c) || b.protected(r, c) {
				continue
			}
			b.pending[b.idx(r, c)] = true
		}
	}
	b.attach(b.start)
	b.attach(b.end)
}

// attach keeps an endpoint off a room cell inside the tree. A between-cell
// endpoint is an open passage, so its two rooms count as joined. An odd,odd
// endpoint borders only between-cells; exactly one of them is opened and
// the rest are blocked, as long as blocking them leaves the rooms
// connectable. On boards too small for that the endpoint may close a cycle.
func (b *board) attach(p grid.Pos) {
	switch {
	case even(p.Row, p.Col):
	case p.Row%2 == 1 && p.Col%2 == 1:
		var around []grid.Pos
		for _, d := range cellSteps {
			q := p.Add(d[0], d[1])
			if b.inBounds(q.Row, q.Col) {
				around = append(around, q)
			}
		}
		shuffle(around, b.rng)
		for i, q := range around {
			if !b.pending[b.idx(q.Row, q.Col)] {
				around[0], around[i] = q, around[0]
				break
			}
		}
		keep := around[0]
		for _, q := range around {
			if b.isBlocked(q) {
				continue
			}
			if b.connectableWithout(around, q) {
				keep = q
				b.block(around, q)
				break
			}
		}
		if a, z, ok := b.across(keep); ok {
			b.links.Union(b.roomIndex(a), b.roomIndex(z))
		}
		b.carve(keep.Row, keep.Col)
	default:
		if a, z, ok := b.across(p); ok {
			b.links.Union(b.roomIndex(a), b.roomIndex(z))
		}
	}
}

// block marks every cell of around except keep as a passage never to open.
func (b *board) block(around []grid.Pos, keep grid.Pos) {
	if b.blocked == nil {
		b.blocked = make([]bool, b.rows*b.cols)
	}
	for _, q := range around {
		if q != keep {
			b.blocked[b.idx(q.Row, q.Col)] = true
		}
	}
}

func (b *board) isBlocked(q grid.Pos) bool {
	return b.blocked != nil && b.blocked[b.idx(q.Row, q.Col)]
}

// connectableWithout reports whether the rooms still form one component
// when every passage already blocked, plus those in around other than keep,
// stays closed. A neighbor that is open already must be the one kept.
func (b *board) connectableWithout(around []grid.Pos, keep grid.Pos) bool {
	skip := func(q grid.Pos) bool {
		if b.isBlocked(q) {
			return true
		}
		for _, o := range around {
			if o == q && o != keep {
				return true
			}
		}
		return false
	}
	for _, o := range around {
		if o != keep && !b.pending[b.idx(o.Row, o.Col)] {
			return false
		}
	}
	uf := unionfind.New(b.roomCount())
	for r := 0; r < b.rows; r += 2 {
		for c := 0; c < b.cols; c += 2 {
			here := grid.Pos{Row: r, Col: c}
			if c+2 < b.cols && !skip(here.Add(0, 1)) {
				uf.Union(b.roomIndex(here), b.roomIndex(here.Add(0, 2)))
			}
			if r+2 < b.rows && !skip(here.Add(1, 0)) {
				uf.Union(b.roomIndex(here), b.roomIndex(here.Add(2, 0)))
			}
		}
	}
	return uf.Sets() == 1
}

// across returns the rooms on either side of the between-cell p, or false
// when one of them falls off the board.
func (b *board) across(p grid.Pos) (a, z grid.Pos, ok bool) {
	if p.Row%2 == 1 {
		a, z = p.Add(-1, 0), p.Add(1, 0)
	} else {
		a, z = p.Add(0, -1), p.Add(0, 1)
	}
	ok = b.inBounds(a.Row, a.Col) && b.inBounds(z.Row, z.Col)
	return a, z, ok
}

// carve opens the pending wall at (r,c), emitting at most once.
func (b *board) carve(r, c int) {
	if !b.inBounds(r, c) {
		return
	}
	i := b.idx(r, c)
	if !b.pending[i] {
		return
	}
	b.pending[i] = false
	b.emitCarve(r, c)
}

// link opens the passage between neighboring rooms a and z unless they are
// already joined, and reports whether it did. Every spanning-tree generator
// carves through link, so passages fixed in advance by an endpoint never
// close a cycle.
func (b *board) link(a, z grid.Pos) bool {
	mid := grid.Pos{Row: (a.Row + z.Row) / 2, Col: (a.Col + z.Col) / 2}
	if b.isBlocked(mid) {
		return false
	}
	if !b.links.Union(b.roomIndex(a), b.roomIndex(z)) {
		return false
	}
	b.carve(mid.Row, mid.Col)
	return true
}

// mend links any rooms the generator left apart because a blocked passage
// cut its route, sweeping room pairs in row-major order.
func (b *board) mend() {
	if b.stopped || b.links.Sets() == 1 {
		return
	}
	for r := 0; r < b.rows; r += 2 {
		for c := 0; c < b.cols; c += 2 {
			here := grid.Pos{Row: r, Col: c}
			if c+2 < b.cols {
				b.link(here, here.Add(0, 2))
			}
			if r+2 < b.rows {
				b.link(here, here.Add(2, 0))
			}
		}
	}
}

// flush mends the tree and emits every remaining pending wall in row-major
// order.
func (b *board) flush() {
	b.mend()
	for i, w := range b.pending {
		if b.stopped {
			return
		}
		if w {
			b.emitWall(i/b.cols, i%b.cols)
		}
	}
}

// cellSteps are the offsets to adjacent cells: east, south, west, north.
var cellSteps = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// roomSteps are the offsets to neighboring rooms: east, south, west, north.
var roomSteps = [4][2]int{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

// rooms appends the in-bounds room neighbors of p to dst.
func (b *board) rooms(dst []grid.Pos, p grid.Pos) []grid.Pos {
	for _, d := range roomSteps {
		q := p.Add(d[0], d[1])
		if b.inBounds(q.Row, q.Col) {
			dst = append(dst, q)
		}
	}
	return dst
}

// randomRoom picks a uniformly random room cell.
func (b *board) randomRoom() grid.Pos {
	return grid.Pos{Row: randomEven(b.rows, b.rng), Col: randomEven(b.cols, b.rng)}
}

// roomIndex maps a room to a dense index over the rooms only.
func (b *board) roomIndex(p grid.Pos) int {
	return (p.Row/2)*((b.cols+1)/2) + p.Col/2
}

// roomCount returns the number of room cells.
func (b *board) roomCount() int {
	return ((b.rows + 1) / 2) * ((b.cols + 1) / 2)
}
