package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// runner encapsulates state shared by every algorithm: the grid, options,
// the visit log and a scratch neighbor buffer.
type runner struct {
	g          *grid.Grid
	opts       Options
	ctx        context.Context
	start, end int
	endPos     grid.Pos
	startPos   grid.Pos
	recorded   []bool // cell already appended to Visited
	nbuf       []int
	res        *Result
}

func newRunner(g *grid.Grid, o Options) *runner {
	s, _ := g.Start()
	e, _ := g.End()
	return &runner{
		g:        g,
		opts:     o,
		ctx:      o.Ctx,
		start:    g.Index(s.Pos),
		end:      g.Index(e.Pos),
		startPos: s.Pos,
		endPos:   e.Pos,
		recorded: make([]bool, g.Len()),
		nbuf:     make([]int, 0, 4),
		res:      &Result{Visited: make([]grid.Cell, 0, g.Len()/4+1), Path: []grid.Cell{}},
	}
}

// tick returns the context error, if any. Called once per expansion.
func (r *runner) tick() error {
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
		return nil
	}
}

// visit appends cell to Visited once and runs the OnVisit hook.
func (r *runner) visit(cell int) error {
	if r.recorded[cell] {
		return nil
	}
	if r.opts.MaxExpansions > 0 && len(r.res.Visited) >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: %d cells", ErrExpansionLimit, r.opts.MaxExpansions)
	}
	return r.record(cell)
}

// record is visit without the expansion limit.
func (r *runner) record(cell int) error {
	if r.recorded[cell] {
		return nil
	}
	r.recorded[cell] = true
	c := r.g.CellAt(cell)
	r.res.Visited = append(r.res.Visited, c)
	if err := r.opts.OnVisit(c); err != nil {
		return fmt.Errorf("search: OnVisit error at %s: %w", c.Key(), err)
	}
	return nil
}

// neighbors returns the passable neighbors of cell in east, south, west,
// north order. The slice is reused by the next call.
func (r *runner) neighbors(cell int) []int {
	r.nbuf = r.g.AppendNeighborIndexes(r.nbuf[:0], cell)
	return r.nbuf
}

func (r *runner) weight(cell int) int { return r.g.CellAt(cell).Weight }

func (r *runner) pos(cell int) grid.Pos { return r.g.PosOf(cell) }

// newParents returns a predecessor array with every entry unset.
func newParents(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}
	return p
}

// chain walks parent links from to back to from and returns the cells in
// from→to order. It returns nil when the walk does not end at from or loops.
func chain(parent []int, from, to int) []int {
	out := make([]int, 0, 16)
	cur := to
	for steps := 0; cur >= 0; steps++ {
		if steps > len(parent) {
			return nil
		}
		out = append(out, cur)
		if cur == from {
			break
		}
		cur = parent[cur]
	}
	if len(out) == 0 || out[len(out)-1] != from {
		return nil
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// setPath converts cell indexes into Result.Path.
func (r *runner) setPath(cells []int) {
	if len(cells) == 0 {
		r.res.Path = []grid.Cell{}
		return
	}
	r.res.Path = make([]grid.Cell, len(cells))
	for i, c := range cells {
		r.res.Path[i] = r.g.CellAt(c)
	}
}
