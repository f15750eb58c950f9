package search

import "github.com/katalvlaran/gridlab/grid"

// side is one half of a bidirectional search.
type side struct {
	seen   []bool // discovered (BFS) or closed (swarm)
	parent []int
}

func newSide(n int) *side {
	return &side{seen: make([]bool, n), parent: newParents(n)}
}

// bidirectional runs breadth-first layers from start and end in turn. A
// cell discovered by one side that the other side has already discovered
// is the meeting cell. Until then the two discovered sets are disjoint, so
// the first meeting lies on a shortest path and the result has the same
// length as bfs.
func (r *runner) bidirectional() error {
	n := r.g.Len()
	fwd, bwd := newSide(n), newSide(n)
	fwd.seen[r.start], bwd.seen[r.end] = true, true
	fq, bq := []int{r.start}, []int{r.end}

	meet := -1
	var err error
	for len(fq) > 0 && len(bq) > 0 {
		if fq, meet, err = r.layer(fwd, bwd, fq); err != nil || meet >= 0 {
			break
		}
		if bq, meet, err = r.layer(bwd, fwd, bq); err != nil || meet >= 0 {
			break
		}
	}
	if err != nil {
		return err
	}
	if meet < 0 {
		return nil
	}
	return r.stitch(fwd, bwd, meet)
}

// layer expands every cell of queue on behalf of own and returns the next
// layer, or the meeting cell when a neighbor is already known to other.
func (r *runner) layer(own, other *side, queue []int) ([]int, int, error) {
	next := make([]int, 0, len(queue)*2)
	for _, cur := range queue {
		if err := r.tick(); err != nil {
			return nil, -1, err
		}
		if err := r.visit(cur); err != nil {
			return nil, -1, err
		}
		for _, nb := range r.neighbors(cur) {
			if own.seen[nb] {
				continue
			}
			own.seen[nb] = true
			own.parent[nb] = cur
			if other.seen[nb] {
				return next, nb, nil
			}
			next = append(next, nb)
		}
	}
	return next, -1, nil
}

// stitch joins start→meet and meet→end, appending the meeting cell to
// Visited if neither side expanded it yet. The path is already found at
// that point, so the meeting cell does not count against MaxExpansions.
func (r *runner) stitch(fwd, bwd *side, meet int) error {
	head := chain(fwd.parent, r.start, meet)
	tail := chain(bwd.parent, r.end, meet)
	if head == nil || tail == nil {
		r.setPath(nil)
		return nil
	}
	path := make([]int, 0, len(head)+len(tail)-1)
	path = append(path, head...)
	for i := len(tail) - 2; i >= 0; i-- {
		path = append(path, tail[i])
	}
	r.setPath(path)
	return r.record(meet)
}

// bidirectionalSwarm runs two swarm searches, forward ranked toward end and
// backward ranked toward start, popping one cell per side in turn. The
// meeting cell is the first popped cell already closed by the other side,
// so it is common to both closed sets.
//
// The backward side walks edges in reverse: moving from cur to nb there
// stands for the forward move nb→cur, which costs the weight of cur.
func (r *runner) bidirectionalSwarm() error {
	n := r.g.Len()
	h := r.opts.Heuristic
	fwd, bwd := newSide(n), newSide(n)
	fg, bg := make([]float64, n), make([]float64, n)
	fo, bo := newFrontier(n), newFrontier(n)
	fo.add(r.start, swarmBlend.score(0, h.Distance(r.startPos, r.endPos)))
	bo.add(r.end, swarmBlend.score(0, h.Distance(r.endPos, r.startPos)))

	for fo.Len() > 0 && bo.Len() > 0 {
		meet, err := r.swarmStep(fwd, bwd, fo, fg, r.endPos, false)
		if err != nil {
			return err
		}
		if meet >= 0 {
			return r.stitch(fwd, bwd, meet)
		}
		meet, err = r.swarmStep(bwd, fwd, bo, bg, r.startPos, true)
		if err != nil {
			return err
		}
		if meet >= 0 {
			return r.stitch(fwd, bwd, meet)
		}
	}
	return nil
}

// swarmStep pops one cell for own. It returns the cell if other has already
// closed it, otherwise closes and expands it and returns -1.
func (r *runner) swarmStep(own, other *side, open *frontier, g []float64, target grid.Pos, reverse bool) (int, error) {
	if err := r.tick(); err != nil {
		return -1, err
	}
	cur := open.take()
	if other.seen[cur] {
		return cur, nil
	}
	own.seen[cur] = true
	if err := r.visit(cur); err != nil {
		return -1, err
	}
	h := r.opts.Heuristic
	for _, nb := range r.neighbors(cur) {
		if own.seen[nb] {
			continue
		}
		step := r.weight(nb)
		if reverse {
			step = r.weight(cur)
		}
		tg := g[cur] + float64(step)
		s := swarmBlend.score(tg, h.Distance(r.pos(nb), target))
		switch {
		case !open.contains(nb):
			g[nb] = tg
			own.parent[nb] = cur
			open.add(nb, s)
		case s < open.score(nb):
			g[nb] = tg
			own.parent[nb] = cur
			open.lower(nb, s)
		}
	}
	return -1, nil
}
