package search

// blend weighs the accumulated cost g against the heuristic h:
// score = G*g + H*h.
type blend struct {
	G, H float64
}

var (
	dijkstraBlend   = blend{G: 1, H: 0}
	greedyBlend     = blend{G: 0, H: 1}
	aStarBlend      = blend{G: 1, H: 1}
	swarmBlend      = blend{G: 0.6, H: 0.4}
	convergentBlend = blend{G: 0.3, H: 0.7}
)

func (b blend) score(g, h float64) float64 { return b.G*g + b.H*h }

// bestFirst runs the shared cost-ranked loop. A queued cell is re-parented
// only when the new score is strictly lower. With a fixed h per cell that is
// strict g relaxation for Dijkstra and A*; for Greedy the score never drops,
// so the parent set at first discovery is kept.
//
// Complexity: O(V log V) time, O(V) memory.
func (r *runner) bestFirst(b blend) error {
	n := r.g.Len()
	closed := make([]bool, n)
	parent := newParents(n)
	g := make([]float64, n)
	open := newFrontier(n)
	h := r.opts.Heuristic

	open.add(r.start, b.score(0, h.Distance(r.startPos, r.endPos)))
	for open.Len() > 0 {
		if err := r.tick(); err != nil {
			return err
		}
		cur := open.take()
		closed[cur] = true
		if err := r.visit(cur); err != nil {
			return err
		}
		if cur == r.end {
			r.setPath(chain(parent, r.start, r.end))
			return nil
		}
		for _, nb := range r.neighbors(cur) {
			if closed[nb] {
				continue
			}
			tg := g[cur] + float64(r.weight(nb))
			s := b.score(tg, h.Distance(r.pos(nb), r.endPos))
			switch {
			case !open.contains(nb):
				g[nb] = tg
				parent[nb] = cur
				open.add(nb, s)
			case s < open.score(nb):
				g[nb] = tg
				parent[nb] = cur
				open.lower(nb, s)
			}
		}
	}
	return nil
}
