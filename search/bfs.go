package search

// bfs expands cells first-in first-out, marking them on enqueue. Weights are
// ignored, so the path has the fewest steps.
func (r *runner) bfs() error {
	n := r.g.Len()
	seen := make([]bool, n)
	parent := newParents(n)
	queue := make([]int, 0, n/4+1)

	seen[r.start] = true
	queue = append(queue, r.start)
	for head := 0; head < len(queue); head++ {
		if err := r.tick(); err != nil {
			return err
		}
		cur := queue[head]
		if err := r.visit(cur); err != nil {
			return err
		}
		if cur == r.end {
			r.setPath(chain(parent, r.start, r.end))
			return nil
		}
		for _, nb := range r.neighbors(cur) {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			parent[nb] = cur
			queue = append(queue, nb)
		}
	}
	return nil
}

// dfs expands cells last-in first-out, marking them on push. The most
// recently pushed neighbor (north, then west, south, east) is explored first.
func (r *runner) dfs() error {
	n := r.g.Len()
	seen := make([]bool, n)
	parent := newParents(n)
	stack := make([]int, 0, n/4+1)

	seen[r.start] = true
	stack = append(stack, r.start)
	for len(stack) > 0 {
		if err := r.tick(); err != nil {
			return err
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := r.visit(cur); err != nil {
			return err
		}
		if cur == r.end {
			r.setPath(chain(parent, r.start, r.end))
			return nil
		}
		for _, nb := range r.neighbors(cur) {
			if seen[nb] {
				continue
			}
			seen[nb] = true
			parent[nb] = cur
			stack = append(stack, nb)
		}
	}
	return nil
}
