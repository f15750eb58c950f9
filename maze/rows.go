package maze

import "github.com/katalvlaran/gridlab/grid"

// eller builds the maze one room row at a time. Set membership lives in the
// board's union-find over all rooms, so the last row can close every
// remaining gap between distinct sets.
func eller(b *board) {
	b.fillOdd()

	var roots []int
	members := make(map[int][]int)
	for r := 0; r < b.rows && !b.stopped; r += 2 {
		last := r+2 >= b.rows

		for c := 0; c+2 < b.cols; c += 2 {
			a := grid.Pos{Row: r, Col: c}
			z := grid.Pos{Row: r, Col: c + 2}
			if b.links.Connected(b.roomIndex(a), b.roomIndex(z)) {
				continue
			}
			if last || b.rng.Intn(2) == 0 {
				b.link(a, z)
			}
		}
		if last {
			break
		}

		// Every set in this row needs at least one passage down.
		roots = roots[:0]
		clear(members)
		for c := 0; c < b.cols; c += 2 {
			root := b.links.Find(b.roomIndex(grid.Pos{Row: r, Col: c}))
			if _, ok := members[root]; !ok {
				roots = append(roots, root)
			}
			members[root] = append(members[root], c)
		}
		for _, root := range roots {
			cols := members[root]
			down := false
			for _, c := range cols {
				if b.rng.Intn(2) == 0 {
					b.descend(r, c)
					down = true
				}
			}
			if !down {
				b.descend(r, pick(cols, b.rng))
			}
		}
	}
	b.flush()
}

// descend joins room (r,c) with the room directly below it. The rooms may
// already be joined through an endpoint passage, which is just as good.
func (b *board) descend(r, c int) {
	b.link(grid.Pos{Row: r, Col: c}, grid.Pos{Row: r + 2, Col: c})
}

// sidewinder carves runs eastward along each room row and closes each run
// with one passage north from a random member. The top row is a single run.
func sidewinder(b *board) {
	b.fillOdd()
	for r := 0; r < b.rows && !b.stopped; r += 2 {
		run := 0
		for c := 0; c < b.cols; c += 2 {
			here := grid.Pos{Row: r, Col: c}
			eastern := c+2 >= b.cols
			if r == 0 {
				if !eastern {
					b.link(here, here.Add(0, 2))
				}
				continue
			}
			if eastern || b.rng.Intn(2) == 0 {
				k := run + 2*b.rng.Intn((c-run)/2+1)
				b.link(grid.Pos{Row: r, Col: k}, grid.Pos{Row: r - 2, Col: k})
				run = c + 2
				continue
			}
			b.link(here, here.Add(0, 2))
		}
	}
	b.flush()
}

// binaryTree links every room either north or east, whichever exists,
// choosing at random when both do.
func binaryTree(b *board) {
	b.fillOdd()
	for r := 0; r < b.rows && !b.stopped; r += 2 {
		for c := 0; c < b.cols; c += 2 {
			here := grid.Pos{Row: r, Col: c}
			north := r > 0
			east := c+2 < b.cols
			switch {
			case north && east:
				if b.rng.Intn(2) == 0 {
					b.link(here, here.Add(-2, 0))
				} else {
					b.link(here, here.Add(0, 2))
				}
			case north:
				b.link(here, here.Add(-2, 0))
			case east:
				b.link(here, here.Add(0, 2))
			}
		}
	}
	b.flush()
}
