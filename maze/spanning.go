package maze

import "github.com/katalvlaran/gridlab/grid"

// The generators in this file treat cells with both coordinates even as
// rooms and everything else as wall. Each one carves between-cells to build
// a spanning tree over the rooms, then flushes the walls it never carved.

// prim grows the tree from a random room, taking a uniformly random
// frontier entry each step.
func prim(b *board) {
	b.fillOdd()
	type edge struct{ to, from grid.Pos }

	visited := make([]bool, b.roomCount())
	seed := b.randomRoom()
	visited[b.roomIndex(seed)] = true

	var frontier []edge
	var buf []grid.Pos
	for _, q := range b.rooms(buf[:0], seed) {
		frontier = append(frontier, edge{to: q, from: seed})
	}
	for len(frontier) > 0 && !b.stopped {
		i := b.rng.Intn(len(frontier))
		e := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		k := b.roomIndex(e.to)
		if visited[k] {
			continue
		}
		visited[k] = true
		b.link(e.from, e.to)

		buf = b.rooms(buf[:0], e.to)
		for _, q := range buf {
			if !visited[b.roomIndex(q)] {
				frontier = append(frontier, edge{to: q, from: e.to})
			}
		}
	}
	b.flush()
}

// kruskal shuffles every pair of neighboring rooms and opens the wall
// between them when it joins two different components.
func kruskal(b *board) {
	b.fillOdd()
	type between struct{ a, z grid.Pos }

	var walls []between
	for r := 0; r < b.rows; r += 2 {
		for c := 0; c < b.cols; c += 2 {
			here := grid.Pos{Row: r, Col: c}
			if r+2 < b.rows {
				walls = append(walls, between{a: here, z: here.Add(2, 0)})
			}
			if c+2 < b.cols {
				walls = append(walls, between{a: here, z: here.Add(0, 2)})
			}
		}
	}
	shuffle(walls, b.rng)

	for _, w := range walls {
		if b.stopped {
			return
		}
		b.link(w.a, w.z)
	}
	b.flush()
}

// backtracking is a randomized depth-first walk with an explicit stack.
func backtracking(b *board) {
	b.fillOdd()
	visited := make([]bool, b.roomCount())
	seed := b.randomRoom()
	visited[b.roomIndex(seed)] = true
	stack := []grid.Pos{seed}

	var around, open []grid.Pos
	for len(stack) > 0 && !b.stopped {
		cur := stack[len(stack)-1]
		open = open[:0]
		around = b.rooms(around[:0], cur)
		for _, q := range around {
			if !visited[b.roomIndex(q)] {
				open = append(open, q)
			}
		}
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := pick(open, b.rng)
		visited[b.roomIndex(next)] = true
		stack = append(stack, next)
		b.link(cur, next)
	}
	b.flush()
}

// wilson adds loop-erased random walks to the tree until every room is in
// it, which yields a uniformly random spanning tree.
func wilson(b *board) {
	b.fillOdd()
	n := b.roomCount()
	inMaze := make([]bool, n)
	onPath := make([]int, n) // position in the current walk, or -1
	slot := make([]int, n)   // position in pending, or -1
	for i := range onPath {
		onPath[i] = -1
		slot[i] = -1
	}

	seed := b.randomRoom()
	inMaze[b.roomIndex(seed)] = true

	var pending []grid.Pos
	for r := 0; r < b.rows; r += 2 {
		for c := 0; c < b.cols; c += 2 {
			p := grid.Pos{Row: r, Col: c}
			if k := b.roomIndex(p); !inMaze[k] {
				slot[k] = len(pending)
				pending = append(pending, p)
			}
		}
	}
	remove := func(k int) {
		i := slot[k]
		if i < 0 {
			return
		}
		last := pending[len(pending)-1]
		pending[i] = last
		slot[b.roomIndex(last)] = i
		pending = pending[:len(pending)-1]
		slot[k] = -1
	}

	var around, walk []grid.Pos
	for len(pending) > 0 && !b.stopped {
		cur := pick(pending, b.rng)
		walk = append(walk[:0], cur)
		onPath[b.roomIndex(cur)] = 0

		for !inMaze[b.roomIndex(cur)] {
			around = b.rooms(around[:0], cur)
			if len(around) == 0 {
				break
			}
			next := pick(around, b.rng)
			if k := onPath[b.roomIndex(next)]; k >= 0 {
				for _, p := range walk[k+1:] {
					onPath[b.roomIndex(p)] = -1
				}
				walk = walk[:k+1]
			} else {
				onPath[b.roomIndex(next)] = len(walk)
				walk = append(walk, next)
			}
			cur = next
		}

		for i, p := range walk {
			k := b.roomIndex(p)
			inMaze[k] = true
			onPath[k] = -1
			remove(k)
			if i > 0 {
				b.link(walk[i-1], p)
			}
		}
	}
	b.flush()
}
