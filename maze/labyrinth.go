package maze

import "github.com/katalvlaran/gridlab/grid"

// labyrinth draws concentric rectangular rings on odd rows and columns,
// drops a few blocking cells on each even stage and then opens gaps in the
// ring just inside. A final pass opens further gaps until every open cell,
// the center included, is reachable from the outer corridor.
func labyrinth(b *board) {
	rows, cols := b.rows, b.cols

	for row := 1; 2*row < rows; row += 2 {
		for col := row; col < cols-row; col++ {
			b.mark(row, col)
			b.mark(rows-row-1, col)
		}
	}
	for col := 1; 2*col < cols; col += 2 {
		for row := col; row < rows-col-1; row++ {
			b.mark(row, col)
			b.mark(row, cols-col-1)
		}
	}

	for stage := 0; 2*stage < min(rows, cols)-4 && !b.stopped; stage += 2 {
		var left, right, top, bottom int

		if rows-2*stage > 5 {
			topCol := b.randomOdd(stage+2, cols-stage-3)
			bottomCol := b.randomOdd(stage+2, cols-stage-3)
			if topCol > 0 {
				b.mark(stage, topCol)
			}
			if bottomCol > 0 {
				b.mark(rows-stage-1, bottomCol)
			}
			left, right = topCol, bottomCol
		}
		if cols-2*stage > 5 {
			leftRow := b.randomOdd(stage+2, rows-stage-3)
			rightRow := b.randomOdd(stage+2, rows-stage-3)
			if leftRow > 0 {
				b.mark(leftRow, stage)
			}
			if rightRow > 0 {
				b.mark(rightRow, cols-stage-1)
			}
			top, bottom = leftRow, rightRow
		}
		if rows-2*stage <= 5 && cols-2*stage <= 5 {
			continue
		}

		quads := b.ringGaps(stage, left, right, top, bottom)
		if top == 0 || right == 0 {
			var all []grid.Pos
			for _, q := range quads {
				all = append(all, q...)
			}
			if len(all) >= 2 {
				i := b.rng.Intn(len(all))
				j := b.rng.Intn(len(all))
				for j == i {
					j = b.rng.Intn(len(all))
				}
				b.unmark(all[i].Row, all[i].Col)
				b.unmark(all[j].Row, all[j].Col)
			}
			continue
		}
		for _, q := range quads {
			if len(q) > 0 {
				p := pick(q, b.rng)
				b.unmark(p.Row, p.Col)
			}
		}
	}

	center := rows / 2
	if rows == cols && center%2 == 0 && !b.stopped {
		loop := [4]grid.Pos{
			{Row: center, Col: center - 1},
			{Row: center, Col: center + 1},
			{Row: center - 1, Col: center},
			{Row: center + 1, Col: center},
		}
		p := loop[b.rng.Intn(len(loop))]
		b.unmark(p.Row, p.Col)
	}
	b.connect()
}

// connect floods the open cells from the first one in row-major order and,
// while some open cell is still out of reach, carves a random wall that
// borders both the flooded region and an unreached open cell.
func (b *board) connect() {
	if b.stopped || b.marked == nil {
		return
	}
	n := b.rows * b.cols
	open := func(i int) bool { return !b.marked[i] }
	root := -1
	for i := 0; i < n; i++ {
		if open(i) {
			root = i
			break
		}
	}
	if root < 0 {
		return
	}

	reached := make([]bool, n)
	listed := make([]bool, n)
	var queue, walls []int
	var around []grid.Pos
	flood := func(from int) {
		reached[from] = true
		queue = append(queue[:0], from)
		for len(queue) > 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			around = b.cells(around[:0], cur)
			for _, q := range around {
				j := b.idx(q.Row, q.Col)
				switch {
				case reached[j]:
				case open(j):
					reached[j] = true
					queue = append(queue, j)
				case !listed[j]:
					listed[j] = true
					walls = append(walls, j)
				}
			}
		}
	}
	// bridges reports whether wall i touches an open cell not yet reached.
	bridges := func(i int) bool {
		around = b.cells(around[:0], i)
		for _, q := range around {
			j := b.idx(q.Row, q.Col)
			if open(j) && !reached[j] {
				return true
			}
		}
		return false
	}

	flood(root)
	for len(walls) > 0 && !b.stopped {
		k := b.rng.Intn(len(walls))
		w := walls[k]
		walls[k] = walls[len(walls)-1]
		walls = walls[:len(walls)-1]
		if !bridges(w) {
			continue
		}
		b.unmark(w/b.cols, w%b.cols)
		flood(w)
	}
}

// cells appends the in-bounds neighbors of cell index i to dst.
func (b *board) cells(dst []grid.Pos, i int) []grid.Pos {
	p := grid.Pos{Row: i / b.cols, Col: i % b.cols}
	for _, d := range cellSteps {
		q := p.Add(d[0], d[1])
		if b.inBounds(q.Row, q.Col) {
			dst = append(dst, q)
		}
	}
	return dst
}

// ringGaps lists the candidate gap cells on the ring inside stage, split
// into the top-right, right-bottom, bottom-left and left-top quadrants
// around the blocking cells.
func (b *board) ringGaps(stage, left, right, top, bottom int) [4][]grid.Pos {
	rows, cols := b.rows, b.cols
	var q [4][]grid.Pos
	at := func(k, r, c int) { q[k] = append(q[k], grid.Pos{Row: r, Col: c}) }

	if top > 0 {
		for i := top + 1; i < cols-stage-1; i += 2 {
			at(0, stage+1, i)
		}
	}
	if right > 0 {
		for i := stage + 2; i < right; i += 2 {
			at(0, i, cols-stage-2)
		}
		for i := right + 1; i < rows-stage-1; i += 2 {
			at(1, i, cols-stage-2)
		}
	}
	if bottom > 0 {
		for i := cols - stage - 3; i > bottom; i -= 2 {
			at(1, rows-stage-2, i)
		}
		for i := bottom - 1; i > stage; i -= 2 {
			at(2, rows-stage-2, i)
		}
	}
	if left > 0 {
		for i := rows - stage - 3; i > left; i -= 2 {
			at(2, i, stage+1)
		}
		for i := left - 1; i > stage+1; i -= 2 {
			at(3, i, stage+1)
		}
	}
	if top > 0 {
		for i := stage + 2; i < top; i += 2 {
			at(3, stage+1, i)
		}
	}
	return q
}

// randomOdd returns lo plus a random even offset no larger than hi-lo, or 0
// when the range is empty.
func (b *board) randomOdd(lo, hi int) int {
	span := hi - lo
	if span <= 0 {
		return 0
	}
	return lo + 2*b.rng.Intn(span/2+1)
}
