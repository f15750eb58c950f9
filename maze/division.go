package maze

// orientation is the direction of the next dividing line.
type orientation uint8

const (
	horizontal orientation = iota
	vertical
)

// byAspect splits a taller-than-wide chamber with a horizontal line.
func byAspect(taller bool) orientation {
	if taller {
		return horizontal
	}
	return vertical
}

// splitRule chooses the orientation for one half of a split chamber. second
// is false for the top/left half and true for the bottom/right half; taller
// reports whether that half is taller than it is wide.
type splitRule func(split orientation, second, taller bool) orientation

// plainRule follows the aspect ratio everywhere.
func plainRule(_ orientation, _ bool, taller bool) orientation {
	return byAspect(taller)
}

// verticalSkewRule forces vertical lines below horizontal splits and left of
// vertical splits.
func verticalSkewRule(split orientation, second, taller bool) orientation {
	if split == horizontal && second || split == vertical && !second {
		return vertical
	}
	return byAspect(taller)
}

// horizontalSkewRule forces horizontal lines in every top/left half.
func horizontalSkewRule(_ orientation, second, taller bool) orientation {
	if !second {
		return horizontal
	}
	return byAspect(taller)
}

// divider runs recursive division. draw places one line cell; walls and
// weights differ only there.
type divider struct {
	b       *board
	initial orientation
	rule    splitRule
	draw    func(r, c int)
}

// run raises the border and divides the interior [2, rows-3]×[2, cols-3].
// Grids too small to have an interior produce nothing.
func (d *divider) run() {
	d.divide(2, d.b.rows-3, 2, d.b.cols-3, d.initial, true)
}

func (d *divider) border() {
	rows, cols := d.b.rows, d.b.cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				d.draw(r, c)
			}
		}
	}
}

// divide splits the chamber rows [r0,r1] × cols [c0,c1]. Lines sit on even
// offsets from the chamber origin and the single gap on an odd one, so a
// gap never lands on a later line.
func (d *divider) divide(r0, r1, c0, c1 int, o orientation, first bool) {
	if d.b.stopped || r1 < r0 || c1 < c0 {
		return
	}
	if first {
		d.border()
	}
	rng := d.b.rng

	if o == horizontal {
		line := r0 + 2*rng.Intn((r1-r0)/2+1)
		gap := c0 - 1 + 2*rng.Intn((c1-c0+2)/2+1)
		for c := c0 - 1; c <= c1+1; c++ {
			if c != gap {
				d.draw(line, c)
			}
		}
		d.divide(r0, line-2, c0, c1, d.rule(horizontal, false, line-2-r0 > c1-c0), false)
		d.divide(line+2, r1, c0, c1, d.rule(horizontal, true, r1-(line+2) > c1-c0), false)
		return
	}

	line := c0 + 2*rng.Intn((c1-c0)/2+1)
	gap := r0 - 1 + 2*rng.Intn((r1-r0+2)/2+1)
	for r := r0 - 1; r <= r1+1; r++ {
		if r != gap {
			d.draw(r, line)
		}
	}
	d.divide(r0, r1, c0, line-2, d.rule(vertical, false, r1-r0 > line-2-c0), false)
	d.divide(r0, r1, line+2, c1, d.rule(vertical, true, r1-r0 > c1-(line+2)), false)
}

// newWallDivider draws wall lines under rule.
func newWallDivider(b *board, initial orientation, rule splitRule) *divider {
	return &divider{b: b, initial: initial, rule: rule, draw: b.mark}
}

// newWeightDivider draws weighted lines with the plain rule.
func newWeightDivider(b *board) *divider {
	return &divider{
		b:       b,
		initial: horizontal,
		rule:    plainRule,
		draw: func(r, c int) {
			if b.markOnce(r, c) {
				b.emitWeight(r, c, RandomWeight(b.rng))
			}
		},
	}
}

// basicRandom walls each non-endpoint cell independently with probability p.
func basicRandom(b *board, p float64) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.stopped {
				return
			}
			if b.protected(r, c) {
				continue
			}
			if b.rng.Float64() < p {
				b.emitWall(r, c)
			}
		}
	}
}
