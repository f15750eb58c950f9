package grid

import (
	"fmt"
	"math/rand"
)

// AddRandomWeights gives each Empty cell, with probability p, a weight drawn
// uniformly from [lo, hi]. It returns the number of cells changed.
// A nil rng uses a fixed seed so results are reproducible.
// Complexity: O(rows×cols).
func (g *Grid) AddRandomWeights(rng *rand.Rand, p float64, lo, hi int) (int, error) {
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("grid: weight probability %v outside [0,1]", p)
	}
	if lo < 1 || hi < lo {
		return 0, fmt.Errorf("grid: invalid weight range [%d,%d]", lo, hi)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind != Empty {
			continue
		}
		if rng.Float64() < p {
			g.cells[i].Weight = lo + rng.Intn(hi-lo+1)
			n++
		}
	}
	return n, nil
}

// ClearWeights sets every cell's weight back to 1.
func (g *Grid) ClearWeights() {
	for i := range g.cells {
		g.cells[i].Weight = 1
	}
}

// TotalWeight sums the weights of all Empty cells.
func (g *Grid) TotalWeight() int {
	sum := 0
	for _, c := range g.cells {
		if c.Kind == Empty {
			sum += c.Weight
		}
	}
	return sum
}
