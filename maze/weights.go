package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridlab/grid"
)

// WeightValues lists every weight RandomWeight can return.
var WeightValues = []int{2, 3, 4, 5, 15}

// RandomWeight draws from the weighted-maze distribution:
// 40% → 2 or 3, 30% → 4 or 5, 30% → 15.
func RandomWeight(r *rand.Rand) int {
	x := r.Float64()
	switch {
	case x < 0.4:
		return 2 + r.Intn(2)
	case x < 0.7:
		return 4 + r.Intn(2)
	default:
		return 15
	}
}

func (b *board) emitWeight(r, c, w int) {
	b.emit(Instruction{Kind: Weight, Pos: grid.Pos{Row: r, Col: c}, Weight: w})
}
