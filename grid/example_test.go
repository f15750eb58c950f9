package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// ExampleNew shows the default endpoint placement on a small board.
func ExampleNew() {
	g, err := grid.New(3, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.SetKind(0, 2, grid.Wall)
	g.SetWeight(1, 0, 4)
	fmt.Println(g)
	// Output:
	// ..#..
	// 4..E.
	// ....S
}

// ExampleGrid_Neighbors lists passable neighbors in east, south, west, north order.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3, 3, grid.WithStart(grid.Pos{Row: 0, Col: 0}), grid.WithEnd(grid.Pos{Row: 2, Col: 2}))
	g.SetKind(1, 2, grid.Wall)
	for _, c := range g.Neighbors(grid.Pos{Row: 1, Col: 1}) {
		fmt.Println(c.Key(), c.Kind)
	}
	// Output:
	// 2,1 empty
	// 1,0 empty
	// 0,1 empty
}
