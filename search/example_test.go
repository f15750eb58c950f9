package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/search"
)

// ExampleSearch routes Dijkstra around a column of heavy cells.
func ExampleSearch() {
	g, _ := grid.New(3, 3, grid.WithStart(grid.Pos{Row: 0, Col: 0}), grid.WithEnd(grid.Pos{Row: 2, Col: 2}))
	g.SetWeight(0, 1, 9)
	g.SetWeight(1, 1, 9)

	res, err := search.Search(g, search.Dijkstra)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	keys := make([]string, len(res.Path))
	for i, c := range res.Path {
		keys[i] = c.Key()
	}
	fmt.Println(strings.Join(keys, " -> "))
	fmt.Println("cost:", res.Cost(), "visited:", len(res.Visited))
	// Output:
	// 0,0 -> 1,0 -> 2,0 -> 2,1 -> 2,2
	// cost: 4 visited: 5
}

// ExampleSearch_unreachable shows that a walled-off end is not an error.
func ExampleSearch_unreachable() {
	g, _ := grid.New(3, 3, grid.WithStart(grid.Pos{Row: 0, Col: 0}), grid.WithEnd(grid.Pos{Row: 2, Col: 2}))
	g.SetKind(1, 2, grid.Wall)
	g.SetKind(2, 1, grid.Wall)

	res, err := search.Search(g, search.AStar)
	fmt.Println(err, res.Found(), len(res.Visited))
	// Output:
	// <nil> false 6
}
