// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous open regions of a maze grid.
// Scenario:
//
//   - Grid values: 0 = wall, 1 = open
//   - Orthogonal adjacency only
//   - Expect two regions, each listed in BFS order (W, E, N, S expansion)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	}
	gg, _ := gridgraph.From2D(grid)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ShortestPath
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ShortestPath routes around a single wall cell.
func ExampleGridGraph_ShortestPath() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})

	path, dist, _ := gg.ShortestPath(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 2, Y: 2})
	fmt.Println("edges:", dist)
	fmt.Println(path)
	// Output:
	// edges: 4
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
}
