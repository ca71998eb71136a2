package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/parse"
)

// ExampleShortestPath finds the least total risk from the top-left to the
// bottom-right of a digit map, where entering a cell costs its digit.
func ExampleShortestPath() {
	g, err := grid.Parse[int]("116\n138\n213", grid.Undelimited(), parse.Int[int])
	if err != nil {
		fmt.Println(err)
		return
	}
	next := dijkstra.GridNeighbors(g, func(_, _ geom.Point[int], v int) (int64, bool) {
		return int64(v), true
	})
	exit := g.Bounds()

	cost, path, err := dijkstra.ShortestPath(geom.Origin[int](),
		func(p geom.Point[int]) bool { return p == exit }, next)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cost, path)

	// Output:
	// 7 [0,0 0,1 0,2 1,2 2,2]
}
