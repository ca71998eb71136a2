package geom_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
)

// ExamplePoint_ManhattanDistance sums the pairwise distances between
// three galaxies on a star map.
func ExamplePoint_ManhattanDistance() {
	galaxies := []geom.Point[uint]{geom.New[uint](3, 0), geom.New[uint](7, 1), geom.New[uint](0, 2)}
	var total uint
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			total += a.ManhattanDistance(b)
		}
	}
	fmt.Println(total)

	// Output:
	// 18
}

// ExampleParse reads a coordinate and steps it around.
func ExampleParse() {
	p, err := geom.Parse[int]("4,2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Step(geom.North), p.Add(geom.New(1, 1)), p.Sub(geom.New(10, 0)))

	// Output:
	// 4,1 5,3 -6,2
}
