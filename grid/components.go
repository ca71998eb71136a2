package grid

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/geom"
)

// Components finds the 4-connected regions of cells for which keep returns
// true. Regions are listed in row-major order of their first cell, and each
// region lists its cells in BFS order from that cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited set and output.
func (g *Grid[P, T]) Components(keep func(T) bool) [][]geom.Point[P] {
	seen := mapset.New[int]()
	var comps [][]geom.Point[P]

	for i, v := range g.cells {
		if seen.Has(i) || !keep(v) {
			continue
		}
		seen.Put(i)
		queue := []int{i}
		var comp []geom.Point[P]

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			up := g.point(u%g.width, u/g.width)
			comp = append(comp, up)
			for _, np := range g.Neighbors(up, 1) {
				j, _ := g.pointIndex(np)
				if seen.Has(j) || !keep(g.cells[j]) {
					continue
				}
				seen.Put(j)
				queue = append(queue, j)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
