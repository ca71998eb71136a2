package dijkstra

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// GridNeighbors adapts a grid to Neighbors over its points. Each orthogonal
// in-bounds neighbour `to` of `from` becomes an edge when cost returns ok;
// the cell value passed to cost is the value at `to`. Return ok=false to
// mark a cell as a wall.
func GridNeighbors[P constraints.Integer, T any](
	g *grid.Grid[P, T],
	cost func(from, to geom.Point[P], v T) (int64, bool),
) Neighbors[geom.Point[P]] {
	return func(from geom.Point[P]) []Edge[geom.Point[P]] {
		near := g.Neighbors(from, 1)
		out := make([]Edge[geom.Point[P]], 0, len(near))
		for _, to := range near {
			v, err := g.Get(to)
			if err != nil {
				continue
			}
			if c, ok := cost(from, to, v); ok {
				out = append(out, Edge[geom.Point[P]]{To: to, Cost: c})
			}
		}
		return out
	}
}
