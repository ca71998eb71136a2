package grid

import (
	"github.com/katalvlaran/gridkit/geom"
)

// Neighbors returns every cell reachable from `from` by walking 1..maxRadius
// steps in a single cardinal direction. Diagonals are excluded and so is
// `from` itself. Rays are swept North, West, South, East, nearest cell first;
// each ray stops at the grid edge. Returns nil if `from` is outside the grid
// or maxRadius < 1.
func (g *Grid[P, T]) Neighbors(from geom.Point[P], maxRadius int) []geom.Point[P] {
	if maxRadius < 1 || !g.InBounds(from) {
		return nil
	}

	out := make([]geom.Point[P], 0, 4*maxRadius)
	for _, d := range geom.Directions() {
		p := from
		for r := 1; r <= maxRadius; r++ {
			next, ok := p.CheckedStep(d)
			if !ok || !g.InBounds(next) {
				break
			}
			out = append(out, next)
			p = next
		}
	}

	return out
}
