package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// Each calls fn for every cell in row-major order.
func (g *Grid[P, T]) Each(fn func(p geom.Point[P], v T)) {
	for i, v := range g.cells {
		fn(g.point(i%g.width, i/g.width), v)
	}
}

// Find returns the first cell, in row-major order, matching pred.
func (g *Grid[P, T]) Find(pred func(T) bool) (geom.Point[P], bool) {
	for i, v := range g.cells {
		if pred(v) {
			return g.point(i%g.width, i/g.width), true
		}
	}
	return geom.Point[P]{}, false
}

// Count returns how many cells match pred.
func (g *Grid[P, T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Row returns a copy of row y.
func (g *Grid[P, T]) Row(y int) ([]T, error) {
	start, err := g.index(0, y)
	if err != nil {
		return nil, err
	}
	row := make([]T, g.width)
	copy(row, g.cells[start:start+g.width])
	return row, nil
}

// Column returns a copy of column x, top to bottom.
func (g *Grid[P, T]) Column(x int) ([]T, error) {
	if _, err := g.index(x, 0); err != nil {
		return nil, err
	}
	col := make([]T, g.height)
	for y := range col {
		col[y] = g.cells[y*g.width+x]
	}
	return col, nil
}

// Clone deep-copies the cells. The cursor and heading are copied too.
func (g *Grid[P, T]) Clone() *Grid[P, T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	c := *g
	c.cells = cells
	return &c
}

// Render draws the grid one row per line using cell to format each value.
// A nil cell falls back to fmt's %v.
func (g *Grid[P, T]) Render(cell func(T) string) string {
	if cell == nil {
		cell = func(v T) string { return fmt.Sprint(v) }
	}
	var b strings.Builder
	for i, v := range g.cells {
		if i > 0 && i%g.width == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cell(v))
	}
	return b.String()
}
