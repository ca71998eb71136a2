package grid

import (
	"github.com/katalvlaran/gridkit/geom"
)

// Current returns the cursor position. A fresh grid starts at the origin.
func (g *Grid[P, T]) Current() geom.Point[P] {
	return g.cursor
}

// Heading returns the cursor direction. A fresh grid faces geom.East.
func (g *Grid[P, T]) Heading() geom.Direction {
	return g.heading
}

// SetCursor moves the cursor to p, failing with ErrOutOfBounds if p is not
// a cell of g.
func (g *Grid[P, T]) SetCursor(p geom.Point[P]) error {
	if _, err := g.pointIndex(p); err != nil {
		return err
	}
	g.cursor = p
	return nil
}

// Face changes the heading without moving.
func (g *Grid[P, T]) Face(d geom.Direction) {
	g.heading = d
}

// Step advances the cursor one cell along its heading. At an edge the cursor
// stays put and Step returns false.
func (g *Grid[P, T]) Step() (geom.Point[P], bool) {
	next, ok := g.cursor.CheckedStep(g.heading)
	if !ok || !g.InBounds(next) {
		return geom.Point[P]{}, false
	}
	g.cursor = next
	return next, true
}

// Left faces West and steps.
func (g *Grid[P, T]) Left() (geom.Point[P], bool) {
	g.heading = geom.West
	return g.Step()
}

// Right faces East and steps.
func (g *Grid[P, T]) Right() (geom.Point[P], bool) {
	g.heading = geom.East
	return g.Step()
}

// Up faces North and steps.
func (g *Grid[P, T]) Up() (geom.Point[P], bool) {
	g.heading = geom.North
	return g.Step()
}

// Down faces South and steps.
func (g *Grid[P, T]) Down() (geom.Point[P], bool) {
	g.heading = geom.South
	return g.Step()
}
