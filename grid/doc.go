// Package grid stores a rectangular array of cells addressed by geom.Point
// and provides bounds-safe access plus a movable cursor for walking it.
//
// What:
//
//   - Grid[P, T] keeps its cells in one flat row-major slice; cell (x, y)
//     lives at y*Width + x. P is the coordinate type of the points used to
//     address it, T the cell type.
//   - Parse builds a grid from line-delimited text, splitting each line with
//     a Splitter (Delimited or Undelimited) and decoding each token with a
//     caller-supplied conversion function.
//   - A cursor (position + heading) moves with Step/Left/Right/Up/Down and
//     never leaves the grid.
//   - Neighbors lists orthogonal cells within a radius; Components groups
//     connected cells that satisfy a predicate.
//
// Errors:
//
//   - ErrEmptyGrid:     input has no rows or the first row has no tokens.
//   - ErrShape:         rows have differing token counts.
//   - ErrDimensions:    width/height cannot be addressed with coordinate type P.
//   - ErrOutOfBounds:   a point or index lies outside [0,W) x [0,H).
//
// Conversion errors returned by the caller's function are wrapped with the
// row and column, so errors.Is still matches them.
//
// Complexity:
//
//   - Get/Set/Ref, cursor moves: O(1).
//   - Parse, Each, Find, Components: O(W×H).
//   - Neighbors: O(radius).
//
// A Grid is not safe for concurrent mutation.
package grid
