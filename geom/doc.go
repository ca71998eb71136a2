// Package geom provides the lattice primitives shared by grid-based solvers:
// a four-way compass Direction and a generic integer coordinate Point[T].
//
// What:
//
//   - Point[T] is a value type over any integer type. Use a signed T
//     (int, int32) for cartesian coordinates that may go negative, and an
//     unsigned T (uint, uint32, uint8) for plain row/column indices.
//   - Direction is a closed enum {East, West, North, South}; East is the
//     zero value and therefore the default heading.
//
// Stepping policy:
//
//   - Left/Right/Up/Down/Step never fail. On an unsigned T at 0, Left and Up
//     wrap around to the type's maximum; callers bounds-check first.
//   - CheckedStep, CheckedLeft and CheckedUp are the fallible forms and
//     report false instead of wrapping. grid always uses them.
//   - Sub and SubAssign saturate: an axis whose subtraction would overflow
//     becomes 0.
//
// Errors:
//
//   - ErrParse: "x,y" text is missing its separator or a component is not
//     an integer of type T.
//   - ErrConversion: a coordinate cannot be used as a slice index.
//
// Complexity: every operation is O(1).
package geom
