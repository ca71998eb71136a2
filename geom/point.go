package geom

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridkit/parse"
)

// Point is a lattice coordinate. It is a plain value: every method returns a
// new Point except AddAssign and SubAssign, which update the receiver.
// Points are comparable and can key maps directly.
type Point[T constraints.Integer] struct {
	X, Y T
}

// New returns the point (x, y).
func New[T constraints.Integer](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Origin returns (0, 0).
func Origin[T constraints.Integer]() Point[T] {
	return Point[T]{}
}

// Convert re-types p as Point[T] using Go's integer conversion rules.
// Values outside T's range are truncated, so convert toward a wider type or
// check with Indexable first.
func Convert[T, U constraints.Integer](p Point[U]) Point[T] {
	return Point[T]{X: T(p.X), Y: T(p.Y)}
}

// ManhattanDistance returns |x1-x2| + |y1-y2|. Each axis is computed as
// max-min so unsigned types never underflow.
func (p Point[T]) ManhattanDistance(o Point[T]) T {
	return absDiff(p.X, o.X) + absDiff(p.Y, o.Y)
}

// Bounded reports whether min <= p <= max on both axes (inclusive).
func (p Point[T]) Bounded(min, max Point[T]) bool {
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// BoundedZ is Bounded(Origin(), max).
func (p Point[T]) BoundedZ(max Point[T]) bool {
	return p.Bounded(Origin[T](), max)
}

// Left returns (x-1, y). Wraps on an unsigned T at x == 0.
func (p Point[T]) Left() Point[T] {
	return Point[T]{X: p.X - 1, Y: p.Y}
}

// Right returns (x+1, y).
func (p Point[T]) Right() Point[T] {
	return Point[T]{X: p.X + 1, Y: p.Y}
}

// Up returns (x, y-1). Wraps on an unsigned T at y == 0.
func (p Point[T]) Up() Point[T] {
	return Point[T]{X: p.X, Y: p.Y - 1}
}

// Down returns (x, y+1).
func (p Point[T]) Down() Point[T] {
	return Point[T]{X: p.X, Y: p.Y + 1}
}

// Step moves p one unit toward d.
func (p Point[T]) Step(d Direction) Point[T] {
	next, _ := p.CheckedStep(d)
	return next
}

// CheckedStep moves p one unit toward d and reports false when either axis
// leaves T's representable range. The returned point is the wrapped value in
// that case and should be discarded.
func (p Point[T]) CheckedStep(d Direction) (Point[T], bool) {
	dx, dy := d.Delta()
	x, okX := shift(p.X, dx)
	y, okY := shift(p.Y, dy)

	return Point[T]{X: x, Y: y}, okX && okY
}

// CheckedLeft is CheckedStep(West).
func (p Point[T]) CheckedLeft() (Point[T], bool) {
	return p.CheckedStep(West)
}

// CheckedUp is CheckedStep(North).
func (p Point[T]) CheckedUp() (Point[T], bool) {
	return p.CheckedStep(North)
}

// Add returns p + o. Overflow wraps as Go integer addition does.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

// AddAssign sets p to p + o.
func (p *Point[T]) AddAssign(o Point[T]) {
	p.X += o.X
	p.Y += o.Y
}

// Sub returns p - o, clamping an axis to 0 when its subtraction overflows.
// For unsigned T this means anything below zero becomes zero.
func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{X: satSub(p.X, o.X), Y: satSub(p.Y, o.Y)}
}

// SubAssign sets p to p.Sub(o).
func (p *Point[T]) SubAssign(o Point[T]) {
	*p = p.Sub(o)
}

// Scale multiplies both axes by k.
func (p Point[T]) Scale(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}

// Indexable converts p to int coordinates suitable for slice indexing.
// Fails with ErrConversion when an axis is negative or exceeds math.MaxInt.
func (p Point[T]) Indexable() (Point[int], error) {
	x, ok := toIndex(p.X)
	if !ok {
		return Point[int]{}, fmt.Errorf("%w: x=%d", ErrConversion, p.X)
	}
	y, ok := toIndex(p.Y)
	if !ok {
		return Point[int]{}, fmt.Errorf("%w: y=%d", ErrConversion, p.Y)
	}

	return Point[int]{X: x, Y: y}, nil
}

// String renders p as "x,y", the same form Parse accepts.
func (p Point[T]) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Parse reads "x,y" into a Point[T]. Whitespace around either component is
// ignored.
func Parse[T constraints.Integer](s string) (Point[T], error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return Point[T]{}, fmt.Errorf("%w: %q: missing ','", ErrParse, s)
	}
	x, err := parse.Int[T](xs)
	if err != nil {
		return Point[T]{}, fmt.Errorf("%w: x: %w", ErrParse, err)
	}
	y, err := parse.Int[T](ys)
	if err != nil {
		return Point[T]{}, fmt.Errorf("%w: y: %w", ErrParse, err)
	}

	return Point[T]{X: x, Y: y}, nil
}

// Signum returns the per-axis sign of a - b: each axis is -1, 0 or 1.
// Handy for walking from b toward a one step at a time.
func Signum[T constraints.Signed](a, b Point[T]) Point[T] {
	return Point[T]{X: sign(a.X - b.X), Y: sign(a.Y - b.Y)}
}

func absDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

func satSub[T constraints.Integer](a, b T) T {
	r := a - b
	if (b > 0 && r > a) || (b < 0 && r < a) {
		return 0
	}
	return r
}

// shift adds the unit delta d (-1, 0 or 1) to v, reporting wrap-around.
func shift[T constraints.Integer](v T, d int) (T, bool) {
	switch {
	case d > 0:
		r := v + 1
		return r, r > v
	case d < 0:
		r := v - 1
		return r, r < v
	default:
		return v, true
	}
}

func toIndex[T constraints.Integer](v T) (int, bool) {
	if v < 0 || uint64(v) > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
