package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridkit/geom"
)

// Parse builds a grid from line-delimited text. Each line is a row; split
// turns it into tokens and convert decodes every token. The first conversion
// failure aborts parsing. Width comes from the first row and every other row
// must match it. A single trailing newline (LF or CRLF) is ignored.
//
// Returns ErrEmptyGrid, ErrShape, ErrDimensions or the wrapped convert error.
func Parse[P constraints.Integer, T any](
	input string,
	split Splitter,
	convert func(token string) (T, error),
) (*Grid[P, T], error) {
	input = strings.TrimSuffix(input, "\n")
	input = strings.TrimSuffix(input, "\r")
	if input == "" {
		return nil, ErrEmptyGrid
	}

	lines := strings.Split(input, "\n")
	width := -1
	cells := make([]T, 0, len(lines)*len(lines[0]))
	for y, line := range lines {
		tokens := split(strings.TrimSuffix(line, "\r"))
		if width < 0 {
			if len(tokens) == 0 {
				return nil, ErrEmptyGrid
			}
			width = len(tokens)
		}
		if len(tokens) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, y, len(tokens), width)
		}
		for x, tok := range tokens {
			v, err := convert(tok)
			if err != nil {
				return nil, fmt.Errorf("grid: row %d col %d: %w", y, x, err)
			}
			cells = append(cells, v)
		}
	}

	if err := checkDimensions[P](width, len(lines)); err != nil {
		return nil, err
	}

	return &Grid[P, T]{width: width, height: len(lines), cells: cells}, nil
}

// FromCells wraps an existing row-major slice without copying it.
// The caller guarantees len(cells) == width*height; a mismatch, negative
// dimensions, or dimensions P cannot address are programmer errors and panic.
func FromCells[P constraints.Integer, T any](cells []T, width, height int) *Grid[P, T] {
	if width < 0 || height < 0 || len(cells) != width*height {
		panic(fmt.Sprintf("grid: FromCells: %d cells for %dx%d", len(cells), width, height))
	}
	if err := checkDimensions[P](width, height); err != nil {
		panic(err.Error())
	}

	return &Grid[P, T]{width: width, height: height, cells: cells}
}

// New returns a width×height grid of zero-valued cells.
func New[P constraints.Integer, T any](width, height int) *Grid[P, T] {
	return FromCells[P](make([]T, width*height), width, height)
}

// Rune is a convert function for Undelimited grids of characters.
func Rune(token string) (rune, error) {
	r, size := utf8.DecodeRuneInString(token)
	if token == "" || size != len(token) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("grid: %q is not a single character", token)
	}
	return r, nil
}

// Width returns the number of columns.
func (g *Grid[P, T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[P, T]) Height() int { return g.height }

// Bounds returns the bottom-right cell (Width-1, Height-1), the inclusive
// maximum for geom.Point.BoundedZ. Meaningless on an empty grid.
func (g *Grid[P, T]) Bounds() geom.Point[P] {
	return geom.New(P(g.width-1), P(g.height-1))
}

// InBounds reports whether p addresses a cell.
func (g *Grid[P, T]) InBounds(p geom.Point[P]) bool {
	_, err := g.pointIndex(p)
	return err == nil
}

// Get returns the cell at p.
func (g *Grid[P, T]) Get(p geom.Point[P]) (T, error) {
	i, err := g.pointIndex(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[i], nil
}

// Set overwrites the cell at p.
func (g *Grid[P, T]) Set(p geom.Point[P], v T) error {
	i, err := g.pointIndex(p)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}

// Ref returns a pointer to the cell at p for in-place mutation.
// The pointer stays valid for the grid's lifetime.
func (g *Grid[P, T]) Ref(p geom.Point[P]) (*T, error) {
	i, err := g.pointIndex(p)
	if err != nil {
		return nil, err
	}
	return &g.cells[i], nil
}

// GetAt is Get for callers already holding int coordinates.
func (g *Grid[P, T]) GetAt(x, y int) (T, error) {
	i, err := g.index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[i], nil
}

// SetAt is Set for int coordinates.
func (g *Grid[P, T]) SetAt(x, y int, v T) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}

// RefAt is Ref for int coordinates.
func (g *Grid[P, T]) RefAt(x, y int) (*T, error) {
	i, err := g.index(x, y)
	if err != nil {
		return nil, err
	}
	return &g.cells[i], nil
}

// index maps (x,y) to a row-major index: y*width + x.
// Every accessor funnels through here.
func (g *Grid[P, T]) index(x, y int) (int, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

func (g *Grid[P, T]) pointIndex(p geom.Point[P]) (int, error) {
	ip, err := p.Indexable()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	}
	return g.index(ip.X, ip.Y)
}

// point converts in-range int coordinates to a Point[P].
func (g *Grid[P, T]) point(x, y int) geom.Point[P] {
	return geom.New(P(x), P(y))
}

// checkDimensions verifies that the largest index on each axis survives a
// round trip through P.
func checkDimensions[P constraints.Integer](width, height int) error {
	for _, n := range [2]int{width, height} {
		if n > 0 && int(P(n-1)) != n-1 {
			return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
		}
	}
	return nil
}
