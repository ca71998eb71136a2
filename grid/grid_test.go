package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/parse"
)

const numbers = `1,2,3,4,5
6,7,8,9,10`

const maze = `#.#
...
#.#
`

//----------------------------------------------------------------------------//
// Parse and constructors
//----------------------------------------------------------------------------//

func TestParse_Delimited(t *testing.T) {
	g, err := grid.Parse[int32](numbers, grid.Delimited(","), parse.Int[uint32])
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 2, g.Height())

	v, err := g.Get(geom.New[int32](4, 1))
	require.NoError(t, err)
	assert.Equal(t, uint32(10), v)
	assert.Equal(t, geom.New[int32](4, 1), g.Bounds())
}

func TestParse_Undelimited(t *testing.T) {
	g, err := grid.Parse[uint](maze, grid.Undelimited(), grid.Rune)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height(), "trailing newline is not a row")

	v, err := g.GetAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, '.', v)
	assert.Equal(t, "#.#\n...\n#.#", g.Render(func(r rune) string { return string(r) }))
}

func TestParse_CRLF(t *testing.T) {
	g, err := grid.Parse[int]("12\r\n34\r\n", grid.Undelimited(), parse.Int[int])
	require.NoError(t, err)
	assert.Equal(t, "12\n34", g.Render(nil))
}

// TestParse_Errors verifies every detectable bad input is reported.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewline", "\n", grid.ErrEmptyGrid},
		{"EmptyFirstRow", "\n123", grid.ErrEmptyGrid},
		{"RaggedShort", "123\n12", grid.ErrShape},
		{"RaggedLong", "12\n123", grid.ErrShape},
		{"BlankMiddleRow", "12\n\n34", grid.ErrShape},
		{"BadToken", "12\n3x", parse.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse[int](tc.input, grid.Undelimited(), parse.Int[int])
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
		})
	}
}

func TestParse_ConvertErrorCarriesPosition(t *testing.T) {
	_, err := grid.Parse[int]("1,2\n3,x", grid.Delimited(","), parse.Int[int])
	require.ErrorIs(t, err, parse.ErrSyntax)
	assert.Contains(t, err.Error(), "row 1 col 1")
}

func TestParse_Dimensions(t *testing.T) {
	wide := strings.Repeat("a", 257)
	_, err := grid.Parse[uint8](wide, grid.Undelimited(), grid.Rune)
	require.ErrorIs(t, err, grid.ErrDimensions)

	_, err = grid.Parse[uint8](wide[:256], grid.Undelimited(), grid.Rune)
	require.NoError(t, err)
}

func TestRune(t *testing.T) {
	r, err := grid.Rune("é")
	require.NoError(t, err)
	assert.Equal(t, 'é', r)

	for _, bad := range []string{"", "ab", "\xff"} {
		_, err := grid.Rune(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestFromCells(t *testing.T) {
	g := grid.FromCells[int]([]byte("abcdef"), 3, 2)
	v, err := g.GetAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, byte('f'), v)

	require.Panics(t, func() { grid.FromCells[int]([]byte("abc"), 2, 2) })
	require.Panics(t, func() { grid.FromCells[uint8](make([]int, 300), 300, 1) })
}

func TestNew(t *testing.T) {
	g := grid.New[int, bool](4, 3)
	assert.Equal(t, 0, g.Count(func(b bool) bool { return b }))
	require.NoError(t, g.Set(geom.New(3, 2), true))
	assert.Equal(t, 1, g.Count(func(b bool) bool { return b }))
}

//----------------------------------------------------------------------------//
// Access
//----------------------------------------------------------------------------//

// TestGet_BoundsInvariant checks Get succeeds iff 0<=x<W and 0<=y<H.
func TestGet_BoundsInvariant(t *testing.T) {
	g := grid.New[int, int](3, 2)
	for y := -2; y <= 3; y++ {
		for x := -2; x <= 4; x++ {
			p := geom.New(x, y)
			inside := x >= 0 && x < 3 && y >= 0 && y < 2

			_, err := g.Get(p)
			if inside {
				assert.NoError(t, err, "Get(%v)", p)
			} else {
				assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Get(%v)", p)
			}
			_, err = g.GetAt(x, y)
			assert.Equal(t, inside, err == nil, "GetAt(%d,%d)", x, y)
			assert.Equal(t, inside, g.InBounds(p))
		}
	}
}

func TestGet_UnsignedFarOutside(t *testing.T) {
	g := grid.New[uint64, int](2, 2)
	_, err := g.Get(geom.New[uint64](1<<63, 0))
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	require.ErrorIs(t, err, geom.ErrConversion)
}

func TestRef_MutatesInPlace(t *testing.T) {
	g, err := grid.Parse[int](maze, grid.Undelimited(), grid.Rune)
	require.NoError(t, err)

	cell, err := g.Ref(geom.New(1, 1))
	require.NoError(t, err)
	*cell = '#'

	at, err := g.RefAt(0, 1)
	require.NoError(t, err)
	*at = 'O'

	require.NoError(t, g.SetAt(2, 1, 'X'))
	assert.Equal(t, "#.#\nO#X\n#.#", g.Render(func(r rune) string { return string(r) }))

	_, err = g.Ref(geom.New(3, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(geom.New(0, -1), '.'), grid.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetAt(0, 3, '.'), grid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Rows, columns and iteration
//----------------------------------------------------------------------------//

func TestRowColumn(t *testing.T) {
	g, err := grid.Parse[int](numbers, grid.Delimited(","), parse.Int[int])
	require.NoError(t, err)

	row, err := g.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, row)

	col, err := g.Column(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 8}, col)

	row[0] = 99
	v, _ := g.GetAt(0, 1)
	assert.Equal(t, 6, v, "Row returns a copy")

	_, err = g.Row(2)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = g.Column(-1)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestEachFindCount(t *testing.T) {
	g, err := grid.Parse[int](numbers, grid.Delimited(","), parse.Int[int])
	require.NoError(t, err)

	sum := 0
	var last geom.Point[int]
	g.Each(func(p geom.Point[int], v int) {
		sum += v
		last = p
	})
	assert.Equal(t, 55, sum)
	assert.Equal(t, geom.New(4, 1), last)

	p, ok := g.Find(func(v int) bool { return v == 8 })
	require.True(t, ok)
	assert.Equal(t, geom.New(2, 1), p)

	_, ok = g.Find(func(v int) bool { return v > 10 })
	assert.False(t, ok)

	assert.Equal(t, 5, g.Count(func(v int) bool { return v%2 == 0 }))
}

func TestClone(t *testing.T) {
	g := grid.New[int, int](2, 2)
	c := g.Clone()
	require.NoError(t, c.SetAt(0, 0, 7))

	v, _ := g.GetAt(0, 0)
	assert.Zero(t, v)
	v, _ = c.GetAt(0, 0)
	assert.Equal(t, 7, v)
}

func TestComponents(t *testing.T) {
	g, err := grid.Parse[int]("##.\n#..\n..#", grid.Undelimited(), grid.Rune)
	require.NoError(t, err)

	comps := g.Components(func(r rune) bool { return r == '#' })
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []geom.Point[int]{geom.New(0, 0), geom.New(1, 0), geom.New(0, 1)}, comps[0])
	assert.Equal(t, []geom.Point[int]{geom.New(2, 2)}, comps[1])

	open := g.Components(func(r rune) bool { return r == '.' })
	require.Len(t, open, 1, "the open cells wrap around the centre")
	assert.Len(t, open[0], 5)
	assert.Equal(t, geom.New(2, 0), open[0][0])
}
