package grid

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridkit/geom"
)

// Grid is a Width×Height array of T addressed by geom.Point[P].
// cells is row-major and always has exactly width*height entries.
type Grid[P constraints.Integer, T any] struct {
	width, height int
	cells         []T

	cursor  geom.Point[P]
	heading geom.Direction
}

// Splitter breaks one input line into cell tokens.
type Splitter func(line string) []string

// Delimited splits lines on sep, e.g. Delimited(",") for "1,2,3".
func Delimited(sep string) Splitter {
	return func(line string) []string {
		return strings.Split(line, sep)
	}
}

// Undelimited treats every rune of a line as its own token.
func Undelimited() Splitter {
	return func(line string) []string {
		return strings.Split(line, "")
	}
}
