package geom

import "errors"

var (
	// ErrParse indicates "x,y" text could not be turned into a Point.
	ErrParse = errors.New("geom: invalid point text")
	// ErrConversion indicates a coordinate is not a valid non-negative index.
	ErrConversion = errors.New("geom: coordinate is not indexable")
)
