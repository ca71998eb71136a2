package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrShape indicates rows of differing lengths.
	ErrShape = errors.New("grid: all rows must have the same number of cells")
	// ErrDimensions indicates the grid is too large for its coordinate type.
	ErrDimensions = errors.New("grid: dimensions exceed the coordinate type")
	// ErrOutOfBounds indicates a point or index outside the grid.
	ErrOutOfBounds = errors.New("grid: out of bounds")
)
