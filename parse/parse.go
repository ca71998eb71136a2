package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrSyntax indicates a token could not be converted to the target integer type.
var ErrSyntax = errors.New("parse: invalid integer token")

// Int parses s (surrounding whitespace ignored) as a base-10 integer of type T.
// Range checks use T's own width, so "300" fails for uint8 and "-1" fails
// for any unsigned type.
func Int[T constraints.Integer](s string) (T, error) {
	var zero T
	tok := strings.TrimSpace(s)
	bits := int(unsafe.Sizeof(zero)) * 8

	if signed[T]() {
		v, err := strconv.ParseInt(tok, 10, bits)
		if err != nil {
			return zero, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
		}
		return T(v), nil
	}

	v, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
	}

	return T(v), nil
}

// Nums splits input on sep and parses every piece with Int.
// The first failing piece aborts the whole call.
func Nums[T constraints.Integer](input, sep string) ([]T, error) {
	parts := strings.Split(input, sep)
	out := make([]T, 0, len(parts))
	for i, part := range parts {
		v, err := Int[T](part)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// signed reports whether T can hold negative values.
func signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}
