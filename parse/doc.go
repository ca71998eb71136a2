// Package parse holds the small integer-token helpers shared by geom and grid.
//
// What:
//
//   - Int parses a single trimmed base-10 token into any integer type,
//     sized and signed according to the type parameter.
//   - Nums splits a line on a separator and parses every piece.
//
// Errors:
//
//   - ErrSyntax: a token is empty, non-numeric or out of range for T.
//     The underlying *strconv.NumError stays reachable through errors.As.
package parse
