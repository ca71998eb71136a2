// Package gridkit is a small toolkit for grid and lattice puzzles: parse a
// block of text into a grid, walk it, and search it.
//
// Under the hood, everything is organized under these subpackages:
//
//	geom/     Point[T] lattice coordinates and the four-way Direction
//	grid/     Grid[P, T]: flat row-major cells, cursor, neighbours, regions
//	pqueue/   min/max/custom-ordered priority queue of (key, value) pairs
//	dijkstra/ least-cost search over grid points or any comparable state
//	parse/    integer token helpers shared by the above
//	cmd/gridpath/ least-cost walk across a digit map from the command line
//
// Quick ASCII example:
//
//	S1#
//	12#
//	91E
//
// parses with grid.Undelimited(), and dijkstra.GridNeighbors turns it into
// a graph whose '#' cells are walls.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
