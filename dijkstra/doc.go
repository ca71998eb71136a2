// Package dijkstra finds least-cost paths over implicit graphs whose nodes
// are any comparable value: grid points, or richer search states such as
// (point, heading, run length).
//
// The graph is never materialised. Callers supply a Neighbors function that
// expands a node into outgoing edges; GridNeighbors builds one from a
// grid.Grid and a per-cell cost function.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each node is finalised at most once.
//	   • Each improving relaxation pushes one queue entry (lazy decrease-key).
//	– Space: O(V + E)
//	   • O(V) for the distance, predecessor and visited sets.
//	   • O(E) queue entries in the worst case.
//
// Options:
//
//	– ReturnPath:  record came-from back-pointers in Result.Prev.
//	– MaxDistance: nodes farther than this are not explored.
//	– OnVisit:     hook called when a node's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilNeighbors   if the neighbour function is nil.
//	– ErrNegativeWeight if an edge with negative cost is produced.
//	– ErrNoPath         if ShortestPath finds no goal node.
//
// Example usage:
//
//	next := dijkstra.GridNeighbors(g, func(_, _ geom.Point[int], v int) (int64, bool) {
//	    return int64(v), true
//	})
//	cost, path, err := dijkstra.ShortestPath(start, isExit, next)
package dijkstra
