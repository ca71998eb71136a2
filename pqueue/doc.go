// Package pqueue implements a binary-heap priority queue of (key, value)
// pairs, ordered by key.
//
// What:
//
//   - NewMin pops the smallest key first, NewMax the largest.
//   - NewFunc takes any strict "less" ordering on keys; NewMin and NewMax are
//     thin wrappers over it, so there is one heap implementation and no
//     per-comparison branching on a min/max flag.
//   - Ties come out in an unspecified but deterministic order: the same
//     sequence of pushes and pops always yields the same result.
//
// Complexity:
//
//   - Push, Pop: O(log n).
//   - Peek, Len: O(1).
//   - Keys, Values, Entries: O(n) snapshots in heap order (not sorted).
//
// A Queue is not safe for concurrent use.
package pqueue
