package pqueue

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Queue is a priority queue over (K, V) pairs ordered by a less function on K.
type Queue[K, V any] struct {
	h entries[K, V]
}

// NewFunc returns an empty queue where Pop yields a key k such that
// less(other, k) is false for every other key held.
func NewFunc[K, V any](less func(a, b K) bool, opts ...Option) *Queue[K, V] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[K, V]{h: entries[K, V]{
		items: make([]Entry[K, V], 0, cfg.Capacity),
		less:  less,
	}}
}

// NewMin returns an empty queue that pops the smallest key first.
func NewMin[K constraints.Ordered, V any](opts ...Option) *Queue[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b }, opts...)
}

// NewMax returns an empty queue that pops the largest key first.
func NewMax[K constraints.Ordered, V any](opts ...Option) *Queue[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a > b }, opts...)
}

// Len returns the number of entries held.
func (q *Queue[K, V]) Len() int {
	return q.h.Len()
}

// Push inserts (key, value).
func (q *Queue[K, V]) Push(key K, value V) {
	heap.Push(&q.h, Entry[K, V]{Key: key, Value: value})
}

// Pop removes and returns the extremal entry. ok is false when empty.
func (q *Queue[K, V]) Pop() (key K, value V, ok bool) {
	if q.h.Len() == 0 {
		return key, value, false
	}
	e := heap.Pop(&q.h).(Entry[K, V])
	return e.Key, e.Value, true
}

// Peek returns the entry Pop would return without removing it.
func (q *Queue[K, V]) Peek() (key K, value V, ok bool) {
	if q.h.Len() == 0 {
		return key, value, false
	}
	e := q.h.items[0]
	return e.Key, e.Value, true
}

// Entries returns a copy of the held entries in heap order.
func (q *Queue[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(q.h.items))
	copy(out, q.h.items)
	return out
}

// Keys returns the held keys in heap order.
func (q *Queue[K, V]) Keys() []K {
	out := make([]K, len(q.h.items))
	for i, e := range q.h.items {
		out[i] = e.Key
	}
	return out
}

// Values returns the held values in heap order.
func (q *Queue[K, V]) Values() []V {
	out := make([]V, len(q.h.items))
	for i, e := range q.h.items {
		out[i] = e.Value
	}
	return out
}

// entries adapts a slice of Entry to container/heap.
type entries[K, V any] struct {
	items []Entry[K, V]
	less  func(a, b K) bool
}

func (h entries[K, V]) Len() int           { return len(h.items) }
func (h entries[K, V]) Less(i, j int) bool { return h.less(h.items[i].Key, h.items[j].Key) }
func (h entries[K, V]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push is called by heap.Push; x must be an Entry[K, V].
func (h *entries[K, V]) Push(x any) { h.items = append(h.items, x.(Entry[K, V])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entries[K, V]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = Entry[K, V]{}
	h.items = old[:n-1]

	return item
}
