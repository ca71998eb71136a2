package dijkstra

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/pqueue"
)

// Search computes least costs from source to every node reachable through
// next. It runs until the frontier is exhausted or every remaining entry is
// beyond MaxDistance.
//
// Returns ErrNilNeighbors if next is nil and ErrNegativeWeight (wrapped with
// the offending edge) if next yields a negative cost.
func Search[N comparable](source N, next Neighbors[N], opts ...Option) (*Result[N], error) {
	return run(source, nil, next, opts)
}

// ShortestPath searches from source until the first node satisfying goal is
// finalised and returns its cost and the node sequence source..goal.
// Returns ErrNoPath if no goal node is reachable within MaxDistance.
func ShortestPath[N comparable](
	source N,
	goal func(N) bool,
	next Neighbors[N],
	opts ...Option,
) (int64, []N, error) {
	opts = append(opts, WithReturnPath())
	res, err := run(source, goal, next, opts)
	if err != nil {
		return 0, nil, err
	}
	if !res.Found {
		return 0, nil, ErrNoPath
	}

	return res.Dist[res.Goal], ReconstructPath(res.Prev, source, res.Goal), nil
}

func run[N comparable](source N, goal func(N) bool, next Neighbors[N], opts []Option) (*Result[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if next == nil {
		return nil, ErrNilNeighbors
	}

	r := &runner[N]{
		next:    next,
		goal:    goal,
		options: cfg,
		dist:    make(map[N]int64),
		visited: mapset.New[N](),
		pq:      pqueue.NewMin[int64, N](),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N)
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	next    Neighbors[N]
	goal    func(N) bool
	options Options

	dist    map[N]int64 // best known distance; final once the node is visited
	prev    map[N]N     // came-from back-pointers, nil unless ReturnPath
	visited mapset.Set[N]
	pq      *pqueue.Queue[int64, N]

	found  bool
	goalAt N
}

func (r *runner[N]) init(source N) {
	r.dist[source] = 0
	r.pq.Push(0, source)
}

// process pops the closest node until the queue drains, the distance cap is
// passed or a goal node is finalised.
func (r *runner[N]) process() error {
	for {
		d, u, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		// Stale entry from lazy decrease-key.
		if r.visited.Has(u) || d > r.dist[u] {
			continue
		}
		if d > r.options.MaxDistance {
			return nil
		}

		r.visited.Put(u)
		r.options.OnVisit(u, d)

		if r.goal != nil && r.goal(u) {
			r.found, r.goalAt = true, u
			return nil
		}
		if err := r.relax(u, d); err != nil {
			return err
		}
	}
}

// relax tries to improve every neighbour of the finalised node u.
func (r *runner[N]) relax(u N, du int64) error {
	for _, e := range r.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}
		if r.visited.Has(e.To) {
			continue
		}

		nd := du + e.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[e.To]; seen && nd >= old {
			continue
		}

		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.pq.Push(nd, e.To)
	}

	return nil
}

// result keeps only finalised distances so Dist never reports a tentative
// value for a node the search abandoned.
func (r *runner[N]) result() *Result[N] {
	dist := make(map[N]int64, r.visited.Size())
	r.visited.Each(func(n N) {
		dist[n] = r.dist[n]
	})

	res := &Result[N]{Dist: dist, Found: r.found, Goal: r.goalAt}
	if r.prev != nil {
		res.Prev = make(map[N]N, len(dist))
		for n := range dist {
			if p, ok := r.prev[n]; ok {
				res.Prev[n] = p
			}
		}
	}

	return res
}
