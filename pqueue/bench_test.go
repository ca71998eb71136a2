package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/pqueue"
)

func BenchmarkPushPop(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	keys := make([]int, 1024)
	for i := range keys {
		keys[i] = r.Intn(1 << 20)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.NewMin[int, int](pqueue.WithCapacity(len(keys)))
		for j, k := range keys {
			q.Push(k, j)
		}
		for q.Len() > 0 {
			q.Pop()
		}
	}
}
