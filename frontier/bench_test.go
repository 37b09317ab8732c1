package frontier_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/frontier"
)

// BenchmarkPriority_PushPop measures a mixed push/pop workload of N entries.
func BenchmarkPriority_PushPop(b *testing.B) {
	const N = 10000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := frontier.NewPriority(N, func(v int) int { return v % 97 })
		for j := 0; j < N; j++ {
			p.Push(j)
		}
		for p.Len() > 0 {
			_, _ = p.Pop()
		}
	}
}

// BenchmarkQueue_PushPop measures FIFO throughput.
func BenchmarkQueue_PushPop(b *testing.B) {
	const N = 10000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := frontier.NewQueue[int](N)
		for j := 0; j < N; j++ {
			q.Push(j)
		}
		for q.Len() > 0 {
			_, _ = q.Pop()
		}
	}
}
