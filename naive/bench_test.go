package naive_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rmqlca/naive"
	"github.com/katalvlaran/rmqlca/seq"
)

// benchSinkIdx prevents the compiler from eliding the query loop below.
var benchSinkIdx int

func randSeqN(n int) []int {
	rng := rand.New(rand.NewSource(int64(n)))
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Intn(1 << 20)
	}
	return a
}

// BenchmarkBuild measures naive.Build's O(n^2) construction cost across
// growing n, to make the order-of-growth property observable.
func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		a := randSeqN(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = naive.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())
			}
		})
	}
}

// BenchmarkQuery measures query latency, which should stay flat as n grows
// since each Query is a single table lookup.
func BenchmarkQuery(b *testing.B) {
	a := randSeqN(256)
	r := naive.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkIdx = r.Query(0, len(a))
	}
}
