package naive_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmqlca/naive"
	"github.com/katalvlaran/rmqlca/seq"
)

func bruteMin(a []int, u, v int) int {
	best := u
	for i := u + 1; i < v; i++ {
		if a[i] < a[best] {
			best = i
		}
	}
	return best
}

func TestRMQ_Basic(t *testing.T) {
	a := []int{1, 2, 1, 2, 1, 0}
	r := naive.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())

	i := r.Query(0, 4)
	assert.Contains(t, []int{0, 2}, i)
	assert.Equal(t, 5, r.Query(0, 6))
	assert.Equal(t, 5, r.Query(2, 6))
}

func TestRMQ_LeftmostTieBreak(t *testing.T) {
	a := []int{5, 1, 1, 1, 5}
	r := naive.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())
	assert.Equal(t, 1, r.Query(0, 5))
	assert.Equal(t, 2, r.Query(2, 5))
}

func TestRMQ_QueryOffsetMatchesQuery(t *testing.T) {
	a := []int{4, 3, 2, 1}
	r := naive.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())
	assert.Equal(t, r.Query(0, 3), r.QueryOffset(0, 3))
}

func TestRMQ_PanicsOnBadRange(t *testing.T) {
	a := []int{1, 2, 3}
	r := naive.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())
	assert.Panics(t, func() { r.Query(2, 2) })
	assert.Panics(t, func() { r.Query(0, 4) })
}

func TestRMQ_PanicsOnEmptyBuild(t *testing.T) {
	assert.Panics(t, func() {
		naive.Build[int](seq.Slice[int]{}, seq.OrderedLess[int]())
	})
}

func TestRMQ_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(40)
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(6)
		}
		r := naive.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())
		for sample := 0; sample < 20; sample++ {
			u := rng.Intn(n)
			v := u + 1 + rng.Intn(n-u)
			got := r.Query(u, v)
			require.GreaterOrEqual(t, got, u)
			require.Less(t, got, v)
			assert.Equal(t, a[bruteMin(a, u, v)], a[got])
		}
	}
}
