package pm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmqlca/pm"
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
	// differences: 1,-1,1,-1,-1 -> all +-1, valid.
	r := pm.Build(a)

	got := r.Query(0, 3)
	assert.Equal(t, 1, a[got])
	assert.Equal(t, 5, r.Query(0, 6))
}

func TestRMQ_PanicsOnNonPM1Input(t *testing.T) {
	assert.Panics(t, func() {
		pm.Build([]int{1, 2, 4, 3})
	})
}

func TestRMQ_PanicsOnEmptyBuild(t *testing.T) {
	assert.Panics(t, func() {
		pm.Build(nil)
	})
}

func TestRMQ_PanicsOnBadRange(t *testing.T) {
	a := []int{0, 1, 0, 1, 0}
	r := pm.Build(a)
	assert.Panics(t, func() { r.Query(2, 2) })
	assert.Panics(t, func() { r.Query(0, 6) })
}

// genPM1 generates a random +-1 walk of length n starting at 0.
func genPM1(rng *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := 1; i < n; i++ {
		if rng.Intn(2) == 0 {
			a[i] = a[i-1] + 1
		} else {
			a[i] = a[i-1] - 1
		}
	}
	return a
}

func TestRMQ_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(500)
		a := genPM1(rng, n)
		r := pm.Build(a)
		for sample := 0; sample < 30; sample++ {
			u := rng.Intn(n)
			v := u + 1 + rng.Intn(n-u)
			got := r.Query(u, v)
			require.GreaterOrEqual(t, got, u)
			require.Less(t, got, v)
			assert.Equal(t, a[bruteMin(a, u, v)], a[got])
		}
	}
}

func TestRMQ_LeftmostTieBreak(t *testing.T) {
	// a has two equal minima (value 0) at positions 2 and 6.
	a := []int{2, 1, 0, 1, 2, 1, 0, 1, 2}
	r := pm.Build(a)
	assert.Equal(t, 2, r.Query(0, 9))
	assert.Equal(t, 6, r.Query(3, 9))
}
