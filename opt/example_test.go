package opt_test

import (
	"fmt"

	"github.com/katalvlaran/rmqlca/opt"
	"github.com/katalvlaran/rmqlca/seq"
)

// ExampleBuild reproduces spec.md's second end-to-end scenario: general
// RMQ over an arbitrary sequence via its Cartesian tree.
func ExampleBuild() {
	a := []int{3, 1, 2, 1, 4, 5}
	r := opt.Build[int](seq.Slice[int](a), seq.OrderedLess[int]())

	fmt.Println(a[r.Query(0, 3)])
	fmt.Println(a[r.Query(2, 6)])
	// Output:
	// 1
	// 1
}
