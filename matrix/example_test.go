// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/seqsim/matrix"
)

// ExampleDistanceBuilder fills two of three pairs; the third stays missing
// and shows up as NaN in the dense view.
func ExampleDistanceBuilder() {
	b, _ := matrix.NewDistanceBuilder([]string{"a", "b", "c"})
	_ = b.SetByLabel("a", "b", 1.5)
	_ = b.Set(0, 2, 4)
	d := b.Build()

	v, ok := d.Get("b", "a")
	fmt.Println(v, ok)
	_, ok = d.Get("b", "c")
	fmt.Println(ok, d.Missing())
	fmt.Print(d.Dense())
	// Output:
	// 1.5 true
	// false 1
	// [0, 1.5, 4]
	// [1.5, 0, NaN]
	// [4, NaN, 0]
}
