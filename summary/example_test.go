// SPDX-License-Identifier: MIT

package summary_test

import (
	"fmt"

	"github.com/katalvlaran/polarbayes/frame"
	"github.com/katalvlaran/polarbayes/summary"
)

func ExamplePointInterval() {
	tidy, _ := frame.New(
		frame.Column{Name: "draw", Values: frame.Int64s(0, 1, 2, 3, 4)},
		frame.Column{Name: "variable", Values: frame.Strings("mu", "mu", "mu", "mu", "mu")},
		frame.Column{Name: "value", Values: frame.Float64s(1, 2, 3, 4, 5)},
	)
	out, err := summary.PointInterval(tidy)
	if err != nil {
		panic(err)
	}
	for _, name := range []string{"mean", "median", "lower", "upper"} {
		v, _ := out.Value(name, 0)
		fmt.Println(name, v)
	}
	// Output:
	// mean 3
	// median 3
	// lower 1
	// upper 5
}
