package distance_test

import (
	"fmt"

	"github.com/katalvlaran/duopath/core"
	"github.com/katalvlaran/duopath/distance"
)

// ExampleCompute contrasts the exact and capped modes on a 5-vertex path.
func ExampleCompute() {
	g, _ := core.NewGraph(5)
	for i := 1; i < 5; i++ {
		_, _ = g.AddEdge(i-1, i)
	}

	exact, _ := distance.Compute(g)
	capped, _ := distance.Compute(g, distance.WithCap(2, 4))

	fmt.Println(exact.Row(0))
	fmt.Println(capped.Row(0))
	fmt.Println(capped.Row(4))
	fmt.Println(exact.Far(0, 4, 2), capped.Far(0, 4, 2))
	// Output:
	// [0 1 2 3 4]
	// [0 1 2 3 3]
	// [4 3 2 1 0]
	// true true
}
