package builder_test

import (
	"fmt"

	"github.com/katalvlaran/windgrid/builder"
)

// ExampleBuildGraph builds a 2×2 lattice where every line withstands wind 6.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithConstantThreshold(6)},
		builder.Grid(2, 2),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Nodes())
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.U, e.V)
	}
	// Output:
	// [n0 n1 n2 n3]
	// e0 n0 n1
	// e1 n0 n2
	// e2 n1 n3
	// e3 n2 n3
}
