package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/windgrid/core"
	"github.com/katalvlaran/windgrid/prim_kruskal"
)

// ExampleKruskal ranks the lines of a small ring grid by reinforcement cost.
//
//	A-B (1), B-C (2), C-D (3), D-A (4)
//
// The forest drops the most expensive line of the ring: total 6.
func ExampleKruskal() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("ab", "A", "B", 1, 5)
	_ = g.AddEdge("bc", "B", "C", 2, 5)
	_ = g.AddEdge("cd", "C", "D", 3, 5)
	_ = g.AddEdge("da", "D", "A", 4, 5)

	forest, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print("Total: ", total, ", Edges:")
	for _, e := range forest {
		fmt.Print(" ", e.ID)
	}
	fmt.Println()
	// Output: Total: 6, Edges: ab bc cd
}

// ExamplePrim grows the same ring from A.
func ExamplePrim() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge("ab", "A", "B", 1, 5)
	_ = g.AddEdge("bc", "B", "C", 2, 5)
	_ = g.AddEdge("cd", "C", "D", 3, 5)
	_ = g.AddEdge("da", "D", "A", 4, 5)

	forest, total, _ := prim_kruskal.Prim(g)
	fmt.Print("Total: ", total, ", Edges:")
	for _, e := range forest {
		fmt.Print(" ", e.ID)
	}
	fmt.Println()
	// Output: Total: 6, Edges: ab bc cd
}
