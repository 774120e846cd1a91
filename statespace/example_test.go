package statespace_test

import (
	"fmt"

	"github.com/katalvlaran/evocover/statespace"
)

// ExampleNew builds a tiny path graph and shows the one-sided degree
// bookkeeping: every edge counts toward its From endpoint only.
func ExampleNew() {
	nodes := []statespace.Node{{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}}
	edges := []statespace.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}

	g, err := statespace.New(nodes, edges)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	for i := 0; i < g.NodeCount(); i++ {
		fmt.Printf("degree(%d) = %d\n", i, g.Degree(i))
	}
	// Output:
	// nodes: 4 edges: 3
	// degree(0) = 1
	// degree(1) = 1
	// degree(2) = 1
	// degree(3) = 0
}
