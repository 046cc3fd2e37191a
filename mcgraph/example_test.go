package mcgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mcsplit/mcgraph"
)

// ExampleReadGraph parses a two-vertex, one-edge graph and reports its
// vertex count, the edge, and vertex 0's neighbours.
func ExampleReadGraph() {
	g, err := mcgraph.ReadGraph(strings.NewReader("2 1\n0 0\n0 1\n"))
	if err != nil {
		panic(err)
	}
	fmt.Println(g.N(), g.HasEdge(0, 1), g.Neighbors(0))
	// Output:
	// 2 true [1]
}
