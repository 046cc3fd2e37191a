package fixtures

import (
	"math/rand"

	"github.com/katalvlaran/mcsplit/mcgraph"
)

// Cycle builds an n-vertex simple cycle C_n (n >= 3), labelling vertex i
// with i % numLabels (numLabels <= 0 gives every vertex label 0). Edge
// emission order is ascending i, closing the ring at n-1 -> 0, mirroring
// lvlath/builder's Cycle constructor.
func Cycle(n, numLabels int) *mcgraph.Graph {
	if n < 3 {
		panic("fixtures: Cycle requires n >= 3")
	}
	g := mcgraph.NewGraph(n)
	for i := 0; i < n; i++ {
		g.SetLabel(i, labelFor(i, numLabels))
	}
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}
	g.Freeze()
	return g
}

// RandomSparse builds an Erdos-Renyi-style undirected graph over n
// vertices, including each unordered pair {i,j}, i<j, independently with
// probability p, seeded deterministically. Vertex i is labelled
// i % numLabels. Adapted from lvlath/builder's RandomSparse, which drives
// the same Bernoulli-trial-per-pair loop over a *rand.Rand from a fixed
// seed for reproducibility.
func RandomSparse(n int, p float64, numLabels int, seed int64) *mcgraph.Graph {
	if n < 1 {
		panic("fixtures: RandomSparse requires n >= 1")
	}
	if p < 0 || p > 1 {
		panic("fixtures: RandomSparse requires 0 <= p <= 1")
	}

	rng := rand.New(rand.NewSource(seed))
	g := mcgraph.NewGraph(n)
	for i := 0; i < n; i++ {
		g.SetLabel(i, labelFor(i, numLabels))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				g.AddEdge(i, j)
			}
		}
	}
	g.Freeze()
	return g
}

func labelFor(i, numLabels int) uint32 {
	if numLabels <= 0 {
		return 0
	}
	return uint32(i % numLabels)
}
