package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcsplit/fixtures"
	"github.com/katalvlaran/mcsplit/mcgraph"
	"github.com/katalvlaran/mcsplit/search"
)

// checkMapping verifies that one emitted mapping is injective on both
// sides, agrees on labels, and agrees on edges between every pair of its
// entries.
func checkMapping(t *testing.T, g0, g1 *mcgraph.Graph, m []search.VtxPair) {
	t.Helper()

	seenV := map[int]bool{}
	seenW := map[int]bool{}
	for _, p := range m {
		assert.False(t, seenV[p.V], "v=%d mapped twice", p.V)
		assert.False(t, seenW[p.W], "w=%d mapped twice", p.W)
		seenV[p.V] = true
		seenW[p.W] = true

		assert.Equal(t, g0.Label(p.V)&^mcgraph.SelfLoopBit, g1.Label(p.W)&^mcgraph.SelfLoopBit,
			"label mismatch for (%d,%d)", p.V, p.W)
	}

	for i, a := range m {
		for j, b := range m {
			if i == j {
				continue
			}
			assert.Equal(t, g0.HasEdge(a.V, b.V), g1.HasEdge(a.W, b.W),
				"edge agreement violated between (%d,%d) and (%d,%d)", a.V, a.W, b.V, b.W)
		}
	}
}

// checkMaximal verifies directly that no vertex pair can be appended to m
// without breaking label or edge agreement.
func checkMaximal(t *testing.T, g0, g1 *mcgraph.Graph, m []search.VtxPair) {
	t.Helper()

	usedV := map[int]bool{}
	usedW := map[int]bool{}
	for _, p := range m {
		usedV[p.V] = true
		usedW[p.W] = true
	}

	for v := 0; v < g0.N(); v++ {
		if usedV[v] {
			continue
		}
		for w := 0; w < g1.N(); w++ {
			if usedW[w] {
				continue
			}
			if g0.Label(v) != g1.Label(w) {
				continue
			}
			extendable := true
			for _, p := range m {
				if g0.HasEdge(v, p.V) != g1.HasEdge(w, p.W) {
					extendable = false
					break
				}
			}
			assert.False(t, extendable, "mapping %v is not maximal, (%d,%d) can be added", m, v, w)
		}
	}
}

func randomGraphPair(seed int64) (*mcgraph.Graph, *mcgraph.Graph) {
	g0 := fixtures.RandomSparse(6, 0.5, 2, seed)
	g1 := fixtures.RandomSparse(6, 0.5, 2, seed+1)
	return g0, g1
}

func TestPropertiesOnRandomGraphs(t *testing.T) {
	g0, g1 := randomGraphPair(7)

	var mappings [][]search.VtxPair
	res, err := search.Run(g0, g1, search.Options{
		OnSolution: func(m []search.VtxPair) {
			checkMapping(t, g0, g1, m)
			checkMaximal(t, g0, g1, m)
			cp := append([]search.VtxPair(nil), m...)
			mappings = append(mappings, cp)
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, len(mappings), res.Solutions)

	// No duplicate emitted mappings, compared as sets.
	seen := map[string]bool{}
	for _, m := range mappings {
		key := mappingKey(m)
		assert.False(t, seen[key], "duplicate mapping %v", m)
		seen[key] = true
	}
}

// Determinism: identical input produces an identical solution count and
// an identical per-solution sequence across repeated runs.
func TestDeterminismAcrossRuns(t *testing.T) {
	g0, g1 := randomGraphPair(11)

	run := func() *search.Result {
		res, err := search.Run(g0, g1, search.Options{CollectMappings: true})
		require.NoError(t, err)
		return res
	}

	first := run()
	second := run()

	assert.Equal(t, first.Solutions, second.Solutions)
	assert.Equal(t, first.Nodes, second.Nodes)
	require.Len(t, second.Mappings, len(first.Mappings))
	for i := range first.Mappings {
		assert.Equal(t, first.Mappings[i], second.Mappings[i])
	}
}

// Equivalence of variants: under Connected, Run and RunImplicit emit the
// same multiset of maximal mappings.
func TestExplicitImplicitAgreeUnderConnected(t *testing.T) {
	g0, g1 := randomGraphPair(23)

	explicit, err := search.Run(g0, g1, search.Options{Connected: true, CollectMappings: true})
	require.NoError(t, err)

	implicit, err := search.RunImplicit(g0, g1, search.Options{Connected: true, CollectMappings: true})
	require.NoError(t, err)

	assert.Equal(t, explicit.Solutions, implicit.Solutions)
	assert.Equal(t, mapSet(t, explicit.Mappings), mapSet(t, implicit.Mappings))
}

func TestRunImplicitRequiresConnected(t *testing.T) {
	g0 := mcgraph.NewGraph(1)
	g0.Freeze()
	g1 := mcgraph.NewGraph(1)
	g1.Freeze()

	_, err := search.RunImplicit(g0, g1, search.Options{})
	require.ErrorIs(t, err, search.ErrImplicitRequiresConnected)
}
