package bidomain

import (
	"sort"

	"github.com/katalvlaran/mcsplit/mcgraph"
)

// Init computes the initial bidomain partition for g0/g1: one bidomain per
// label present in both graphs, in ascending label order, each spanning
// the (ascending-vertex-order) indices of that label on each side. It
// returns the domains plus the two shared buffers the search driver must
// keep threading through selection, popping, and refinement without ever
// reallocating them.
func Init(g0, g1 *mcgraph.Graph) (domains []Bidomain, left, right []int) {
	left = make([]int, 0, g0.N())
	right = make([]int, 0, g1.N())

	for _, label := range commonLabels(g0, g1) {
		lStart, rStart := len(left), len(right)
		for v := 0; v < g0.N(); v++ {
			if g0.Label(v) == label {
				left = append(left, v)
			}
		}
		for w := 0; w < g1.N(); w++ {
			if g1.Label(w) == label {
				right = append(right, w)
			}
		}
		domains = append(domains, Bidomain{
			LStart: lStart, LEnd: len(left),
			RStart: rStart, REnd: len(right),
			IsAdjacent: false,
			XCount:     0,
		})
	}
	return domains, left, right
}

// commonLabels returns, in ascending order, every label value that appears
// on at least one vertex of both g0 and g1 (the self-loop bit is part of
// the label word itself, so it already folds self-looped and
// non-self-looped vertices of the same base label into distinct classes).
func commonLabels(g0, g1 *mcgraph.Graph) []uint32 {
	left := map[uint32]struct{}{}
	for v := 0; v < g0.N(); v++ {
		left[g0.Label(v)] = struct{}{}
	}
	right := map[uint32]struct{}{}
	for w := 0; w < g1.N(); w++ {
		right[g1.Label(w)] = struct{}{}
	}

	var common []uint32
	for l := range left {
		if _, ok := right[l]; ok {
			common = append(common, l)
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })
	return common
}
