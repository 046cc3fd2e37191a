package bidomain

import (
	"github.com/willf/bitset"

	"github.com/katalvlaran/mcsplit/mcgraph"
)

// Refine computes the bidomain stack describing what remains compatible
// with extending the current mapping by (v,w): for every existing
// bidomain it Hoare-partitions the left range by adjacency to v (in g0)
// and the right range by adjacency to w (in g1), then emits up to two new
// bidomains — the "both adjacent" half (IsAdjacent forced true) and the
// "both non-adjacent" half (IsAdjacent carried over unchanged, since
// whether this label class was already adjacent to the mapping's frontier
// doesn't change for vertices that aren't adjacent to the newly-added
// v). A half is dropped entirely if either side of it is empty: that
// label class can no longer contribute a compatible extension on this
// branch.
func Refine(domains []Bidomain, left, right []int, g0, g1 *mcgraph.Graph, v, w int, X *bitset.BitSet) []Bidomain {
	out := make([]Bidomain, 0, len(domains))
	vAdj := g0.AdjRow(v)
	wAdj := g1.AdjRow(w)

	for _, bd := range domains {
		lMid := partition(left, bd.LStart, bd.LEnd, vAdj)
		rMid := partition(right, bd.RStart, bd.REnd, wAdj)

		if lMid != bd.LEnd && rMid != bd.REnd {
			out = append(out, Bidomain{
				LStart: lMid, LEnd: bd.LEnd,
				RStart: rMid, REnd: bd.REnd,
				IsAdjacent: bd.IsAdjacent,
				XCount:     countSuppressed(left, lMid, bd.LEnd, X),
			})
		}
		if bd.LStart != lMid && bd.RStart != rMid {
			out = append(out, Bidomain{
				LStart: bd.LStart, LEnd: lMid,
				RStart: bd.RStart, REnd: rMid,
				IsAdjacent: true,
				XCount:     countSuppressed(left, bd.LStart, lMid, X),
			})
		}
	}
	return out
}

// partition performs a Hoare-style two-pointer in-place partition of
// buf[lo:hi) so that every vertex adjacent to row (per row.Test) ends up
// before every vertex that isn't, and returns the boundary index. Relative
// order within each half is not observable and is not preserved.
func partition(buf []int, lo, hi int, row *bitset.BitSet) int {
	i, j := lo, hi
	for i < j {
		if row.Test(uint(buf[i])) {
			i++
			continue
		}
		j--
		buf[i], buf[j] = buf[j], buf[i]
	}
	return i
}

func countSuppressed(buf []int, lo, hi int, X *bitset.BitSet) int {
	c := 0
	for i := lo; i < hi; i++ {
		if X.Test(uint(buf[i])) {
			c++
		}
	}
	return c
}
