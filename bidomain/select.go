package bidomain

import "github.com/willf/bitset"

// Select scans domains in storage order and returns the index of the
// first bidomain with at least one unsuppressed left vertex, or -1 if
// none survives. When connected is true and depth>0, bidomains that are
// not adjacent to the current mapping's frontier are also skipped: only
// adjacency-carrying bidomains may extend a connected mapping past the
// first pair.
//
// Storage-order scanning is a deliberate no-overhead tiebreak: it gives a
// deterministic, reproducible enumeration order without any additional
// bookkeeping.
func Select(domains []Bidomain, depth int, connected bool) int {
	for i := range domains {
		bd := &domains[i]
		if bd.Exhausted() {
			continue
		}
		if connected && depth > 0 && !bd.IsAdjacent {
			continue
		}
		return i
	}
	return -1
}

// PopLeftVertex scans bd's left range for the first vertex not marked in
// X, swaps it to the last live position, shrinks bd.LEnd past it, and
// returns it. The vertex remains physically present at buf[bd.LEnd] (now
// just outside the live range) so that the caller can restore the range
// by incrementing bd.LEnd back by one. Select guarantees a bidomain it
// returns has at least one candidate, so this never fails to find one.
func PopLeftVertex(buf []int, bd *Bidomain, X *bitset.BitSet) int {
	for i := bd.LStart; i < bd.LEnd; i++ {
		v := buf[i]
		if X.Test(uint(v)) {
			continue
		}
		bd.LEnd--
		buf[i], buf[bd.LEnd] = buf[bd.LEnd], buf[i]
		return v
	}
	panic("bidomain: PopLeftVertex called on an exhausted bidomain")
}

// NextRightVertex finds the smallest value in buf[lo:hi) that is strictly
// greater than prev (pass -1 initially), swaps it to position hi-1, and
// returns (value, newHi) with newHi = hi-1 so the caller can shrink
// bd.REnd to exclude it for the duration of one recursive call. It
// returns ok=false once no value greater than prev remains, which is how
// the right-vertex enumeration loop terminates.
func NextRightVertex(buf []int, lo, hi, prev int) (value, newHi int, ok bool) {
	best := -1
	bestVal := int(^uint(0) >> 1) // max int: sentinel, no duplicates assumed in buf
	for i := lo; i < hi; i++ {
		if buf[i] > prev && buf[i] < bestVal {
			bestVal = buf[i]
			best = i
		}
	}
	if best == -1 {
		return 0, hi, false
	}
	buf[best], buf[hi-1] = buf[hi-1], buf[best]
	return bestVal, hi - 1, true
}
