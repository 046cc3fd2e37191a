package bidomain

// Bidomain is a pair of aligned half-open index ranges, [LStart,LEnd) into
// a left (G0) buffer and [RStart,REnd) into a right (G1) buffer, all of
// whose vertices share one label. IsAdjacent records whether this
// bidomain's left vertices are neighbours of the current mapping's
// frontier (used by the connected variant's selection gate and
// maximality check). XCount is how many of the bidomain's current left
// vertices are marked suppressed in the caller's X set.
type Bidomain struct {
	LStart, LEnd int
	RStart, REnd int
	IsAdjacent   bool
	XCount       int
}

// Len reports the number of left-range vertices still in play.
func (b Bidomain) Len() int {
	return b.LEnd - b.LStart
}

// Exhausted reports whether every left-range vertex is suppressed, i.e.
// this bidomain has nothing left to offer a selection pass.
func (b Bidomain) Exhausted() bool {
	return b.Len() == b.XCount
}
