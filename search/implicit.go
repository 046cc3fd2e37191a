package search

import (
	"sort"

	"github.com/willf/bitset"

	"github.com/katalvlaran/mcsplit/mcgraph"
)

// implicitDomain is one adjacent bidomain carried by the recursive half of
// RunImplicit. Every one of these is synthesised by synthesizeAdjacent from
// the neighbours of a just-mapped pair; none of them is a raw label class,
// so unlike bidomain.Bidomain there is no IsAdjacent flag to track.
type implicitDomain struct {
	left, right []int
	xCount      int
}

func (d *implicitDomain) exhausted() bool { return len(d.left) == d.xCount }

// rootClass is one label class shared by both graphs before anything has
// been mapped. It only ever seeds the very first pair of a mapping — the
// implicit driver carries no non-adjacent bidomain past that point.
type rootClass struct {
	left, right []int
}

// RunImplicit drives the connectivity-forced variant: start tries every
// vertex of every shared label class as the seed of a mapping, and solve
// carries only bidomains adjacent to the mapping built so far, re-deriving
// them at each step from the neighbour sets of the newly mapped pair rather
// than refining a bidomain stack rooted at the whole graph. It requires
// Options.Connected; RunImplicit has no notion of an unconnected search
// the way Run does.
func RunImplicit(g0, g1 *mcgraph.Graph, opts Options) (*Result, error) {
	opts.normalize()
	if !opts.Connected {
		return nil, ErrImplicitRequiresConnected
	}

	s := &implicitSolver{
		g0: g0, g1: g1,
		dG:      bitset.New(uint(g0.N())).Complement(),
		dH:      bitset.New(uint(g1.N())).Complement(),
		X:       bitset.New(uint(g0.N())),
		collect: opts.CollectMappings,
		onSolve: opts.OnSolution,
		mapping: make([]VtxPair, 0, minInt(g0.N(), g1.N())),
	}

	roots := rootClasses(g0, g1)
	timedOut := withTimeout(opts.Ctx, opts.Timeout, func(abort *abortSignal) {
		s.abort = abort
		s.start(roots)
	})

	return &Result{
		Solutions: s.solutions,
		Nodes:     s.nodes,
		TimedOut:  timedOut,
		Mappings:  s.mappings,
	}, nil
}

type implicitSolver struct {
	g0, g1 *mcgraph.Graph

	// dG/dH mark vertices not yet claimed by any carried bidomain and not
	// in the mapping: true means "still available". Whoever synthesises a
	// bidomain clears its members here and restores them once the
	// recursive call consuming that bidomain returns — the bidomain's
	// members stay claimed for exactly as long as the bidomain itself is
	// reachable from the active search path.
	dG, dH *bitset.BitSet
	X      *bitset.BitSet

	collect bool
	onSolve func([]VtxPair)

	abort     *abortSignal
	mapping   []VtxPair
	mappings  [][]VtxPair
	nodes     uint64
	solutions uint64
}

// rootClasses groups every vertex by label and keeps one class per label
// common to both graphs: the candidate seeds for the very first pair.
func rootClasses(g0, g1 *mcgraph.Graph) []rootClass {
	leftByLabel := map[uint32][]int{}
	for v := 0; v < g0.N(); v++ {
		leftByLabel[g0.Label(v)] = append(leftByLabel[g0.Label(v)], v)
	}
	rightByLabel := map[uint32][]int{}
	for w := 0; w < g1.N(); w++ {
		rightByLabel[g1.Label(w)] = append(rightByLabel[g1.Label(w)], w)
	}

	labels := make([]uint32, 0, len(leftByLabel))
	for l := range leftByLabel {
		if _, ok := rightByLabel[l]; ok {
			labels = append(labels, l)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	roots := make([]rootClass, 0, len(labels))
	for _, l := range labels {
		roots = append(roots, rootClass{left: leftByLabel[l], right: rightByLabel[l]})
	}
	return roots
}

// start tries every vertex of every shared label class as a mapping seed.
// Everything is still available at this point, so the seed pair's raw
// neighbour lists need no dG/dH filtering: they are claimed for as long as
// that one candidate (the whole left vertex, or just one right vertex) is
// under exploration, then released again before moving to the next one.
func (s *implicitSolver) start(roots []rootClass) {
	for _, root := range roots {
		for _, v := range root.left {
			if s.abort.isSet() {
				return
			}
			left := s.g0.Neighbors(v)
			s.dG.Clear(uint(v))
			clearAll(s.dG, left)

			for _, w := range root.right {
				right := s.g1.Neighbors(w)
				s.dH.Clear(uint(w))
				clearAll(s.dH, right)

				seeded := s.synthesizeAdjacent(nil, left, right)
				s.mapping = append(s.mapping, VtxPair{V: v, W: w})
				s.solve(seeded)
				s.mapping = s.mapping[:len(s.mapping)-1]

				s.dH.Set(uint(w))
				setAll(s.dH, right)
			}

			s.dG.Set(uint(v))
			setAll(s.dG, left)
			s.X.Set(uint(v))
		}
	}
}

// solve carries only bidomains already adjacent to the mapping, synthesised
// by the parent frame's synthesizeAdjacent call. It selects one, pops a
// left vertex, tries every right vertex (re-deriving fresh adjacent
// bidomains for the recursive call), then the suppressed branch.
func (s *implicitSolver) solve(domains []implicitDomain) {
	if s.abort.isSet() {
		return
	}
	s.nodes++

	idx := s.selectImplicit(domains)
	if idx == -1 {
		if s.isMaximal(domains) {
			s.emit()
		}
		return
	}

	bd := &domains[idx]
	v := popFirstUnsuppressed(bd.left, s.X)

	for _, w := range append([]int(nil), bd.right...) {
		newDomains, addedG, addedH := s.refineImplicit(domains, idx, v, w)
		s.mapping = append(s.mapping, VtxPair{V: v, W: w})
		s.solve(newDomains)
		s.mapping = s.mapping[:len(s.mapping)-1]
		setAll(s.dG, addedG)
		setAll(s.dH, addedH)
	}

	s.X.Set(uint(v))
	bd.xCount++
	s.solve(domains)
	s.X.Clear(uint(v))
	bd.xCount--
}

// refineImplicit builds the domains list for the recursive call after
// choosing to map v to w: every existing bidomain loses v/w (the vertex
// that just got mapped out of it) and is dropped if either side empties,
// then synthesizeAdjacent contributes fresh bidomains built from v and w's
// own still-unclaimed neighbours. It also reports exactly the vertices it
// claimed while building those fresh bidomains, so the caller can release
// them once the recursive call on the result returns — existing bidomains
// copied forward are left untouched, since whichever frame first claimed
// their members is still the one responsible for releasing them.
func (s *implicitSolver) refineImplicit(domains []implicitDomain, skip, v, w int) (out []implicitDomain, addedG, addedH []int) {
	out = make([]implicitDomain, 0, len(domains)+2)
	for i, bd := range domains {
		if i == skip {
			nl := removeCopy(bd.left, v)
			nr := removeCopy(bd.right, w)
			if len(nl) > 0 && len(nr) > 0 {
				out = append(out, implicitDomain{left: nl, right: nr})
			}
			continue
		}
		out = append(out, implicitDomain{left: append([]int(nil), bd.left...), right: append([]int(nil), bd.right...)})
	}

	var left, right []int
	for _, u := range s.g0.Neighbors(v) {
		if s.dG.Test(uint(u)) {
			left = append(left, u)
		}
	}
	for _, u := range s.g1.Neighbors(w) {
		if s.dH.Test(uint(u)) {
			right = append(right, u)
		}
	}

	before := len(out)
	out = s.synthesizeAdjacent(out, left, right)
	for _, bd := range out[before:] {
		addedG = append(addedG, bd.left...)
		addedH = append(addedH, bd.right...)
	}
	clearAll(s.dG, addedG)
	clearAll(s.dH, addedH)
	return out, addedG, addedH
}

// synthesizeAdjacent groups two candidate vertex lists by matching label,
// appending one new bidomain per label present on both sides.
func (s *implicitSolver) synthesizeAdjacent(out []implicitDomain, left, right []int) []implicitDomain {
	leftByLabel := map[uint32][]int{}
	for _, u := range left {
		leftByLabel[s.g0.Label(u)] = append(leftByLabel[s.g0.Label(u)], u)
	}
	rightByLabel := map[uint32][]int{}
	for _, u := range right {
		rightByLabel[s.g1.Label(u)] = append(rightByLabel[s.g1.Label(u)], u)
	}

	labels := make([]uint32, 0, len(leftByLabel))
	for l := range leftByLabel {
		if _, ok := rightByLabel[l]; ok {
			labels = append(labels, l)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	for _, l := range labels {
		out = append(out, implicitDomain{left: leftByLabel[l], right: rightByLabel[l]})
	}
	return out
}

// selectImplicit returns the index of the first non-exhausted domain.
// Every domain here is already adjacent to the mapping by construction, so
// unlike bidomain.Select there is no separate adjacency gate to apply.
func (s *implicitSolver) selectImplicit(domains []implicitDomain) int {
	for i := range domains {
		if !domains[i].exhausted() {
			return i
		}
	}
	return -1
}

// isMaximal checks the leaf condition: an empty mapping is never maximal,
// and otherwise no remaining bidomain (all adjacent, by construction) may
// carry a suppressed vertex.
func (s *implicitSolver) isMaximal(domains []implicitDomain) bool {
	if len(s.mapping) == 0 {
		return false
	}
	for _, bd := range domains {
		if bd.xCount > 0 {
			return false
		}
	}
	return true
}

func (s *implicitSolver) emit() {
	s.solutions++
	if !s.collect && s.onSolve == nil {
		return
	}
	cp := make([]VtxPair, len(s.mapping))
	copy(cp, s.mapping)
	if s.collect {
		s.mappings = append(s.mappings, cp)
	}
	if s.onSolve != nil {
		s.onSolve(cp)
	}
}

func popFirstUnsuppressed(buf []int, X *bitset.BitSet) int {
	for _, v := range buf {
		if !X.Test(uint(v)) {
			return v
		}
	}
	panic("search: popFirstUnsuppressed called on an exhausted domain")
}

func removeCopy(buf []int, v int) []int {
	out := make([]int, 0, len(buf))
	for _, u := range buf {
		if u != v {
			out = append(out, u)
		}
	}
	return out
}

func clearAll(bits *bitset.BitSet, vals []int) {
	for _, v := range vals {
		bits.Clear(uint(v))
	}
}

func setAll(bits *bitset.BitSet, vals []int) {
	for _, v := range vals {
		bits.Set(uint(v))
	}
}
