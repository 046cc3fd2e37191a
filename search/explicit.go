package search

import (
	"fmt"
	"io"

	"github.com/willf/bitset"

	"github.com/katalvlaran/mcsplit/bidomain"
	"github.com/katalvlaran/mcsplit/mcgraph"
)

// Run enumerates maximal common induced subgraphs between g0 and g1 using
// the explicit-bidomain driver. Both graphs must have had Freeze called.
func Run(g0, g1 *mcgraph.Graph, opts Options) (*Result, error) {
	opts.normalize()

	domains, left, right := bidomain.Init(g0, g1)
	s := &explicitSolver{
		g0: g0, g1: g1,
		left: left, right: right,
		X:         bitset.New(uint(g0.N())),
		connected: opts.Connected,
		trace:     opts.Trace,
		collect:   opts.CollectMappings,
		onSolve:   opts.OnSolution,
		mapping:   make([]VtxPair, 0, minInt(g0.N(), g1.N())),
	}

	timedOut := withTimeout(opts.Ctx, opts.Timeout, func(abort *abortSignal) {
		s.abort = abort
		s.solve(domains, 0)
	})

	return &Result{
		Solutions: s.solutions,
		Nodes:     s.nodes,
		TimedOut:  timedOut,
		Mappings:  s.mappings,
	}, nil
}

type explicitSolver struct {
	g0, g1 *mcgraph.Graph
	left   []int
	right  []int
	X      *bitset.BitSet

	connected bool
	trace     io.Writer
	collect   bool
	onSolve   func([]VtxPair)

	abort     *abortSignal
	mapping   []VtxPair
	mappings  [][]VtxPair
	nodes     uint64
	solutions uint64
}

// solve is the recursion envelope: select a bidomain, pop a left vertex v,
// try every right vertex w of that bidomain in ascending order (recursing
// into the refined partition for each), then recurse once more into the
// "v suppressed" branch with v marked in X.
func (s *explicitSolver) solve(domains []bidomain.Bidomain, depth int) {
	if s.abort.isSet() {
		return
	}
	s.nodes++
	if s.trace != nil {
		s.dumpNode(domains)
	}

	idx := bidomain.Select(domains, depth, s.connected)
	if idx == -1 {
		if s.isMaximal(domains) {
			s.emit()
		}
		return
	}

	bd := &domains[idx]
	v := bidomain.PopLeftVertex(s.left, bd, s.X)

	prevW := -1
	for {
		w, newHi, ok := bidomain.NextRightVertex(s.right, bd.RStart, bd.REnd, prevW)
		if !ok {
			break
		}
		savedREnd := bd.REnd
		bd.REnd = newHi

		newDomains := bidomain.Refine(domains, s.left, s.right, s.g0, s.g1, v, w, s.X)
		s.mapping = append(s.mapping, VtxPair{V: v, W: w})
		s.solve(newDomains, depth+1)
		s.mapping = s.mapping[:len(s.mapping)-1]

		bd.REnd = savedREnd
		prevW = w
	}

	bd.LEnd++ // restore v into the left range for the suppressed branch
	s.X.Set(uint(v))
	bd.XCount++
	s.solve(domains, depth)
	s.X.Clear(uint(v))
	bd.XCount--
}

// isMaximal checks the leaf condition: an empty mapping is never maximal
// (there's nothing to emit), the unconnected variant otherwise requires no
// bidomain to remain at all, and the connected variant tolerates remaining
// bidomains as long as none both carries a suppressed candidate and is
// adjacent to the mapping's frontier.
func (s *explicitSolver) isMaximal(domains []bidomain.Bidomain) bool {
	if len(s.mapping) == 0 {
		return false
	}
	if s.connected {
		for _, bd := range domains {
			if bd.IsAdjacent && bd.XCount > 0 {
				return false
			}
		}
		return true
	}
	return len(domains) == 0
}

func (s *explicitSolver) emit() {
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

func (s *explicitSolver) dumpNode(domains []bidomain.Bidomain) {
	fmt.Fprintf(s.trace, "Nodes: %d\n", s.nodes)
	fmt.Fprintf(s.trace, "Current assignment:")
	for _, p := range s.mapping {
		fmt.Fprintf(s.trace, "  (%d -> %d)", p.V, p.W)
	}
	fmt.Fprintln(s.trace)
	for _, bd := range domains {
		fmt.Fprintf(s.trace, "Left  %v\n", s.left[bd.LStart:bd.LEnd])
		fmt.Fprintf(s.trace, "Right %v\n", s.right[bd.RStart:bd.REnd])
	}
	fmt.Fprintln(s.trace)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
