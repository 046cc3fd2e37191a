package mcgraph

import (
	"errors"
	"fmt"

	"github.com/willf/bitset"
)

// SelfLoopBit marks a vertex as having a self-loop. It occupies the top bit
// of a standardised 32-bit label word, rather than an arbitrary
// machine-word width.
const SelfLoopBit uint32 = 1 << 31

// MaxLabel is the largest label value that fits alongside SelfLoopBit.
const MaxLabel uint32 = SelfLoopBit - 1

// ErrCannotOpenFile is returned by ReadGraphFile when the input path cannot
// be opened for reading.
var ErrCannotOpenFile = errors.New("mcgraph: cannot open file")

// ErrMalformedInput is returned by ReadGraph when the input stream does not
// conform to the "n m / labels / edges" wire format.
var ErrMalformedInput = errors.New("mcgraph: malformed input")

// errLabelTooLarge is wrapped into ErrMalformedInput when a label would
// collide with SelfLoopBit.
var errLabelTooLarge = fmt.Errorf("label exceeds %d", MaxLabel)

// Graph is an immutable vertex-labelled undirected graph with no parallel
// edges. Vertices are 0..N()-1. It is safe for concurrent read-only use
// once construction (NewGraph, AddEdge, SetLabel, Freeze) has finished.
type Graph struct {
	label     []uint32
	adj       []*bitset.BitSet
	neighbors [][]int // ascending order, populated by Freeze
	frozen    bool
}

// NewGraph allocates an n-vertex graph with all labels zero and no edges.
// Call AddEdge/SetLabel to populate it, then Freeze before using it in
// search — Freeze is what derives the ordered neighbour lists the connected
// search variant walks.
func NewGraph(n int) *Graph {
	g := &Graph{
		label: make([]uint32, n),
		adj:   make([]*bitset.BitSet, n),
	}
	for v := range g.adj {
		g.adj[v] = bitset.New(uint(n))
	}
	return g
}

// N returns the number of vertices.
func (g *Graph) N() int {
	return len(g.label)
}

// Label returns the raw label word for v, including SelfLoopBit if set.
func (g *Graph) Label(v int) uint32 {
	return g.label[v]
}

// SetLabel overwrites the label bits below SelfLoopBit for v, preserving
// any self-loop bit already recorded. It panics if value collides with
// SelfLoopBit; callers validate at parse time instead of hitting this.
func (g *Graph) SetLabel(v int, value uint32) {
	if value > MaxLabel {
		panic(fmt.Sprintf("mcgraph: label %d exceeds %d", value, MaxLabel))
	}
	g.label[v] = (g.label[v] & SelfLoopBit) | value
}

// AddEdge records an edge between v and w. v==w sets v's self-loop bit
// instead of creating an adjacency, per the wire format's convention.
// Adding the same edge twice is idempotent.
func (g *Graph) AddEdge(v, w int) {
	if v == w {
		g.label[v] |= SelfLoopBit
		return
	}
	g.adj[v].Set(uint(w))
	g.adj[w].Set(uint(v))
}

// HasEdge reports whether v and w are adjacent (false for v==w: self-loops
// are label modifiers, not edges).
func (g *Graph) HasEdge(v, w int) bool {
	return g.adj[v].Test(uint(w))
}

// AdjRow returns v's adjacency bitset. The caller must treat it as
// read-only: it is shared, not cloned, so the bidomain partition routines
// can test membership without allocating per call.
func (g *Graph) AdjRow(v int) *bitset.BitSet {
	return g.adj[v]
}

// HasSelfLoop reports whether v's self-loop bit is set.
func (g *Graph) HasSelfLoop(v int) bool {
	return g.label[v]&SelfLoopBit != 0
}

// Freeze derives the ascending-order neighbour list for every vertex from
// the adjacency bitsets. It must be called once, after all edges have been
// added, before the graph is handed to the search package. Calling it more
// than once is a cheap no-op rebuild.
func (g *Graph) Freeze() {
	g.neighbors = make([][]int, len(g.adj))
	for v, row := range g.adj {
		nbrs := make([]int, 0, row.Count())
		for w, ok := row.NextSet(0); ok; w, ok = row.NextSet(w + 1) {
			nbrs = append(nbrs, int(w))
		}
		g.neighbors[v] = nbrs
	}
	g.frozen = true
}

// Neighbors returns v's neighbours in ascending vertex order. The slice is
// owned by the graph and must not be mutated. Panics if called before
// Freeze.
func (g *Graph) Neighbors(v int) []int {
	if !g.frozen {
		panic("mcgraph: Neighbors called before Freeze")
	}
	return g.neighbors[v]
}
