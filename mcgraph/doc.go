// Package mcgraph holds the immutable, labelled, undirected graph that the
// search package enumerates maximal common induced subgraphs over.
//
// A Graph is built once (NewGraph + AddEdge/SetLabel, or ReadGraph from the
// two-line-plus-edges text format) and never mutated afterwards: every
// read in the hot search loop is a label comparison or an adjacency-bitset
// test, both O(1).
//
// Adjacency is backed by github.com/willf/bitset, the same bitset type this
// project's pack uses for vertex-set bookkeeping (soniakeys/graph's
// cg_undir_al.go builds its Bron-Kerbosch candidate/exclude sets the same
// way: bitset.New(n) plus Set/Test/NextSet). One bitset.BitSet per vertex
// gives O(1) adjacency membership and an ordered-iteration primitive
// (NextSet) for free, which the connected search variant needs to walk a
// vertex's neighbours in ascending order.
//
// Self-loops are not edges. Reading or adding an edge (v,v) sets the top
// bit of label[v] instead, per the wire format's self-loop convention.
package mcgraph
