// Package bidomain implements the bidomain partition that the search
// package's recursion is built around: a set of disjoint, label-aligned
// candidate ranges, partitioned in place over two shared index buffers so
// that refining the partition for a chosen (v,w) pair never reallocates.
//
// A Bidomain is a view, not an owner: it is two half-open index ranges
// into caller-supplied Left/Right buffers. Selection only reads the
// domains; left-vertex popping shrinks a Bidomain's LEnd in place and
// right-vertex enumeration hands back a shrunk REnd for the caller to
// store, and both rely on the caller restoring them on the way back up the
// recursion — a direct port of the Hoare-partition-over-iterator-ranges
// technique common to C++ maximum-common-subgraph solvers, expressed here
// as index pairs into slices instead of STL iterator pairs.
package bidomain
