// Package search implements the branch-and-bound enumerator for maximal
// common induced subgraphs (MCIS) between two mcgraph.Graph values.
//
// Run drives the explicit-bidomain recursion: select a bidomain, pop a
// left vertex, try every right vertex in ascending order (refining the
// bidomain partition for each), then recurse into the "this vertex
// suppressed" branch. The same envelope enforces the connected restriction
// (Options.Connected) by having bidomain.Select skip non-adjacent
// bidomains past the root and by gating the leaf maximality check on
// whether any adjacent bidomain still carries a suppressed-but-present
// vertex.
//
// RunImplicit is the second, connectivity-only driver: instead of
// carrying one explicit bidomain per live label class, it tracks only
// bidomains adjacent to the mapping and re-derives them from each
// newly-mapped vertex's neighbour list. It and Run must agree on the *set*
// of maximal mappings they emit for connected problems, though not
// necessarily on enumeration order.
//
// Both drivers share VtxPair, Options, Result, and the timeout
// collaborator in timeout.go, rather than existing as separate
// near-duplicated driver programs.
package search
