// Package mcsplit finds maximal common induced subgraphs between two
// labelled undirected graphs via branch-and-bound bidomain partitioning.
//
// Two search drivers are provided:
//
//	search.Run          — explicit bidomain recursion, any graph pair
//	search.RunImplicit   — connectivity-forced recursion, connected mode only
//
// Graphs are read from the simple label/edge-list format documented in
// mcgraph, built with fixtures for benchmarks, and driven from the
// command line via cmd/mcsplit.
package mcsplit
