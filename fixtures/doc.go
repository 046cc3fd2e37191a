// Package fixtures builds mcgraph.Graph values for benchmarks and
// large-scenario tests. It adapts two of lvlath/builder's topology
// constructors (Cycle, RandomSparse) to this project's graph type and adds
// a label distribution, since builder targets core.Graph and has no notion
// of vertex labels.
//
// It is not exposed through the CLI, which only ever reads two graph
// files from disk.
package fixtures
