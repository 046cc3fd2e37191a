package search

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrImplicitRequiresConnected is returned by RunImplicit when
// Options.Connected is false: the implicit/connectivity-forced driver has
// no notion of an unrestricted search, unlike Run.
var ErrImplicitRequiresConnected = errors.New("search: RunImplicit requires Options.Connected")

// VtxPair is one entry of a common-subgraph mapping: v maps to w, v a
// vertex of G0 and w a vertex of G1.
type VtxPair struct {
	V, W int
}

// Options configures a search Run/RunImplicit call.
type Options struct {
	// Ctx, if non-nil, bounds the search; a cancelled or deadline-exceeded
	// context aborts the recursion without emitting further solutions.
	// Defaults to context.Background().
	Ctx context.Context

	// Connected restricts enumeration to subgraphs connected on the G0
	// side of the mapping.
	Connected bool

	// Timeout, if positive, aborts the search after this much wall-clock
	// time regardless of Ctx. 0 means no timeout.
	Timeout time.Duration

	// Trace, if non-nil, receives a dump of the current mapping and
	// bidomain partition at every recursion node (the -v/--verbose
	// behaviour). nil disables tracing.
	Trace io.Writer

	// CollectMappings, if true, retains every emitted mapping in
	// Result.Mappings. Leave false for counting-only runs over large
	// search spaces, where retaining every mapping would dominate memory.
	CollectMappings bool

	// OnSolution, if non-nil, is invoked synchronously with each emitted
	// mapping as it is found (before Result is returned). The slice is
	// owned by the callback; Run will not reuse or mutate it afterwards.
	OnSolution func(mapping []VtxPair)
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Result summarises one completed (or timed-out) search.
type Result struct {
	Solutions uint64
	Nodes     uint64
	TimedOut  bool
	Mappings  [][]VtxPair // populated only when Options.CollectMappings
}
