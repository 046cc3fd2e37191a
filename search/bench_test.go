package search_test

import (
	"testing"

	"github.com/katalvlaran/mcsplit/fixtures"
	"github.com/katalvlaran/mcsplit/search"
)

func BenchmarkRunCycles(b *testing.B) {
	g0 := fixtures.Cycle(12, 1)
	g1 := fixtures.Cycle(12, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(g0, g1, search.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunImplicitRandomSparse(b *testing.B) {
	g0 := fixtures.RandomSparse(14, 0.3, 3, 1)
	g1 := fixtures.RandomSparse(14, 0.3, 3, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.RunImplicit(g0, g1, search.Options{Connected: true}); err != nil {
			b.Fatal(err)
		}
	}
}
