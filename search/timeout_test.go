package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcsplit/fixtures"
	"github.com/katalvlaran/mcsplit/search"
)

// A search large enough to exceed a tiny timeout reports TimedOut and
// still returns partial counters rather than an error.
func TestTimeoutReportsPartialResult(t *testing.T) {
	g0 := fixtures.RandomSparse(16, 0.6, 1, 3)
	g1 := fixtures.RandomSparse(16, 0.6, 1, 4)

	res, err := search.Run(g0, g1, search.Options{Timeout: time.Nanosecond})
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
}

func TestNoTimeoutWhenZero(t *testing.T) {
	g0 := fixtures.Cycle(6, 1)
	g1 := fixtures.Cycle(6, 1)

	res, err := search.Run(g0, g1, search.Options{})
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
}
