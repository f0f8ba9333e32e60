package timecache_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/veartutop/timecache"
)

// countingEngine counts formatting invocations.
type countingEngine struct {
	layout *timecache.Layout
	calls  int64
}

func newCountingEngine(t *testing.T, pattern string) *countingEngine {
	t.Helper()

	layout, err := timecache.CompileLayoutIn(timecache.TidyPattern(pattern), time.UTC)
	require.NoError(t, err)

	return &countingEngine{layout: layout}
}

func (e *countingEngine) Format(t time.Time) string {
	atomic.AddInt64(&e.calls, 1)

	return e.layout.Format(t)
}

func (e *countingEngine) Calls() int {
	return int(atomic.LoadInt64(&e.calls))
}
