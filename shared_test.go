package timecache_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bool64/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veartutop/timecache"
)

func TestShared_delegation(t *testing.T) {
	parentEngine := newCountingEngine(t, "HH:mm:ss")
	childEngine := newCountingEngine(t, "HH:mm:ss")
	st := &stats.TrackerMock{}

	parent, err := timecache.NewShared(timecache.Config{
		Name:     "parent",
		Capacity: 5,
		Pattern:  "HH:mm:ss",
		Location: time.UTC,
		Engine:   parentEngine,
		Stats:    st,
	})
	require.NoError(t, err)

	child1, err := timecache.NewLeaf(timecache.Config{Name: "child1", Capacity: 2, Parent: parent, Engine: childEngine, Stats: st})
	require.NoError(t, err)

	child2, err := timecache.NewLeaf(timecache.Config{Name: "child2", Capacity: 2, Parent: parent, Engine: childEngine, Stats: st})
	require.NoError(t, err)

	assert.Equal(t, parent.Pattern(), child1.Pattern())
	assert.Equal(t, 2, child1.Capacity())
	assert.Equal(t, 5, parent.Capacity())

	assert.Equal(t, "00:00:10", child1.Lookup(10000))
	assert.Equal(t, "00:00:11", child1.Lookup(11000))
	assert.Equal(t, 2, parentEngine.Calls())

	// Parent already holds second 10.
	assert.Equal(t, "00:00:10", child2.Lookup(10500))
	assert.Equal(t, 2, parentEngine.Calls())
	assert.Equal(t, 0, childEngine.Calls())

	assert.Equal(t, 3, st.Int(timecache.MetricDelegate))
	assert.Equal(t, 2, st.Int(timecache.MetricFormat))
	assert.Equal(t, 1, st.Int(timecache.MetricHit))
}

func TestShared_chain(t *testing.T) {
	e := newCountingEngine(t, "HH:mm:ss.SSS")

	root, err := timecache.NewShared(timecache.Config{Capacity: 10, Pattern: "HH:mm:ss.SSS", Location: time.UTC, Engine: e})
	require.NoError(t, err)

	middle, err := timecache.NewShared(timecache.Config{Capacity: 5, Parent: root})
	require.NoError(t, err)

	leaf1, err := timecache.NewLeaf(timecache.Config{Capacity: 2, Parent: middle})
	require.NoError(t, err)

	leaf2, err := timecache.NewLeaf(timecache.Config{Capacity: 2, Parent: root})
	require.NoError(t, err)

	ts := time.Date(2024, time.March, 5, 14, 7, 9, 5*int(time.Millisecond), time.UTC)

	assert.Equal(t, "14:07:09.005", leaf1.Stamp(ts))
	assert.Equal(t, "14:07:09.###", leaf2.Lookup(ts.UnixMilli()))
	assert.Equal(t, "14:07:09.005", middle.Stamp(ts))
	assert.Equal(t, 1, e.Calls())

	middle.Reset()
	assert.Equal(t, "14:07:09.###", middle.Lookup(ts.UnixMilli()))
	assert.Equal(t, 1, e.Calls())

	root.Reset()
	assert.Equal(t, "14:07:10.###", leaf1.Lookup(ts.UnixMilli()+1000))
	assert.Equal(t, 2, e.Calls())
}

func TestShared_patternMismatch(t *testing.T) {
	parent, err := timecache.NewShared(timecache.Config{Pattern: "HH:mm:ss.SSS"})
	require.NoError(t, err)

	_, err = timecache.NewLeaf(timecache.Config{Pattern: "HH:mm:ss", Parent: parent})
	assert.True(t, errors.Is(err, timecache.ErrPatternMismatch))

	c, err := timecache.NewLeaf(timecache.Config{Pattern: "HH:mm:ss.SSS", Parent: parent})
	require.NoError(t, err)
	assert.Equal(t, "HH:mm:ss.###", c.Pattern())
}

func TestShared_locationMismatch(t *testing.T) {
	parent, err := timecache.NewShared(timecache.Config{Pattern: "HH:mm", Location: time.UTC})
	require.NoError(t, err)

	_, err = timecache.NewLeaf(timecache.Config{Location: time.FixedZone("UTC+5", 5*3600), Parent: parent})
	assert.True(t, errors.Is(err, timecache.ErrLocationMismatch))

	c, err := timecache.NewLeaf(timecache.Config{Location: time.UTC, Parent: parent})
	require.NoError(t, err)
	assert.Equal(t, "00:00", c.Lookup(0))

	c, err = timecache.NewLeaf(timecache.Config{Parent: parent})
	require.NoError(t, err)
	assert.Equal(t, "00:00", c.Lookup(0))
}

func TestShared_Lookup_concurrency(t *testing.T) {
	oracle, err := timecache.NewUncached(timecache.Config{Pattern: "yyyy-MM-dd HH:mm:ss", Location: time.UTC})
	require.NoError(t, err)

	e := newCountingEngine(t, "yyyy-MM-dd HH:mm:ss")

	parent, err := timecache.NewShared(timecache.Config{Capacity: 10, Pattern: "yyyy-MM-dd HH:mm:ss", Location: time.UTC, Engine: e})
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	n := 16

	wg.Add(n)

	for i := 0; i < n; i++ {
		i := i

		go func() {
			defer wg.Done()

			// Every goroutine owns its leaf.
			c, err := timecache.NewLeaf(timecache.Config{Capacity: 2, Parent: parent})
			if !assert.NoError(t, err) {
				return
			}

			for ms := int64(i * 100); ms < 100000; ms += 37 {
				if got := c.Lookup(ms); got != oracle.Lookup(ms) {
					assert.Equal(t, oracle.Lookup(ms), got)

					return
				}

				_ = parent.Lookup(ms + 5000)
			}
		}()
	}

	wg.Wait()

	assert.Greater(t, e.Calls(), 0)
}
