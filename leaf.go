package timecache

import (
	"context"
	"time"
)

var _ Source = &Leaf{}

// Leaf caches formatted values of a sliding window of consecutive seconds.
//
// Leaf is not safe for concurrent use, it is meant to be owned by a single goroutine.
// Use Shared for a cache reachable from many goroutines, or LeafPool to borrow leaves per call.
type Leaf struct {
	settings
	window

	// Second and value of the most recent lookup.
	memoSet    bool
	memoSecond int64
	memoValue  string
}

// NewLeaf creates a single-owner time cache.
func NewLeaf(cfg Config) (*Leaf, error) {
	s, err := cfg.prepare()
	if err != nil {
		return nil, err
	}

	return newLeaf(s), nil
}

func newLeaf(s settings) *Leaf {
	return &Leaf{
		settings: s,
		window:   newWindow(s.capacity),
	}
}

// Lookup returns the value formatted for the whole second containing timeMillis.
//
// Millisecond positions of the pattern hold Placeholder, see WithMillis.
func (c *Leaf) Lookup(timeMillis int64) string {
	second := floorDiv(timeMillis, 1000)

	if c.memoSet && second == c.memoSecond {
		return c.memoValue
	}

	var idx int

	if c.contains(second) {
		idx = c.index(second)

		if s := c.slots[idx]; s.set {
			if c.stat != nil {
				c.stat.Add(context.Background(), MetricHit, 1, "name", c.name)
			}

			c.remember(second, s.value)

			return s.value
		}
	} else {
		populated := c.populated

		var reset bool

		idx, reset = c.shift(second)

		// Filling an empty window discards nothing.
		if populated {
			c.observeShift(reset)
		}
	}

	if c.stat != nil {
		c.stat.Add(context.Background(), MetricMiss, 1, "name", c.name)
	}

	v := c.produce(timeMillis, second)
	c.slots[idx] = slot{value: v, set: true}
	c.remember(second, v)

	return v
}

// Stamp returns t formatted with milliseconds patched in.
func (c *Leaf) Stamp(t time.Time) string {
	ms := t.UnixMilli()

	return WithMillis(c.Lookup(ms), ms)
}

// Pattern returns the normalized pattern.
func (c *Leaf) Pattern() string {
	return c.pattern
}

// Capacity returns the number of cached seconds.
func (c *Leaf) Capacity() int {
	return len(c.slots)
}

// Reset drops all cached values.
func (c *Leaf) Reset() {
	c.drop()
	c.memoSet = false
	c.memoValue = ""
}

func (c *Leaf) remember(second int64, v string) {
	c.memoSet = true
	c.memoSecond = second
	c.memoValue = v
}

func (c *Leaf) produce(timeMillis, second int64) string {
	if c.parent != nil {
		if c.stat != nil {
			c.stat.Add(context.Background(), MetricDelegate, 1, "name", c.name)
		}

		return c.parent.Lookup(timeMillis)
	}

	if c.stat != nil {
		c.stat.Add(context.Background(), MetricFormat, 1, "name", c.name)
	}

	return c.engine.Format(time.Unix(second, 0))
}

func (c *Leaf) observeShift(reset bool) {
	if !reset {
		if c.stat != nil {
			c.stat.Add(context.Background(), MetricShift, 1, "name", c.name)
		}

		return
	}

	if c.stat != nil {
		c.stat.Add(context.Background(), MetricReset, 1, "name", c.name)
	}

	if c.log != nil {
		c.log.Debug(context.Background(), "time cache window reset",
			"name", c.name,
			"first", c.first,
			"last", c.last)
	}
}
