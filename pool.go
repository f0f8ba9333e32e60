package timecache

import (
	"sync"
	"time"
)

var _ Source = &LeafPool{}

// LeafPool lends leaves built from a single Config to concurrent callers.
//
// Each call borrows a leaf for its own exclusive use, leaves do not lock unless they
// miss into Config.Parent. Config.Engine, if set, must be safe for concurrent use.
type LeafPool struct {
	settings settings
	pool     sync.Pool
}

// NewLeafPool creates a pool of leaves.
func NewLeafPool(cfg Config) (*LeafPool, error) {
	s, err := cfg.prepare()
	if err != nil {
		return nil, err
	}

	p := &LeafPool{settings: s}
	p.pool.New = func() interface{} {
		return newLeaf(p.settings)
	}

	return p, nil
}

// Lookup returns the value formatted for the whole second containing timeMillis.
func (p *LeafPool) Lookup(timeMillis int64) string {
	l := p.pool.Get().(*Leaf)
	v := l.Lookup(timeMillis)
	p.pool.Put(l)

	return v
}

// Stamp returns t formatted with milliseconds patched in.
func (p *LeafPool) Stamp(t time.Time) string {
	ms := t.UnixMilli()

	return WithMillis(p.Lookup(ms), ms)
}

// Pattern returns the normalized pattern.
func (p *LeafPool) Pattern() string {
	return p.settings.pattern
}
