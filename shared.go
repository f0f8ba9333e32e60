package timecache

import (
	"sync"
	"time"
)

var _ Source = &Shared{}

// Shared is a time cache safe for concurrent use.
//
// Every entry into the cache state, including formatting and delegation to its own parent,
// happens under a single mutex. Shared is typically a Config.Parent of many leaves,
// so that leaves only contend on their misses.
type Shared struct {
	mu   sync.Mutex
	leaf *Leaf
}

// NewShared creates a concurrent time cache.
func NewShared(cfg Config) (*Shared, error) {
	leaf, err := NewLeaf(cfg)
	if err != nil {
		return nil, err
	}

	return &Shared{leaf: leaf}, nil
}

// Lookup returns the value formatted for the whole second containing timeMillis.
func (s *Shared) Lookup(timeMillis int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.leaf.Lookup(timeMillis)
}

// Stamp returns t formatted with milliseconds patched in.
func (s *Shared) Stamp(t time.Time) string {
	ms := t.UnixMilli()

	return WithMillis(s.Lookup(ms), ms)
}

// Pattern returns the normalized pattern.
func (s *Shared) Pattern() string {
	return s.leaf.pattern
}

// Capacity returns the number of cached seconds.
func (s *Shared) Capacity() int {
	return len(s.leaf.slots)
}

// Reset drops all cached values.
func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaf.Reset()
}

func (s *Shared) raw() string {
	return s.leaf.raw
}

func (s *Shared) location() *time.Location {
	return s.leaf.loc
}
