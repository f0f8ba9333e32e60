package timecache

import (
	"fmt"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync"
)

// Registry keeps one Shared cache per normalized pattern and location.
//
// Locations are distinguished by identity, two *time.Location values with the same name
// get separate caches.
//
// Zero value is ready to use.
type Registry struct {
	// Config holds defaults for created caches, Pattern, Parent and Engine are ignored.
	Config Config

	// LeafCapacity is the capacity of leaves created by Leaf, default DefaultCapacity.
	LeafCapacity int

	once   sync.Once
	shared *xsync.Map
}

func (r *Registry) init() {
	r.once.Do(func() {
		r.shared = xsync.NewMap()
	})
}

func (r *Registry) location() *time.Location {
	if r.Config.Location == nil {
		return time.Local
	}

	return r.Config.Location
}

// Shared returns the shared cache of pattern, creating it on first use.
func (r *Registry) Shared(pattern string) (*Shared, error) {
	r.init()

	tidy, err := normalizePattern(pattern)
	if err != nil {
		return nil, err
	}

	loc := r.location()
	key := tidy + "\x00" + fmt.Sprintf("%p", loc)

	if v, ok := r.shared.Load(key); ok {
		return v.(*Shared), nil
	}

	cfg := r.Config
	cfg.Pattern = pattern
	cfg.Location = loc
	cfg.Parent = nil
	cfg.Engine = nil

	s, err := NewShared(cfg)
	if err != nil {
		return nil, err
	}

	// Concurrent creation is possible, the first stored instance wins.
	if v, loaded := r.shared.LoadOrStore(key, s); loaded {
		return v.(*Shared), nil
	}

	return s, nil
}

// Leaf creates a single-owner cache that delegates misses to the shared cache of pattern.
func (r *Registry) Leaf(pattern string) (*Leaf, error) {
	parent, err := r.Shared(pattern)
	if err != nil {
		return nil, err
	}

	cfg := r.Config
	cfg.Capacity = r.LeafCapacity
	cfg.Pattern = ""
	cfg.Location = nil
	cfg.Parent = parent
	cfg.Engine = nil

	return NewLeaf(cfg)
}

// ResetAll drops cached values of all shared caches.
//
// Leaves keep their values, they are owned by their goroutines.
func (r *Registry) ResetAll() {
	r.init()

	r.shared.Range(func(_ string, v interface{}) bool {
		v.(*Shared).Reset()

		return true
	})
}
