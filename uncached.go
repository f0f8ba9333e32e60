package timecache

import (
	"context"
	"time"
)

var _ Source = &Uncached{}

// Uncached is a Source that formats on every call.
type Uncached struct {
	settings
}

// NewUncached creates a Source without caching, Config.Capacity and Config.Parent are ignored.
func NewUncached(cfg Config) (*Uncached, error) {
	cfg.Parent = nil
	cfg.Capacity = 1

	s, err := cfg.prepare()
	if err != nil {
		return nil, err
	}

	return &Uncached{settings: s}, nil
}

// Lookup formats the whole second containing timeMillis.
func (u *Uncached) Lookup(timeMillis int64) string {
	if u.stat != nil {
		u.stat.Add(context.Background(), MetricFormat, 1, "name", u.name)
	}

	return u.engine.Format(time.Unix(floorDiv(timeMillis, 1000), 0))
}

// Pattern returns the normalized pattern.
func (u *Uncached) Pattern() string {
	return u.pattern
}
